// Package router keeps the screen stack in step with the navigator: one
// screen per drill-down level, rebuilt when the selection at that level
// changes.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/screen"
)

// NavigatedMsg reports a successful navigator transition. View is the
// state right after that transition; later transitions may have replaced
// it by the time the message arrives.
type NavigatedMsg struct {
	View navigator.View
}

// StatusMsg asks the app to show a one-line status in the footer.
type StatusMsg struct {
	Text string
	Err  bool
}

// BroadcastMsg is delivered to every screen on the stack, not only the
// active one.
type BroadcastMsg struct {
	Msg tea.Msg
}

// Transition turns the result of a navigator transition into a command.
func Transition(nav *navigator.Navigator, err error) tea.Cmd {
	if err != nil {
		return func() tea.Msg { return StatusMsg{Text: err.Error(), Err: true} }
	}
	v := nav.View()
	return func() tea.Msg { return NavigatedMsg{View: v} }
}

// Factory builds the screen for one level of v. mode is the level being
// built, which may be shallower than v.Mode.
type Factory func(mode navigator.Mode, v navigator.View) screen.Screen

type entry struct {
	key    string
	screen screen.Screen
}

// Router manages a stack of screens.
type Router struct {
	stack   []entry
	factory Factory

	resetPending bool
}

// New creates a Router showing the levels of v.
func New(factory Factory, v navigator.View) *Router {
	r := &Router{factory: factory}
	r.Sync(v)
	return r
}

// RequestScrollReset makes the next Sync scroll the active screen to the
// top. It is safe to call from inside a navigator transition.
func (r *Router) RequestScrollReset() {
	r.resetPending = true
}

// Sync reshapes the stack to match v: levels whose selection is unchanged
// keep their screen, deeper or changed levels are rebuilt.
func (r *Router) Sync(v navigator.View) tea.Cmd {
	want := levelKeys(v)

	keep := 0
	for keep < len(r.stack) && keep < len(want) && r.stack[keep].key == want[keep] {
		keep++
	}
	r.stack = r.stack[:keep]

	var cmds []tea.Cmd
	for lvl := keep; lvl < len(want); lvl++ {
		s := r.factory(navigator.Mode(lvl), v)
		r.stack = append(r.stack, entry{key: want[lvl], screen: s})
		cmds = append(cmds, s.Init())
	}

	if r.resetPending {
		r.resetPending = false
		if sc, ok := r.Active().(screen.Scroller); ok {
			sc.ResetScroll()
		}
	}
	return tea.Batch(cmds...)
}

// levelKeys identifies the selection at each level of v.
func levelKeys(v navigator.View) []string {
	keys := []string{"landing"}
	if v.Category != nil {
		keys = append(keys, "category:"+v.Category.ID)
	}
	if v.Roadmap != nil {
		keys = append(keys, "roadmap:"+v.Roadmap.CategoryID+"/"+v.Roadmap.ID)
	}
	return keys
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen, or to every screen for
// a BroadcastMsg.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if b, ok := msg.(BroadcastMsg); ok {
		var cmds []tea.Cmd
		for i := range r.stack {
			updated, cmd := r.stack[i].screen.Update(b.Msg)
			r.stack[i].screen = updated
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}

	if len(r.stack) == 0 {
		return nil
	}
	top := &r.stack[len(r.stack)-1]
	updated, cmd := top.screen.Update(msg)
	top.screen = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
