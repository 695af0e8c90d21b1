package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRan  bool
	resets   int
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) ResetScroll()         { s.resets++ }

// stubFactory titles screens after the level they were built for.
type stubFactory struct {
	built []*stubScreen
}

func (f *stubFactory) build(mode navigator.Mode, v navigator.View) screen.Screen {
	title := mode.String()
	switch mode {
	case navigator.ModeCategoryView:
		title += ":" + v.Category.ID
	case navigator.ModeVisualization:
		title += ":" + v.Roadmap.ID
	}
	s := &stubScreen{title: title}
	f.built = append(f.built, s)
	return s
}

func newTestRouter(t *testing.T) (*Router, *navigator.Navigator, *stubFactory) {
	t.Helper()
	tree, err := content.Default()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	f := &stubFactory{}
	var r *Router
	nav := navigator.New(tree, navigator.WithScrollReset(func() { r.RequestScrollReset() }))
	r = New(f.build, nav.View())
	return r, nav, f
}

func mustCategory(t *testing.T, nav *navigator.Navigator, id string) *content.Category {
	t.Helper()
	c, ok := nav.Tree().FindCategory(id)
	if !ok {
		t.Fatalf("category %q not found", id)
	}
	return c
}

func mustRoadmap(t *testing.T, nav *navigator.Navigator, cat, id string) *content.Roadmap {
	t.Helper()
	r, ok := nav.Tree().FindRoadmap(cat, id)
	if !ok {
		t.Fatalf("roadmap %q not found", id)
	}
	return r
}

func TestSyncFollowsDrillDown(t *testing.T) {
	r, nav, _ := newTestRouter(t)

	if err := nav.SelectCategory(mustCategory(t, nav, "dsa")); err != nil {
		t.Fatal(err)
	}
	r.Sync(nav.View())
	if r.Depth() != 2 || r.Active().Title() != "CategoryView:dsa" {
		t.Fatalf("after category: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
	if !r.Active().(*stubScreen).initRan {
		t.Error("expected Init() to run on the new screen")
	}

	if err := nav.SelectRoadmap(mustRoadmap(t, nav, "dsa", "dsa-full-01")); err != nil {
		t.Fatal(err)
	}
	r.Sync(nav.View())
	if r.Depth() != 3 || r.Active().Title() != "Visualization:dsa-full-01" {
		t.Fatalf("after roadmap: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	if err := nav.Back(); err != nil {
		t.Fatal(err)
	}
	r.Sync(nav.View())
	if r.Depth() != 2 || r.Active().Title() != "CategoryView:dsa" {
		t.Fatalf("after back: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestSyncKeepsUnchangedLevels(t *testing.T) {
	r, nav, f := newTestRouter(t)

	_ = nav.SelectCategory(mustCategory(t, nav, "dsa"))
	r.Sync(nav.View())
	category := r.Active()

	_ = nav.SelectRoadmap(mustRoadmap(t, nav, "dsa", "dsa-basics-01"))
	r.Sync(nav.View())
	topic, _ := nav.Tree().FindTopic("dsa-basics-01", "arrays")
	_ = nav.SelectTopic(topic)
	r.Sync(nav.View())
	if len(f.built) != 3 {
		t.Errorf("topic selection rebuilt a screen: built %d", len(f.built))
	}

	_ = nav.BackToCategory()
	r.Sync(nav.View())
	if r.Active() != category {
		t.Error("category screen should survive a round trip into a roadmap")
	}
}

func TestSyncReplacesChangedCategory(t *testing.T) {
	r, nav, _ := newTestRouter(t)

	_ = nav.SelectCategory(mustCategory(t, nav, "dsa"))
	r.Sync(nav.View())
	_ = nav.SelectRoadmap(mustRoadmap(t, nav, "dsa", "dsa-basics-01"))
	r.Sync(nav.View())

	// Jumping straight to another category from Visualization.
	_ = nav.SelectCategory(mustCategory(t, nav, "web"))
	r.Sync(nav.View())
	if r.Depth() != 2 || r.Active().Title() != "CategoryView:web" {
		t.Fatalf("depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestSyncResetsScrollOnCategorySelect(t *testing.T) {
	r, nav, _ := newTestRouter(t)

	_ = nav.SelectCategory(mustCategory(t, nav, "dsa"))
	r.Sync(nav.View())
	category := r.Active().(*stubScreen)
	if category.resets != 1 {
		t.Errorf("resets after first select = %d, want 1", category.resets)
	}

	_ = nav.SelectRoadmap(mustRoadmap(t, nav, "dsa", "dsa-basics-01"))
	r.Sync(nav.View())

	// Re-selecting the same category keeps the screen but resets it.
	_ = nav.SelectCategory(mustCategory(t, nav, "dsa"))
	r.Sync(nav.View())
	if r.Active() != category {
		t.Fatal("expected the existing category screen")
	}
	if category.resets != 2 {
		t.Errorf("resets = %d, want 2", category.resets)
	}

	_ = nav.BackToLanding()
	r.Sync(nav.View())
	if r.Active().(*stubScreen).resets != 0 {
		t.Error("BackToLanding must not request a scroll reset")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, nav, f := newTestRouter(t)
	_ = nav.SelectCategory(mustCategory(t, nav, "core-cs"))
	r.Sync(nav.View())

	r.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if len(f.built[0].received) != 0 {
		t.Error("landing should not receive keys while covered")
	}
	if len(f.built[1].received) != 1 {
		t.Errorf("active received %d msgs, want 1", len(f.built[1].received))
	}
}

func TestBroadcastReachesEveryScreen(t *testing.T) {
	r, nav, f := newTestRouter(t)
	_ = nav.SelectCategory(mustCategory(t, nav, "core-cs"))
	r.Sync(nav.View())

	type ping struct{}
	r.Update(BroadcastMsg{Msg: ping{}})
	for _, s := range f.built {
		if len(s.received) != 1 {
			t.Errorf("%s received %d msgs, want 1", s.title, len(s.received))
		}
	}
}

func TestTransition(t *testing.T) {
	_, nav, _ := newTestRouter(t)

	msg := Transition(nav, errors.New("nope"))()
	status, ok := msg.(StatusMsg)
	if !ok || !status.Err || status.Text != "nope" {
		t.Errorf("error transition = %#v", msg)
	}

	_ = nav.SelectCategory(mustCategory(t, nav, "web"))
	msg = Transition(nav, nil)()
	nm, ok := msg.(NavigatedMsg)
	if !ok || nm.View.Mode != navigator.ModeCategoryView {
		t.Errorf("success transition = %#v", msg)
	}
}
