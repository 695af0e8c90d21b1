// Package roadmap is the visualization screen: the phase timeline of one
// roadmap with the detail panel of the selected topic.
package roadmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/export"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/router"
	"github.com/abhisek/sankalan/internal/screen"
	"github.com/abhisek/sankalan/internal/ui/components"
	"github.com/abhisek/sankalan/internal/ui/layout"
	"github.com/abhisek/sankalan/internal/ui/theme"
)

// ExportTimeout bounds a single export.
const ExportTimeout = 30 * time.Second

type rowKind int

const (
	rowPhase rowKind = iota
	rowTopic
)

type row struct {
	kind  rowKind
	phase *content.Phase
	topic *content.Topic
}

// RoadmapScreen renders one roadmap.
type RoadmapScreen struct {
	nav      *navigator.Navigator
	exporter *export.Exporter
	roadmap  *content.Roadmap
	keys     keyMap

	rows         []row
	cursor       int
	scrollOffset int
	totalHours   float64

	searching bool
	input     components.TextInput
	matches   []*content.Topic

	// lastRender is the most recent visualization output; it is what an
	// export captures.
	lastRender string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)
var _ screen.InputCapturer = (*RoadmapScreen)(nil)
var _ screen.Scroller = (*RoadmapScreen)(nil)

// New creates the screen for roadmap r. exporter may be nil, which
// disables exporting.
func New(nav *navigator.Navigator, exporter *export.Exporter, r *content.Roadmap) *RoadmapScreen {
	s := &RoadmapScreen{
		nav:      nav,
		exporter: exporter,
		roadmap:  r,
		keys:     defaultKeyMap(),
	}
	for pi := range r.Phases {
		p := &r.Phases[pi]
		s.rows = append(s.rows, row{kind: rowPhase, phase: p})
		for ti := range p.Topics {
			t := &p.Topics[ti]
			s.rows = append(s.rows, row{kind: rowTopic, phase: p, topic: t})
			s.totalHours += t.EstimatedHours
		}
	}
	s.ResetScroll()
	return s
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (s *RoadmapScreen) Title() string {
	return s.roadmap.Title
}

// CapturesInput reports whether the search field is open.
func (s *RoadmapScreen) CapturesInput() bool {
	return s.searching
}

// ResetScroll moves the cursor back to the first topic.
func (s *RoadmapScreen) ResetScroll() {
	s.scrollOffset = 0
	s.cursor = 0
	s.moveCursor(1)
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open match"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	for _, b := range []key.Binding{s.keys.NextPhase, s.keys.Select, s.keys.Search} {
		hints = append(hints, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	if s.nav.View().Topic != nil {
		hints = append(hints, layout.KeyHint{Key: s.keys.Clear.Help().Key, Description: s.keys.Clear.Help().Desc})
	}
	if s.exporter != nil {
		hints = append(hints, layout.KeyHint{Key: s.keys.Export.Help().Key, Description: s.keys.Export.Help().Desc})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Cursor returns the topic under the cursor.
func (s *RoadmapScreen) Cursor() *content.Topic {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].topic
}

// Region returns the last rendered visualization, or nil before the
// first render.
func (s *RoadmapScreen) Region() *export.Region {
	if s.lastRender == "" {
		return nil
	}
	return export.NewRegion(s.roadmap, s.lastRender)
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.searching {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.searching {
		return s, s.updateSearch(kmsg)
	}

	switch {
	case key.Matches(kmsg, s.keys.Up):
		s.moveCursor(-1)
	case key.Matches(kmsg, s.keys.Down):
		s.moveCursor(1)
	case key.Matches(kmsg, s.keys.NextPhase):
		s.jumpPhase(1)
	case key.Matches(kmsg, s.keys.PrevPhase):
		s.jumpPhase(-1)
	case key.Matches(kmsg, s.keys.Select):
		if t := s.Cursor(); t != nil {
			return s, router.Transition(s.nav, s.nav.SelectTopic(t))
		}
	case key.Matches(kmsg, s.keys.Clear):
		return s, router.Transition(s.nav, s.nav.ClearTopic())
	case key.Matches(kmsg, s.keys.Export):
		return s, s.exportCmd()
	case key.Matches(kmsg, s.keys.Search):
		s.searching = true
		s.matches = nil
		s.input = components.NewTextInput("/ ", "find a topic", 40)
		return s, s.input.Init()
	}
	return s, nil
}

func (s *RoadmapScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.searching = false
		return nil
	case "enter":
		s.searching = false
		if len(s.matches) == 0 {
			return nil
		}
		t := s.matches[0]
		s.moveCursorTo(t)
		return router.Transition(s.nav, s.nav.SelectTopic(t))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.matches = s.search(s.input.Value())
	return cmd
}

// search fuzzy-matches topics of this roadmap only.
func (s *RoadmapScreen) search(query string) []*content.Topic {
	var out []*content.Topic
	for _, res := range s.nav.Tree().Search(query) {
		t := res.Topic
		if t.RoadmapID == s.roadmap.ID && t.CategoryID == s.roadmap.CategoryID {
			out = append(out, t)
		}
	}
	return out
}

func (s *RoadmapScreen) exportCmd() tea.Cmd {
	if s.exporter == nil {
		return nil
	}
	exp := s.exporter
	region := s.Region()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ExportTimeout)
		defer cancel()
		path, err := exp.ExportCurrentView(ctx, region)
		if err != nil {
			return router.StatusMsg{Text: err.Error(), Err: true}
		}
		return router.StatusMsg{Text: "Saved " + path}
	}
}

func (s *RoadmapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTopic {
			s.cursor = next
			return
		}
		next += delta
	}
}

func (s *RoadmapScreen) moveCursorTo(t *content.Topic) {
	for i, r := range s.rows {
		if r.topic == t {
			s.cursor = i
			return
		}
	}
}

// jumpPhase moves the cursor to the first topic of the next or previous phase.
func (s *RoadmapScreen) jumpPhase(dir int) {
	if s.cursor >= len(s.rows) {
		return
	}
	cur := s.rows[s.cursor].phase
	phases := s.roadmap.Phases
	for i := range phases {
		if &phases[i] != cur {
			continue
		}
		j := i + dir
		for j >= 0 && j < len(phases) {
			if len(phases[j].Topics) > 0 {
				s.moveCursorTo(&phases[j].Topics[0])
				return
			}
			j += dir
		}
		return
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	v := s.nav.View()

	header := s.renderHeader(width)
	bodyHeight := height - lipgloss.Height(header) - 1
	if s.searching {
		bodyHeight--
	}
	bodyHeight = max(1, bodyHeight)

	leftWidth := width
	var panel string
	if v.Topic != nil {
		leftWidth = width * 2 / 5
		if layout.IsCompactWidth(width) {
			leftWidth = width / 2
		}
		panel = renderDetail(s.nav.Tree(), v.Topic, s.totalHours, width-leftWidth-1, bodyHeight)
	}

	timeline := s.renderTimeline(v.Topic, leftWidth, bodyHeight)
	body := timeline
	if panel != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(leftWidth).Render(timeline), " ", panel)
	}

	out := header + "\n" + body
	s.lastRender = out

	if s.searching {
		out += "\n" + s.renderSearch()
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, out)
}

func (s *RoadmapScreen) renderHeader(width int) string {
	r := s.roadmap
	title := theme.Title.Render(fmt.Sprintf("  %s  %s", r.Icon, r.Title))
	level := lipgloss.NewStyle().Foreground(theme.LevelColor(r.Level)).Render(string(r.Level))
	meta := theme.Subtitle.Render(fmt.Sprintf("%d phases · %d topics · %s · %.0fh",
		len(r.Phases), r.TotalTopics(), r.Duration, s.totalHours))
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(20, width-4)).PaddingLeft(2).
		Render(r.Description)
	return "\n" + title + "  " + level + "  " + meta + "\n" + desc
}

func (s *RoadmapScreen) renderTimeline(selected *content.Topic, width, height int) string {
	var lines []string
	cursorLine := 0
	for i, r := range s.rows {
		switch r.kind {
		case rowPhase:
			lines = append(lines, theme.Section.Render(fmt.Sprintf("  Phase %d · %s", r.phase.Number, r.phase.Name)))
		case rowTopic:
			if i == s.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, s.renderTopicRow(r.topic, i == s.cursor, r.topic == selected, width))
		}
	}

	if cursorLine < s.scrollOffset {
		s.scrollOffset = max(0, cursorLine-1)
	}
	if cursorLine >= s.scrollOffset+height {
		s.scrollOffset = cursorLine - height + 1
	}
	end := min(len(lines), s.scrollOffset+height)
	start := min(s.scrollOffset, end)
	return strings.Join(lines[start:end], "\n")
}

func (s *RoadmapScreen) renderTopicRow(t *content.Topic, cursor, selected bool, width int) string {
	pointer := "  "
	if cursor {
		pointer = "▸ "
	}
	marker := lipgloss.NewStyle().Foreground(theme.DifficultyColor(t.Difficulty)).Render("○")
	if selected {
		marker = lipgloss.NewStyle().Foreground(theme.Hex(t.Color)).Render("●")
	}

	nameStyle := theme.Unselected
	if cursor {
		nameStyle = theme.Selected
	}
	hours := theme.Subtitle.Render(fmt.Sprintf("%4.1fh", t.EstimatedHours))
	nameWidth := max(8, width-4-2-2-lipgloss.Width(hours)-2)
	return fmt.Sprintf("    %s%s %s  %s", pointer, marker, nameStyle.Render(layout.PadRight(t.Name, nameWidth)), hours)
}

func (s *RoadmapScreen) renderSearch() string {
	out := "  " + s.input.View()
	if s.input.Value() == "" {
		return out
	}
	if len(s.matches) == 0 {
		return out + theme.Hint.Render("  no match")
	}
	var names []string
	for _, t := range s.matches {
		names = append(names, t.Name)
	}
	return out + theme.Hint.Render("  → "+strings.Join(names, ", "))
}
