// Package landing is the entry screen listing the content categories.
package landing

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/events"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/router"
	"github.com/abhisek/sankalan/internal/screen"
	"github.com/abhisek/sankalan/internal/ui/components"
	"github.com/abhisek/sankalan/internal/ui/layout"
	"github.com/abhisek/sankalan/internal/ui/theme"
)

// EventsLoadedMsg carries the result of the background events fetch.
type EventsLoadedMsg struct {
	Events []events.Event
	Err    error
}

// maxEvents caps the upcoming events panel.
const maxEvents = 5

// LandingScreen lists categories and upcoming events.
type LandingScreen struct {
	nav  *navigator.Navigator
	menu components.Menu
	now  func() time.Time

	upcoming  []events.Event
	eventsErr error
	loaded    bool
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen over nav's content tree.
func New(nav *navigator.Navigator) *LandingScreen {
	s := &LandingScreen{nav: nav, now: time.Now}

	var items []components.MenuItem
	for _, c := range nav.Tree().Categories() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  %s", c.Icon, c.Title),
			Detail: fmt.Sprintf("%s · %d roadmaps", c.Description, len(c.Roadmaps)),
			Action: func() tea.Cmd {
				return router.Transition(nav, nav.SelectCategory(c))
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *LandingScreen) Init() tea.Cmd {
	return nil
}

func (s *LandingScreen) Title() string {
	return "Explore"
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case EventsLoadedMsg:
		s.loaded = true
		s.eventsErr = msg.Err
		s.upcoming = events.Upcoming(msg.Events, s.now())
		if len(s.upcoming) > maxEvents {
			s.upcoming = s.upcoming[:maxEvents]
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "1-9", Description: "Jump"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *LandingScreen) View(width, height int) string {
	leftWidth := width
	if s.loaded && !layout.IsCompactWidth(width) {
		leftWidth = width - min(36, width/3) - 2
	}

	var b strings.Builder
	if layout.IsCompactHeight(height) {
		b.WriteString("\n" + renderBanner(0))
	} else {
		b.WriteString(renderBanner(leftWidth))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render("  Choose a category"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d topics across %d categories",
		s.nav.Tree().TopicCount(), len(s.nav.Tree().Categories()))))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	left := b.String()
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, left)
	}

	right := s.renderEvents(min(36, width/3))
	if layout.IsCompactWidth(width) {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, left+"\n"+right)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width-lipgloss.Width(right)-2).Render(left),
		right,
	)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, row)
}

func (s *LandingScreen) renderEvents(width int) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Upcoming"))
	b.WriteString("\n")
	switch {
	case s.eventsErr != nil:
		b.WriteString(theme.Hint.Render("events unavailable"))
	case len(s.upcoming) == 0:
		b.WriteString(theme.Hint.Render("nothing scheduled"))
	default:
		for _, e := range s.upcoming {
			line := e.Date.Format("Jan 02") + "  " + e.Type
			if e.Title != "" {
				line += " · " + e.Title
			}
			b.WriteString(theme.Body.Render(line))
			b.WriteString("\n")
		}
	}
	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

