// Package category shows the roadmaps of one category.
package category

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/router"
	"github.com/abhisek/sankalan/internal/screen"
	"github.com/abhisek/sankalan/internal/ui/layout"
	"github.com/abhisek/sankalan/internal/ui/theme"
)

type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowRoadmap
	rowSheet
)

type row struct {
	kind    rowKind
	label   string
	roadmap *content.Roadmap
	sheet   *content.FeaturedSheet
}

// CategoryScreen lists a category's roadmaps, basics first for
// algorithmic categories, followed by its featured sheets.
type CategoryScreen struct {
	nav          *navigator.Navigator
	category     *content.Category
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)
var _ screen.Scroller = (*CategoryScreen)(nil)

// New creates the screen for the category selected in nav.
func New(nav *navigator.Navigator, c *content.Category) *CategoryScreen {
	s := &CategoryScreen{nav: nav, category: c}

	groups := content.PartitionRoadmaps(c)
	if len(groups.Basics) > 0 {
		s.rows = append(s.rows, row{kind: rowGroupHeader, label: "Start with the basics"})
		for _, r := range groups.Basics {
			s.rows = append(s.rows, row{kind: rowRoadmap, roadmap: r})
		}
		s.rows = append(s.rows, row{kind: rowGroupHeader, label: "Roadmaps"})
	}
	for _, r := range groups.Main {
		s.rows = append(s.rows, row{kind: rowRoadmap, roadmap: r})
	}
	if len(c.FeaturedSheets) > 0 {
		s.rows = append(s.rows, row{kind: rowGroupHeader, label: "Featured sheets"})
		for i := range c.FeaturedSheets {
			s.rows = append(s.rows, row{kind: rowSheet, sheet: &c.FeaturedSheets[i]})
		}
	}

	s.ResetScroll()
	return s
}

func (s *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoryScreen) Title() string {
	return s.category.Title
}

func (s *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open roadmap"},
		{Key: "Esc", Description: "Back"},
	}
}

// ResetScroll moves the view and cursor back to the first roadmap.
func (s *CategoryScreen) ResetScroll() {
	s.scrollOffset = 0
	s.cursor = 0
	for i, r := range s.rows {
		if r.kind == rowRoadmap {
			s.cursor = i
			return
		}
	}
}

// Selected returns the roadmap under the cursor.
func (s *CategoryScreen) Selected() *content.Roadmap {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].roadmap
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "home", "g":
			s.ResetScroll()
		case "enter":
			r := s.Selected()
			if r == nil {
				return s, nil
			}
			return s, router.Transition(s.nav, s.nav.SelectRoadmap(r))
		}
	}
	return s, nil
}

// moveCursor moves the cursor by delta, skipping rows that are not roadmaps.
func (s *CategoryScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowRoadmap {
			s.cursor = next
			return
		}
		next += delta
	}
}

func (s *CategoryScreen) View(width, height int) string {
	header := s.renderHeader(width)
	bodyHeight := height - lipgloss.Height(header)
	if bodyHeight < 1 {
		return header
	}

	var lines []string
	for i, r := range s.rows {
		switch r.kind {
		case rowGroupHeader:
			lines = append(lines, "", theme.Section.Render("  "+strings.ToUpper(r.label)))
		case rowRoadmap:
			lines = append(lines, s.renderRoadmap(r.roadmap, i == s.cursor, width))
		case rowSheet:
			lines = append(lines, renderSheet(r.sheet, width)...)
		}
	}

	// Scroll in rendered lines so the cursor row stays visible.
	cursorLine := s.lineOf(s.cursor)
	if cursorLine < s.scrollOffset {
		s.scrollOffset = cursorLine
	}
	if cursorLine >= s.scrollOffset+bodyHeight {
		s.scrollOffset = cursorLine - bodyHeight + 1
	}
	end := min(len(lines), s.scrollOffset+bodyHeight)
	start := min(s.scrollOffset, end)

	return header + "\n" + strings.Join(lines[start:end], "\n")
}

// lineOf maps a row index to its first rendered line.
func (s *CategoryScreen) lineOf(idx int) int {
	n := 0
	for i := 0; i < idx && i < len(s.rows); i++ {
		switch s.rows[i].kind {
		case rowGroupHeader:
			n += 2
		case rowRoadmap:
			n++
		case rowSheet:
			n += len(renderSheet(s.rows[i].sheet, 80))
		}
	}
	if idx < len(s.rows) && s.rows[idx].kind == rowGroupHeader {
		n++
	}
	return n
}

func (s *CategoryScreen) renderHeader(width int) string {
	c := s.category
	title := lipgloss.NewStyle().
		Foreground(theme.Hex(c.GradientFrom)).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", c.Icon, c.Title))
	rule := lipgloss.NewStyle().
		Foreground(theme.Hex(c.GradientTo)).
		Render("  " + strings.Repeat("━", max(0, min(width-4, 60))))
	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(max(20, width-4)).
		PaddingLeft(2).
		Render(c.Description)
	return "\n" + title + "\n" + rule + "\n" + desc
}

func (s *CategoryScreen) renderRoadmap(r *content.Roadmap, selected bool, width int) string {
	cursor := "  "
	nameStyle := theme.Unselected
	if selected {
		cursor = "▸ "
		nameStyle = theme.Selected
	}

	level := lipgloss.NewStyle().Foreground(theme.LevelColor(r.Level)).Render(fmt.Sprintf("%-12s", r.Level))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%2d topics  %s", r.TotalTopics(), r.Duration))

	nameWidth := width - 4 - 3 - 12 - lipgloss.Width(meta) - 6
	if nameWidth < 10 {
		nameWidth = 10
	}
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor, r.Icon, nameStyle.Render(layout.PadRight(r.Title, nameWidth)), level, meta)
}

func renderSheet(sh *content.FeaturedSheet, width int) []string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		"    " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(sh.Title),
		"    " + dim.Render(layout.Truncate(sh.Description, max(10, width-6))),
	}
	if len(sh.Stats) > 0 {
		var parts []string
		for _, st := range sh.Stats {
			parts = append(parts, st.Value+" "+st.Label)
		}
		lines = append(lines, "    "+theme.Body.Render(strings.Join(parts, " · ")))
	}
	for _, l := range sh.Links {
		lines = append(lines, "    "+dim.Render("↗ "+l.Label+"  "+l.URL))
	}
	return lines
}
