package category

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/router"
)

func newTestScreen(t *testing.T, categoryID string) (*CategoryScreen, *navigator.Navigator) {
	t.Helper()
	tree, err := content.Default()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	nav := navigator.New(tree)
	c, ok := tree.FindCategory(categoryID)
	if !ok {
		t.Fatalf("category %q not in seed", categoryID)
	}
	if err := nav.SelectCategory(c); err != nil {
		t.Fatalf("select category: %v", err)
	}
	return New(nav, c), nav
}

func TestTitle(t *testing.T) {
	s, _ := newTestScreen(t, "dsa")
	if s.Title() != "Data Structures & Algorithms" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestAlgorithmicCategoryShowsBasicsFirst(t *testing.T) {
	s, _ := newTestScreen(t, "dsa")
	view := ansi.Strip(s.View(120, 60))

	basics := strings.Index(view, "START WITH THE BASICS")
	main := strings.Index(view, "ROADMAPS")
	if basics < 0 || main < 0 {
		t.Fatalf("missing group headers in view:\n%s", view)
	}
	if basics > main {
		t.Error("basics group should come before the main group")
	}
	if i := strings.Index(view, "DSA Basics"); i < basics || i > main {
		t.Error("DSA Basics should sit in the basics group")
	}
	if i := strings.Index(view, "Complete DSA Roadmap"); i < main {
		t.Error("Complete DSA Roadmap should sit in the main group")
	}
}

func TestPlainCategoryHasNoBasicsGroup(t *testing.T) {
	s, _ := newTestScreen(t, "web")
	view := ansi.Strip(s.View(120, 60))
	if strings.Contains(view, "START WITH THE BASICS") {
		t.Error("non-algorithmic category rendered a basics group")
	}
	if !strings.Contains(view, "Frontend Basics") {
		t.Error("Frontend Basics missing from view")
	}
}

func TestFeaturedSheetsRendered(t *testing.T) {
	s, _ := newTestScreen(t, "dsa")
	view := ansi.Strip(s.View(140, 80))
	for _, want := range []string{"FEATURED SHEETS", "Striver's SDE Sheet", "191 Problems", "NeetCode 150"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCursorSkipsHeadersAndSheets(t *testing.T) {
	s, _ := newTestScreen(t, "dsa")
	if got := s.Selected(); got == nil || got.ID != "dsa-basics-01" {
		t.Fatalf("initial selection = %v, want dsa-basics-01", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.Selected().ID; got != "dsa-full-01" {
		t.Errorf("after down = %q, want dsa-full-01", got)
	}

	// Sheets below are not selectable.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.Selected().ID; got != "dsa-full-01" {
		t.Errorf("down onto sheets moved selection to %q", got)
	}

	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if got := s.Selected().ID; got != "dsa-basics-01" {
		t.Errorf("after k = %q, want dsa-basics-01", got)
	}
}

func TestEnterSelectsRoadmap(t *testing.T) {
	s, nav := newTestScreen(t, "dsa")
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if _, ok := cmd().(router.NavigatedMsg); !ok {
		t.Fatalf("expected NavigatedMsg, got %T", cmd())
	}
	v := nav.View()
	if v.Mode != navigator.ModeVisualization {
		t.Errorf("mode = %v, want Visualization", v.Mode)
	}
	if v.Roadmap.ID != "dsa-full-01" || v.Topic != nil {
		t.Errorf("selection = %+v", v.Selection)
	}
}

func TestResetScroll(t *testing.T) {
	s, _ := newTestScreen(t, "dsa")
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.View(80, 6)
	s.ResetScroll()
	if s.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", s.scrollOffset)
	}
	if s.Selected().ID != "dsa-basics-01" {
		t.Errorf("selection = %q after reset", s.Selected().ID)
	}
}

func TestSmallViewKeepsCursorVisible(t *testing.T) {
	s, _ := newTestScreen(t, "dsa")
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	view := ansi.Strip(s.View(100, 8))
	if !strings.Contains(view, "Complete DSA Roadmap") {
		t.Errorf("selected roadmap scrolled out of view:\n%s", view)
	}
}
