package export

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/sankalan/internal/content"
)

// Region is a plain-text snapshot of the rendered visualization of one
// roadmap.
type Region struct {
	Title      string
	CategoryID string
	RoadmapID  string
	Lines      []string
}

// NewRegion captures the terminal output rendered for roadmap r. Escape
// sequences and trailing blank lines are dropped.
func NewRegion(r *content.Roadmap, rendered string) *Region {
	plain := ansi.Strip(rendered)
	lines := strings.Split(plain, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Region{Title: r.Title, CategoryID: r.CategoryID, RoadmapID: r.ID, Lines: lines}
}

// maxCells returns the display width, in terminal cells, of the longest
// line or of the title.
func (r *Region) maxCells() int {
	n := ansi.StringWidth(r.Title)
	for _, l := range r.Lines {
		if c := ansi.StringWidth(l); c > n {
			n = c
		}
	}
	return n
}
