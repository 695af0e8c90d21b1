package roadmap

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/detail"
	"github.com/abhisek/sankalan/internal/ui/components"
	"github.com/abhisek/sankalan/internal/ui/theme"
)

var resourceIcons = map[content.ResourceType]string{
	content.ResourceVideo:   "▶",
	content.ResourceArticle: "✎",
	content.ResourceDocs:    "≡",
	content.ResourceCourse:  "◆",
}

// renderDetail draws the topic detail panel.
func renderDetail(tree *content.Tree, t *content.Topic, roadmapHours float64, width, height int) string {
	v := detail.Project(t)
	inner := max(10, width-4)

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(inner)

	var b strings.Builder
	b.WriteString(theme.Badge(v.BadgeLabel, v.BadgeColor))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(v.Title))
	b.WriteString("\n")

	diff := lipgloss.NewStyle().Foreground(theme.DifficultyColor(v.Difficulty)).
		Render(v.Difficulty.Icon() + " " + string(v.Difficulty))
	b.WriteString(diff + dim.Render(fmt.Sprintf("  ·  %.1f hours  ·  %d key points", v.Hours, v.KeyPointCount)))
	b.WriteString("\n")

	if roadmapHours > 0 {
		share := components.NewProgressBar("Share", v.Hours/roadmapHours, true, min(inner, 40))
		b.WriteString(share.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if v.Description != "" {
		b.WriteString(body.Render(v.Description))
		b.WriteString("\n\n")
	}

	if len(v.KeyPoints) > 0 {
		b.WriteString(theme.Section.Render("Key points"))
		b.WriteString("\n")
		for _, kp := range v.KeyPoints {
			b.WriteString(body.Render("• " + kp))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, sec := range v.Sections() {
		b.WriteString(theme.Section.Render(sec.Title))
		b.WriteString("\n")
		for _, item := range sec.Items {
			b.WriteString(body.Render("· " + item))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.Resources != nil {
		b.WriteString(theme.Section.Render(v.Resources.Title))
		b.WriteString("\n")
		for _, r := range v.Resources.Resources {
			line := resourceIcons[r.Type] + " " + r.Title
			if r.Duration != "" {
				line += dim.Render("  (" + r.Duration + ")")
			}
			b.WriteString(body.Render(line))
			b.WriteString("\n")
			if r.URL != "" {
				b.WriteString(dim.Width(inner).Render("  " + r.URL))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if prereqs := tree.Prerequisites(t); len(prereqs) > 0 {
		b.WriteString(theme.Section.Render("Requires"))
		b.WriteString("\n")
		for _, p := range prereqs {
			b.WriteString(dim.Render("← " + p.Name))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if deps := tree.Dependents(t); len(deps) > 0 {
		b.WriteString(theme.Section.Render("Unlocks"))
		b.WriteString("\n")
		for _, d := range deps {
			b.WriteString(dim.Render("→ " + d.Name))
			b.WriteString("\n")
		}
	}

	text := strings.TrimRight(b.String(), "\n")
	lines := strings.Split(text, "\n")
	if limit := height - 2; limit > 0 && len(lines) > limit {
		lines = append(lines[:limit-1], dim.Render("…"))
	}
	return theme.Panel.
		BorderForeground(theme.Hex(v.BadgeColor)).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
