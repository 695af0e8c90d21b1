package navigator

import "github.com/abhisek/sankalan/internal/content"

// Mode is the navigator's view mode.
type Mode int

const (
	ModeLanding       Mode = iota // Nothing selected
	ModeCategoryView                // Category selected, no roadmap
	ModeVisualization               // Roadmap selected; topic optional
)

// String returns the display name of a mode.
func (m Mode) String() string {
	switch m {
	case ModeLanding:
		return "Landing"
	case ModeCategoryView:
		return "CategoryView"
	case ModeVisualization:
		return "Visualization"
	default:
		return "Unknown"
	}
}

// Selection is the current navigation position. Nil fields are unselected.
type Selection struct {
	Category *content.Category
	Roadmap  *content.Roadmap
	Topic    *content.Topic
}

// Mode derives the view mode from the selection shape.
func (s Selection) Mode() Mode {
	switch {
	case s.Roadmap != nil:
		return ModeVisualization
	case s.Category != nil:
		return ModeCategoryView
	default:
		return ModeLanding
	}
}

// consistent reports whether the selection satisfies the ownership
// invariants: a roadmap implies its owning category, a topic implies a
// roadmap that contains it.
func (s Selection) consistent() bool {
	if s.Roadmap != nil {
		if s.Category == nil || !ownsRoadmap(s.Category, s.Roadmap) {
			return false
		}
	}
	if s.Topic != nil {
		if s.Roadmap == nil || !ownsTopic(s.Roadmap, s.Topic) {
			return false
		}
	}
	return true
}

func ownsRoadmap(c *content.Category, r *content.Roadmap) bool {
	if r.CategoryID != c.ID {
		return false
	}
	owned, ok := c.Roadmap(r.ID)
	return ok && owned == r
}

func ownsTopic(r *content.Roadmap, t *content.Topic) bool {
	if t.RoadmapID != r.ID || t.CategoryID != r.CategoryID {
		return false
	}
	owned, ok := r.Topic(t.ID)
	return ok && owned == t
}

// View is a snapshot of the navigator state handed to the rendering layer.
type View struct {
	Mode Mode
	Selection
}

// Groups returns the roadmap partition of the selected category.
func (v View) Groups() content.RoadmapGroups {
	return content.PartitionRoadmaps(v.Category)
}

// Breadcrumb returns the titles along the current selection path.
func (v View) Breadcrumb() []string {
	var parts []string
	if v.Category != nil {
		parts = append(parts, v.Category.Title)
	}
	if v.Roadmap != nil {
		parts = append(parts, v.Roadmap.Title)
	}
	if v.Topic != nil {
		parts = append(parts, v.Topic.Name)
	}
	return parts
}
