package content

import "strings"

// basicsMarker is the title substring that marks an introductory roadmap.
const basicsMarker = "Basics"

// RoadmapGroups splits a category's roadmaps for display.
type RoadmapGroups struct {
	Basics []*Roadmap // introductory group, only for algorithmic categories
	Main   []*Roadmap
}

// IsBasics reports whether r belongs to the introductory group of an
// algorithmic category.
func IsBasics(r *Roadmap) bool {
	return r.Level == LevelBeginner && strings.Contains(r.Title, basicsMarker)
}

// PartitionRoadmaps groups c's roadmaps. Algorithmic categories split
// Beginner "Basics" roadmaps from the rest; every other category renders
// all roadmaps in Main. Document order is kept and c is not modified.
func PartitionRoadmaps(c *Category) RoadmapGroups {
	var g RoadmapGroups
	if c == nil {
		return g
	}
	for i := range c.Roadmaps {
		r := &c.Roadmaps[i]
		if c.Algorithmic && IsBasics(r) {
			g.Basics = append(g.Basics, r)
			continue
		}
		g.Main = append(g.Main, r)
	}
	return g
}
