package content

import (
	"fmt"
	"regexp"
)

// idPattern keeps IDs usable as file name parts.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// validateCategories performs all structural checks on a decoded document.
// Returns a *DataIntegrityError listing every problem found, or nil if valid.
func validateCategories(categories []Category) error {
	var errs []string

	topicIDs := make(map[string]bool)
	catIDs := make(map[string]bool, len(categories))

	for ci := range categories {
		c := &categories[ci]
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("category #%d has an empty ID", ci))
		} else if catIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		} else if !idPattern.MatchString(c.ID) {
			errs = append(errs, fmt.Sprintf("category ID %q may only contain letters, digits, '.', '_' and '-'", c.ID))
		}
		catIDs[c.ID] = true

		roadmapIDs := make(map[string]bool, len(c.Roadmaps))
		for ri := range c.Roadmaps {
			r := &c.Roadmaps[ri]
			where := fmt.Sprintf("category %q roadmap %q", c.ID, r.ID)
			if r.ID == "" {
				errs = append(errs, fmt.Sprintf("category %q roadmap #%d has an empty ID", c.ID, ri))
			} else if roadmapIDs[r.ID] {
				errs = append(errs, fmt.Sprintf("duplicate roadmap ID %q in category %q", r.ID, c.ID))
			} else if !idPattern.MatchString(r.ID) {
				errs = append(errs, fmt.Sprintf("%s: ID may only contain letters, digits, '.', '_' and '-'", where))
			}
			roadmapIDs[r.ID] = true

			if !r.Level.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown difficulty %q", where, r.Level))
			}
			if r.TopicCount != nil && *r.TopicCount < 0 {
				errs = append(errs, fmt.Sprintf("%s: topic count must be >= 0, got %d", where, *r.TopicCount))
			}

			ids := make(map[string]bool)
			for pi := range r.Phases {
				p := &r.Phases[pi]
				if p.Number != pi+1 {
					errs = append(errs, fmt.Sprintf("%s: phases must be numbered 1, 2, 3...; phase #%d has number %d", where, pi+1, p.Number))
				}

				for ti := range p.Topics {
					t := &p.Topics[ti]
					if t.ID == "" {
						errs = append(errs, fmt.Sprintf("%s phase %d: topic #%d has an empty ID", where, p.Number, ti))
						continue
					}
					if ids[t.ID] {
						errs = append(errs, fmt.Sprintf("duplicate topic ID %q in roadmap %q", t.ID, r.ID))
					}
					if !idPattern.MatchString(t.ID) {
						errs = append(errs, fmt.Sprintf("topic ID %q may only contain letters, digits, '.', '_' and '-'", t.ID))
					}
					ids[t.ID] = true
					topicIDs[t.ID] = true

					if !t.Difficulty.Valid() {
						errs = append(errs, fmt.Sprintf("topic %q: unknown difficulty %q", t.ID, t.Difficulty))
					}
					if t.EstimatedHours < 0 {
						errs = append(errs, fmt.Sprintf("topic %q: estimated hours must be >= 0, got %g", t.ID, t.EstimatedHours))
					}
					for _, res := range t.Resources {
						if !res.Type.Valid() {
							errs = append(errs, fmt.Sprintf("topic %q: resource %q has unknown type %q", t.ID, res.Title, res.Type))
						}
					}
				}
			}
		}
	}

	// Prerequisites may point anywhere in the tree, so they are checked
	// after every topic ID is known.
	for ci := range categories {
		for ri := range categories[ci].Roadmaps {
			r := &categories[ci].Roadmaps[ri]
			for pi := range r.Phases {
				for _, t := range r.Phases[pi].Topics {
					for _, prereq := range t.Prerequisites {
						switch {
						case prereq == t.ID:
							errs = append(errs, fmt.Sprintf("topic %q lists itself as a prerequisite", t.ID))
						case !topicIDs[prereq]:
							errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.ID, prereq))
						}
					}
				}
			}
		}
	}

	if len(errs) > 0 {
		return &DataIntegrityError{Problems: errs}
	}
	return nil
}
