// Package detail derives what the topic detail panel renders from a topic.
package detail

import (
	"slices"

	"github.com/abhisek/sankalan/internal/content"
)

// DefaultBadgeColor is used when a topic carries no color hint.
const DefaultBadgeColor = "#8B5CF6"

// ListSection is a titled list of references.
type ListSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ResourceSection groups a topic's external resources.
type ResourceSection struct {
	Title     string             `json:"title"`
	Resources []content.Resource `json:"resources"`
}

// DetailView is everything the detail panel shows for one topic. Optional
// sections are nil when the topic has nothing for them.
type DetailView struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	BadgeLabel    string             `json:"badgeLabel"`
	BadgeColor    string             `json:"badgeColor"`
	Difficulty    content.Difficulty `json:"difficulty"`
	Hours         float64            `json:"hours"`
	KeyPointCount int                `json:"keyPointCount"`
	Description   string             `json:"description,omitempty"`
	KeyPoints     []string           `json:"keyPoints"`

	Notes     *ListSection     `json:"notes,omitempty"`
	Questions *ListSection     `json:"questions,omitempty"`
	Resources *ResourceSection `json:"resources,omitempty"`
}

// Project maps a topic to its detail view. It only reads the topic and never
// returns slices that alias it.
func Project(t *content.Topic) DetailView {
	if t == nil {
		return DetailView{}
	}

	color := t.Color
	if color == "" {
		color = DefaultBadgeColor
	}

	v := DetailView{
		ID:            t.ID,
		Title:         t.Title,
		BadgeLabel:    t.Name,
		BadgeColor:    color,
		Difficulty:    t.Difficulty,
		Hours:         t.EstimatedHours,
		KeyPointCount: len(t.KeyPoints),
		Description:   t.Description,
		KeyPoints:     slices.Clone(t.KeyPoints),
	}

	if len(t.RelatedNotes) > 0 {
		v.Notes = &ListSection{Title: "Study Notes", Items: slices.Clone(t.RelatedNotes)}
	}
	if len(t.RelatedPYQs) > 0 {
		v.Questions = &ListSection{Title: "Practice Questions", Items: slices.Clone(t.RelatedPYQs)}
	}
	if len(t.Resources) > 0 {
		v.Resources = &ResourceSection{Title: "Resources", Resources: slices.Clone(t.Resources)}
	}
	return v
}

// Sections returns the optional list sections present in v, in display order.
func (v DetailView) Sections() []*ListSection {
	var out []*ListSection
	if v.Notes != nil {
		out = append(out, v.Notes)
	}
	if v.Questions != nil {
		out = append(out, v.Questions)
	}
	return out
}
