package navigator

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/abhisek/sankalan/internal/content"
)

// Navigator is the drill-down state machine over a content tree. It owns
// the Selection; every transition runs to completion under a mutex, so
// transitions triggered from different goroutines never interleave.
type Navigator struct {
	mu     sync.Mutex
	tree   *content.Tree
	sel    Selection
	logger *slog.Logger

	onScrollReset func()
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = l
	}
}

// WithScrollReset registers a hook fired after every successful
// SelectCategory. It runs outside the navigator lock.
func WithScrollReset(fn func()) Option {
	return func(n *Navigator) {
		n.onScrollReset = fn
	}
}

// New creates a Navigator in Landing mode over tree.
func New(tree *content.Tree, opts ...Option) *Navigator {
	n := &Navigator{
		tree:   tree,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Tree returns the content tree the navigator browses.
func (n *Navigator) Tree() *content.Tree {
	return n.tree
}

// View returns a snapshot of the current state.
func (n *Navigator) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return View{Mode: n.sel.Mode(), Selection: n.sel}
}

// Mode returns the current view mode.
func (n *Navigator) Mode() Mode {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sel.Mode()
}

// SelectCategory moves to CategoryView for c from any mode, clearing the
// roadmap and topic.
func (n *Navigator) SelectCategory(c *content.Category) error {
	err := n.transition("SelectCategory", func(cur Selection) (Selection, string) {
		if c == nil {
			return cur, "category is nil"
		}
		if !n.tree.Contains(c) {
			return cur, fmt.Sprintf("category %q is not part of the content tree", c.ID)
		}
		return Selection{Category: c}, ""
	})
	if err == nil && n.onScrollReset != nil {
		n.onScrollReset()
	}
	return err
}

// SelectRoadmap moves from CategoryView to Visualization for r, which must
// belong to the selected category.
func (n *Navigator) SelectRoadmap(r *content.Roadmap) error {
	return n.transition("SelectRoadmap", func(cur Selection) (Selection, string) {
		if cur.Mode() != ModeCategoryView {
			return cur, "a roadmap can only be selected from CategoryView"
		}
		if r == nil {
			return cur, "roadmap is nil"
		}
		if !ownsRoadmap(cur.Category, r) {
			return cur, fmt.Sprintf("roadmap %q does not belong to category %q", r.ID, cur.Category.ID)
		}
		return Selection{Category: cur.Category, Roadmap: r}, ""
	})
}

// SelectTopic selects t within the current roadmap. The mode stays
// Visualization; selecting the already selected topic is a no-op.
func (n *Navigator) SelectTopic(t *content.Topic) error {
	return n.transition("SelectTopic", func(cur Selection) (Selection, string) {
		if cur.Mode() != ModeVisualization {
			return cur, "a topic can only be selected in Visualization"
		}
		if t == nil {
			return cur, "topic is nil"
		}
		if !ownsTopic(cur.Roadmap, t) {
			return cur, fmt.Sprintf("topic %q does not belong to roadmap %q", t.ID, cur.Roadmap.ID)
		}
		cur.Topic = t
		return cur, ""
	})
}

// ClearTopic deselects the current topic, staying in Visualization.
func (n *Navigator) ClearTopic() error {
	return n.transition("ClearTopic", func(cur Selection) (Selection, string) {
		if cur.Mode() != ModeVisualization {
			return cur, "no roadmap is open"
		}
		cur.Topic = nil
		return cur, ""
	})
}

// BackToCategory returns from Visualization to CategoryView, keeping the
// category.
func (n *Navigator) BackToCategory() error {
	return n.transition("BackToCategory", func(cur Selection) (Selection, string) {
		if cur.Mode() != ModeVisualization {
			return cur, "only Visualization can go back to its category"
		}
		return Selection{Category: cur.Category}, ""
	})
}

// BackToLanding returns from CategoryView to Landing.
func (n *Navigator) BackToLanding() error {
	return n.transition("BackToLanding", func(cur Selection) (Selection, string) {
		if cur.Mode() != ModeCategoryView {
			return cur, "only CategoryView can go back to Landing"
		}
		return Selection{}, ""
	})
}

// Back steps one level up: a selected topic is cleared first, then the
// roadmap, then the category.
func (n *Navigator) Back() error {
	v := n.View()
	switch {
	case v.Mode == ModeVisualization && v.Topic != nil:
		return n.ClearTopic()
	case v.Mode == ModeVisualization:
		return n.BackToCategory()
	case v.Mode == ModeCategoryView:
		return n.BackToLanding()
	default:
		return &InvalidTransitionError{Op: "Back", From: v.Mode, Reason: "already at Landing"}
	}
}

// transition applies step to the current selection under the lock. step
// returns the next selection, or a non-empty reason to reject. The new
// selection is only committed when it is consistent.
func (n *Navigator) transition(op string, step func(Selection) (Selection, string)) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.sel.Mode()
	next, reason := step(n.sel)
	if reason == "" && !next.consistent() {
		reason = "resulting selection is inconsistent"
	}
	if reason != "" {
		n.logger.Debug("transition rejected", "op", op, "from", from, "reason", reason)
		return &InvalidTransitionError{Op: op, From: from, Reason: reason}
	}

	n.sel = next
	n.logger.Debug("transition", "op", op, "from", from, "to", next.Mode())
	return nil
}
