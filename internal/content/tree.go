package content

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// path locates a node by position inside the tree. Unused trailing
// positions are -1.
type path struct {
	category int
	roadmap  int
	phase    int
	topic    int
}

type roadmapKey struct {
	categoryID string
	roadmapID  string
}

type topicKey struct {
	roadmapID string
	topicID   string
}

// Tree is the immutable content hierarchy with indices precomputed at load.
// Values returned by its methods point into the tree and must not be modified.
type Tree struct {
	categories []Category

	byCategory map[string]path
	byRoadmap  map[roadmapKey]path
	byTopic    map[topicKey][]path // roadmap IDs are only unique per category
	topicsByID map[string][]path
}

// buildTree sets back-references and constructs all indices. The
// categories must already have passed validateCategories.
func buildTree(categories []Category) *Tree {
	t := &Tree{
		categories: categories,
		byCategory: make(map[string]path, len(categories)),
		byRoadmap:  make(map[roadmapKey]path),
		byTopic:    make(map[topicKey][]path),
		topicsByID: make(map[string][]path),
	}

	for ci := range t.categories {
		c := &t.categories[ci]
		t.byCategory[c.ID] = path{category: ci, roadmap: -1, phase: -1, topic: -1}

		for ri := range c.Roadmaps {
			r := &c.Roadmaps[ri]
			r.CategoryID = c.ID
			t.byRoadmap[roadmapKey{c.ID, r.ID}] = path{category: ci, roadmap: ri, phase: -1, topic: -1}

			for pi := range r.Phases {
				p := &r.Phases[pi]
				for ti := range p.Topics {
					tp := &p.Topics[ti]
					tp.CategoryID = c.ID
					tp.RoadmapID = r.ID

					loc := path{category: ci, roadmap: ri, phase: pi, topic: ti}
					k := topicKey{r.ID, tp.ID}
					t.byTopic[k] = append(t.byTopic[k], loc)
					t.topicsByID[tp.ID] = append(t.topicsByID[tp.ID], loc)
				}
			}
		}
	}
	return t
}

func (t *Tree) topicAt(p path) *Topic {
	return &t.categories[p.category].Roadmaps[p.roadmap].Phases[p.phase].Topics[p.topic]
}

// Categories returns all categories in document order.
func (t *Tree) Categories() []*Category {
	out := make([]*Category, len(t.categories))
	for i := range t.categories {
		out[i] = &t.categories[i]
	}
	return out
}

// FindCategory returns the category with the given ID.
func (t *Tree) FindCategory(id string) (*Category, bool) {
	p, ok := t.byCategory[id]
	if !ok {
		return nil, false
	}
	return &t.categories[p.category], true
}

// FindRoadmap returns the roadmap with roadmapID owned by categoryID.
func (t *Tree) FindRoadmap(categoryID, roadmapID string) (*Roadmap, bool) {
	p, ok := t.byRoadmap[roadmapKey{categoryID, roadmapID}]
	if !ok {
		return nil, false
	}
	return &t.categories[p.category].Roadmaps[p.roadmap], true
}

// FindTopic returns the topic topicID inside the roadmap roadmapID. When
// several categories hold a roadmap with that ID, the first in document
// order wins.
func (t *Tree) FindTopic(roadmapID, topicID string) (*Topic, bool) {
	paths := t.byTopic[topicKey{roadmapID, topicID}]
	if len(paths) == 0 {
		return nil, false
	}
	return t.topicAt(paths[0]), true
}

// Contains reports whether c is a category of this tree (not a copy).
func (t *Tree) Contains(c *Category) bool {
	if c == nil {
		return false
	}
	found, ok := t.FindCategory(c.ID)
	return ok && found == c
}

// Prerequisites resolves the prerequisite IDs of topic to topics. An ID
// shared by several topics resolves to the first in document order.
func (t *Tree) Prerequisites(topic *Topic) []*Topic {
	if topic == nil {
		return nil
	}
	result := make([]*Topic, 0, len(topic.Prerequisites))
	for _, id := range topic.Prerequisites {
		if paths := t.topicsByID[id]; len(paths) > 0 {
			result = append(result, t.topicAt(paths[0]))
		}
	}
	return result
}

// Dependents returns topics that list topic's ID as a prerequisite.
func (t *Tree) Dependents(topic *Topic) []*Topic {
	if topic == nil {
		return nil
	}
	var result []*Topic
	t.eachTopic(func(other *Topic) {
		if slices.Contains(other.Prerequisites, topic.ID) {
			result = append(result, other)
		}
	})
	return result
}

// TopicCount returns the number of topics in the tree.
func (t *Tree) TopicCount() int {
	n := 0
	for _, paths := range t.topicsByID {
		n += len(paths)
	}
	return n
}

func (t *Tree) eachTopic(fn func(*Topic)) {
	for ci := range t.categories {
		for ri := range t.categories[ci].Roadmaps {
			r := &t.categories[ci].Roadmaps[ri]
			for pi := range r.Phases {
				for ti := range r.Phases[pi].Topics {
					fn(&r.Phases[pi].Topics[ti])
				}
			}
		}
	}
}

// SearchResult is a topic matched by Search.
type SearchResult struct {
	Topic *Topic
	Score int
}

// Search fuzzy-matches query against topic names and titles, best first.
func (t *Tree) Search(query string) []SearchResult {
	var topics []*Topic
	var keys []string
	t.eachTopic(func(tp *Topic) {
		topics = append(topics, tp)
		keys = append(keys, tp.Name+" "+tp.Title)
	})

	matches := fuzzy.Find(query, keys)
	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, SearchResult{Topic: topics[m.Index], Score: m.Score})
	}
	return results
}
