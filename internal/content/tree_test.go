package content

import (
	"testing"
)

func seedTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := Default()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return tree
}

func TestFindCategory_Exists(t *testing.T) {
	c, ok := seedTree(t).FindCategory("dsa")
	if !ok {
		t.Fatal("expected dsa category")
	}
	if c.Title != "Data Structures & Algorithms" {
		t.Errorf("got title %q", c.Title)
	}
	if !c.Algorithmic {
		t.Error("dsa should be flagged algorithmic")
	}
}

func TestFindCategory_NotFound(t *testing.T) {
	if c, ok := seedTree(t).FindCategory("nonexistent"); ok || c != nil {
		t.Errorf("expected no category, got %v", c)
	}
}

func TestFindRoadmap(t *testing.T) {
	tree := seedTree(t)
	r, ok := tree.FindRoadmap("dsa", "dsa-full-01")
	if !ok {
		t.Fatal("expected dsa-full-01")
	}
	if r.CategoryID != "dsa" {
		t.Errorf("back-reference: got %q, want dsa", r.CategoryID)
	}
	if _, ok := tree.FindRoadmap("web", "dsa-full-01"); ok {
		t.Error("roadmap lookup must be scoped to its category")
	}
}

func TestFindTopic(t *testing.T) {
	tree := seedTree(t)
	tp, ok := tree.FindTopic("dsa-full-01", "trees")
	if !ok {
		t.Fatal("expected trees topic")
	}
	if tp.RoadmapID != "dsa-full-01" || tp.CategoryID != "dsa" {
		t.Errorf("back-references: got %q/%q", tp.CategoryID, tp.RoadmapID)
	}
	if _, ok := tree.FindTopic("dsa-basics-01", "trees"); ok {
		t.Error("topic lookup must be scoped to its roadmap")
	}
	if _, ok := tree.FindTopic("missing", "trees"); ok {
		t.Error("unknown roadmap should not resolve")
	}
}

func TestLookupsReturnTreeNodes(t *testing.T) {
	tree := seedTree(t)
	c, _ := tree.FindCategory("dsa")
	r, _ := tree.FindRoadmap("dsa", "dsa-basics-01")
	if got, _ := c.Roadmap("dsa-basics-01"); got != r {
		t.Error("FindRoadmap should return the node owned by the category")
	}
	if !tree.Contains(c) {
		t.Error("tree should contain its own category")
	}
	clone := *c
	if tree.Contains(&clone) {
		t.Error("a copy is not a node of the tree")
	}
}

func TestCounts(t *testing.T) {
	tree := seedTree(t)
	if got := len(tree.Categories()); got != 3 {
		t.Errorf("got %d categories, want 3", got)
	}
	if got := tree.TopicCount(); got != 14 {
		t.Errorf("got %d topics, want 14", got)
	}
}

func TestPrerequisites(t *testing.T) {
	tree := seedTree(t)
	tp, _ := tree.FindTopic("dsa-full-01", "trees")
	prereqs := tree.Prerequisites(tp)
	if len(prereqs) != 2 {
		t.Fatalf("got %d prerequisites, want 2", len(prereqs))
	}
	if prereqs[0].ID != "linked-lists" || prereqs[1].ID != "stacks-queues" {
		t.Errorf("got %q, %q", prereqs[0].ID, prereqs[1].ID)
	}
}

func TestPrerequisites_CrossRoadmap(t *testing.T) {
	tree := seedTree(t)
	tp, _ := tree.FindTopic("dsa-full-01", "linked-lists")
	prereqs := tree.Prerequisites(tp)
	if len(prereqs) != 1 || prereqs[0].RoadmapID != "dsa-basics-01" {
		t.Fatalf("expected arrays from dsa-basics-01, got %v", prereqs)
	}
}

func TestDependents(t *testing.T) {
	tree := seedTree(t)
	tp, _ := tree.FindTopic("dsa-basics-01", "arrays")
	deps := tree.Dependents(tp)
	ids := map[string]bool{}
	for _, d := range deps {
		ids[d.ID] = true
	}
	if !ids["strings"] || !ids["linked-lists"] || len(ids) != 2 {
		t.Errorf("got dependents %v", ids)
	}
}

func TestSearch(t *testing.T) {
	results := seedTree(t).Search("dynamic")
	if len(results) == 0 {
		t.Fatal("expected at least one match")
	}
	if results[0].Topic.ID != "dp" {
		t.Errorf("best match: got %q, want dp", results[0].Topic.ID)
	}
}

func TestTotalTopics(t *testing.T) {
	tree := seedTree(t)
	full, _ := tree.FindRoadmap("dsa", "dsa-full-01")
	if full.TotalTopics() != 4 {
		t.Errorf("declared count: got %d, want 4", full.TotalTopics())
	}
	basics, _ := tree.FindRoadmap("dsa", "dsa-basics-01")
	if basics.TotalTopics() != 3 {
		t.Errorf("computed count: got %d, want 3", basics.TotalTopics())
	}
}
