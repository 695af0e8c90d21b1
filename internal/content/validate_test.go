package content

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidate_SeedTreeLoads(t *testing.T) {
	if _, err := Default(); err != nil {
		t.Fatalf("seed tree failed to load: %v", err)
	}
}

func TestValidateCategories_DetectsDuplicateCategoryID(t *testing.T) {
	cats := []Category{
		{ID: "dsa"},
		{ID: "dsa"},
	}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for duplicate category ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate category ID") {
		t.Errorf("error should mention duplicate category, got: %v", err)
	}
}

func TestValidateCategories_DetectsDuplicateRoadmapID(t *testing.T) {
	cats := []Category{{
		ID: "dsa",
		Roadmaps: []Roadmap{
			{ID: "r1", Level: LevelBeginner},
			{ID: "r1", Level: LevelAdvanced},
		},
	}}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for duplicate roadmap ID, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate roadmap ID "r1"`) {
		t.Errorf("error should mention the roadmap, got: %v", err)
	}
}

func TestValidateCategories_SameRoadmapIDInDifferentCategories(t *testing.T) {
	cats := []Category{
		{ID: "a", Roadmaps: []Roadmap{{ID: "r1", Level: LevelBeginner}}},
		{ID: "b", Roadmaps: []Roadmap{{ID: "r1", Level: LevelBeginner}}},
	}
	if err := validateCategories(cats); err != nil {
		t.Fatalf("roadmap IDs are scoped per category, got: %v", err)
	}
}

func TestValidateCategories_DetectsDuplicateTopicID(t *testing.T) {
	cats := []Category{minimalCategory("dsa", "r1",
		Topic{ID: "t1", Difficulty: DifficultyEasy},
		Topic{ID: "t1", Difficulty: DifficultyHard},
	)}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for duplicate topic ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate topic ID") {
		t.Errorf("error should mention duplicate topic, got: %v", err)
	}
}

func TestValidateCategories_DetectsDanglingPrereq(t *testing.T) {
	cats := []Category{minimalCategory("dsa", "r1",
		Topic{ID: "t1", Difficulty: DifficultyEasy},
		Topic{ID: "t2", Difficulty: DifficultyEasy, Prerequisites: []string{"nonexistent"}},
	)}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateCategories_PrereqAcrossRoadmaps(t *testing.T) {
	cats := []Category{
		minimalCategory("a", "r1", Topic{ID: "t1", Difficulty: DifficultyEasy}),
		minimalCategory("b", "r2", Topic{ID: "t2", Difficulty: DifficultyEasy, Prerequisites: []string{"t1"}}),
	}
	if err := validateCategories(cats); err != nil {
		t.Fatalf("prerequisites may reference any topic in the tree, got: %v", err)
	}
}

func TestValidateCategories_DetectsSelfPrereq(t *testing.T) {
	cats := []Category{minimalCategory("dsa", "r1",
		Topic{ID: "t1", Difficulty: DifficultyEasy, Prerequisites: []string{"t1"}},
	)}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for self prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention self reference, got: %v", err)
	}
}

func TestValidateCategories_PhaseNumbersSequential(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		wantErr bool
	}{
		{"sequential", []int{1, 2, 3}, false},
		{"repeated", []int{1, 1}, true},
		{"starts at two", []int{2, 3}, true},
		{"gap", []int{1, 3}, true},
		{"descending", []int{2, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var phases []Phase
			for _, n := range tt.numbers {
				phases = append(phases, Phase{Number: n, Name: fmt.Sprintf("p%d", n)})
			}
			cats := []Category{{
				ID:       "dsa",
				Roadmaps: []Roadmap{{ID: "r1", Level: LevelBeginner, Phases: phases}},
			}}
			err := validateCategories(cats)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error for bad phase numbering, got nil")
			}
			if !strings.Contains(err.Error(), "numbered 1, 2, 3") {
				t.Errorf("error should mention phase numbering, got: %v", err)
			}
		})
	}
}

func TestValidateCategories_RejectsUnsafeIDs(t *testing.T) {
	tests := []struct {
		name string
		cats []Category
		want string
	}{
		{"category", []Category{minimalCategory("d/sa", "r1")}, `category ID "d/sa"`},
		{"roadmap", []Category{minimalCategory("dsa", "a/../../x")}, `roadmap "a/../../x": ID may only contain`},
		{"topic", []Category{minimalCategory("dsa", "r1", Topic{ID: "t/1", Difficulty: DifficultyEasy})}, "topic ID"},
		{"space", []Category{minimalCategory("dsa", "r 1")}, "may only contain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCategories(tt.cats)
			if err == nil {
				t.Fatal("expected error for unsafe ID, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should contain %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateCategories_NegativeHours(t *testing.T) {
	cats := []Category{minimalCategory("dsa", "r1",
		Topic{ID: "t1", Difficulty: DifficultyEasy, EstimatedHours: -1},
	)}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for negative hours, got nil")
	}
	if !strings.Contains(err.Error(), "estimated hours") {
		t.Errorf("error should mention estimated hours, got: %v", err)
	}
}

func TestValidateCategories_UnknownEnums(t *testing.T) {
	cats := []Category{{
		ID: "dsa",
		Roadmaps: []Roadmap{{
			ID:    "r1",
			Level: "Expert",
			Phases: []Phase{{Number: 1, Topics: []Topic{{
				ID:         "t1",
				Difficulty: "Trivial",
				Resources:  []Resource{{Type: "podcast", Title: "p"}},
			}}}},
		}},
	}}
	err := validateCategories(cats)
	if err == nil {
		t.Fatal("expected error for unknown enums, got nil")
	}
	for _, want := range []string{`"Expert"`, `"Trivial"`, `"podcast"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s, got: %v", want, err)
		}
	}
}

func TestValidateCategories_ReportsAllProblems(t *testing.T) {
	cats := []Category{
		minimalCategory("dsa", "r1", Topic{ID: "t1", Difficulty: DifficultyEasy, Prerequisites: []string{"x"}}),
		minimalCategory("dsa", "r2", Topic{ID: "t2", Difficulty: DifficultyEasy, Prerequisites: []string{"y"}}),
	}
	err := validateCategories(cats)
	var integrity *DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected *DataIntegrityError, got %T", err)
	}
	if len(integrity.Problems) != 3 {
		t.Errorf("got %d problems, want 3: %v", len(integrity.Problems), integrity.Problems)
	}
}

// minimalCategory returns a category with one roadmap holding the topics in a single phase.
func minimalCategory(catID, roadmapID string, topics ...Topic) Category {
	return Category{
		ID: catID,
		Roadmaps: []Roadmap{{
			ID:     roadmapID,
			Level:  LevelBeginner,
			Phases: []Phase{{Number: 1, Name: "Phase 1", Topics: topics}},
		}},
	}
}
