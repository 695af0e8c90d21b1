package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
categories:
  - id: dsa
    title: DSA
    algorithmic: true
    roadmaps:
      - id: dsa-basics-01
        title: DSA Basics
        difficulty: Beginner
        phases:
          - phase: 1
            name: Start
            topics:
              - id: arrays
                name: Arrays
                title: Arrays
                difficulty: Easy
                estimated_hours: 2
                key_points: [a, b]
                resources: []
`

func TestLoadTree_Valid(t *testing.T) {
	tree, err := LoadTree([]byte(validDoc))
	require.NoError(t, err)

	tp, ok := tree.FindTopic("dsa-basics-01", "arrays")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tp.KeyPoints)
	assert.Equal(t, 2.0, tp.EstimatedHours)
	assert.Equal(t, "dsa", tp.CategoryID)
}

func TestLoadTree_DuplicateCategory(t *testing.T) {
	doc := `
categories:
  - { id: dsa, title: A, roadmaps: [] }
  - { id: dsa, title: B, roadmaps: [] }
`
	_, err := LoadTree([]byte(doc))
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Contains(t, err.Error(), "duplicate category ID")
}

func TestLoadTree_DanglingPrerequisite(t *testing.T) {
	doc := `
categories:
  - id: dsa
    title: DSA
    roadmaps:
      - id: r1
        title: R
        difficulty: Beginner
        phases:
          - phase: 1
            name: P
            topics:
              - { id: t1, name: T, title: T, difficulty: Easy, prerequisites: [ghost] }
`
	_, err := LoadTree([]byte(doc))
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoadTree_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing categories", "foo: bar\n"},
		{"unknown roadmap difficulty", `
categories:
  - id: dsa
    title: DSA
    roadmaps:
      - { id: r1, title: R, difficulty: Expert, phases: [] }
`},
		{"negative hours", `
categories:
  - id: dsa
    title: DSA
    roadmaps:
      - id: r1
        title: R
        difficulty: Beginner
        phases:
          - phase: 1
            name: P
            topics:
              - { id: t1, name: T, title: T, difficulty: Easy, estimated_hours: -3 }
`},
		{"roadmap ID with path separators", `
categories:
  - id: dsa
    title: DSA
    roadmaps:
      - { id: "a/../../x", title: R, difficulty: Beginner, phases: [] }
`},
		{"empty document", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTree([]byte(tt.doc))
			require.Error(t, err)
			var integrity *DataIntegrityError
			assert.True(t, errors.As(err, &integrity), "expected *DataIntegrityError, got %T", err)
		})
	}
}

func TestLoadTree_MalformedYAML(t *testing.T) {
	_, err := LoadTree([]byte("categories: [\n"))
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.NotNil(t, integrity.Unwrap())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	tree, err := LoadFile(path)
	require.NoError(t, err)
	_, ok := tree.FindCategory("dsa")
	assert.True(t, ok)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefault_Memoized(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}
