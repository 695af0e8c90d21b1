package content

// Level is a roadmap difficulty level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Difficulty is a topic difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Icon returns the display glyph for a difficulty.
func (d Difficulty) Icon() string {
	switch d {
	case DifficultyEasy:
		return "●"
	case DifficultyMedium:
		return "◆"
	case DifficultyHard:
		return "▲"
	default:
		return "?"
	}
}

// ResourceType identifies the kind of an external learning resource.
type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceDocs    ResourceType = "docs"
	ResourceCourse  ResourceType = "course"
)

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceVideo, ResourceArticle, ResourceDocs, ResourceCourse:
		return true
	}
	return false
}

// Resource is an external reference attached to a topic.
type Resource struct {
	Type     ResourceType `yaml:"type" json:"type"`
	Title    string       `yaml:"title" json:"title"`
	Duration string       `yaml:"duration,omitempty" json:"duration,omitempty"`
	URL      string       `yaml:"url,omitempty" json:"url,omitempty"`
}

// Topic is an atomic learning unit inside a phase.
type Topic struct {
	ID             string     `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	Title          string     `yaml:"title" json:"title"`
	Description    string     `yaml:"description" json:"description"`
	Difficulty     Difficulty `yaml:"difficulty" json:"difficulty"`
	EstimatedHours float64    `yaml:"estimated_hours" json:"estimatedHours"`
	KeyPoints      []string   `yaml:"key_points" json:"keyPoints"`
	RelatedNotes   []string   `yaml:"related_notes,omitempty" json:"relatedNotes,omitempty"`
	RelatedPYQs    []string   `yaml:"related_pyqs,omitempty" json:"relatedPYQs,omitempty"`
	Resources      []Resource `yaml:"resources" json:"resources"`
	Color          string     `yaml:"color,omitempty" json:"color,omitempty"`
	Prerequisites  []string   `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`

	// Back-references, set at load.
	CategoryID string `yaml:"-" json:"categoryId"`
	RoadmapID  string `yaml:"-" json:"roadmapId"`
}

// Phase is a numbered stage of a roadmap.
type Phase struct {
	Number int     `yaml:"phase" json:"phase"`
	Name   string  `yaml:"name" json:"name"`
	Topics []Topic `yaml:"topics" json:"topics"`
}

// Roadmap is an ordered learning path within a category.
type Roadmap struct {
	ID          string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Icon        string  `yaml:"icon" json:"icon"`
	Description string  `yaml:"description" json:"description"`
	Level       Level   `yaml:"difficulty" json:"difficulty"`
	Duration    string  `yaml:"duration" json:"duration"`
	TopicCount  *int    `yaml:"topic_count,omitempty" json:"topicCount,omitempty"`
	Phases      []Phase `yaml:"phases" json:"phases"`

	// Back-reference to the owning category, set at load.
	CategoryID string `yaml:"-" json:"categoryId"`
}

// TotalTopics returns the declared topic count when present, else the number
// of topics across all phases.
func (r *Roadmap) TotalTopics() int {
	if r.TopicCount != nil {
		return *r.TopicCount
	}
	n := 0
	for i := range r.Phases {
		n += len(r.Phases[i].Topics)
	}
	return n
}

// Topic returns the topic with the given ID from any phase of r.
func (r *Roadmap) Topic(id string) (*Topic, bool) {
	for i := range r.Phases {
		for j := range r.Phases[i].Topics {
			if r.Phases[i].Topics[j].ID == id {
				return &r.Phases[i].Topics[j], true
			}
		}
	}
	return nil, false
}

// Stat is a label/value pair shown on a featured sheet.
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Link is an external link on a featured sheet.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// FeaturedSheet is promotional metadata shown on a category page.
// It carries no navigation semantics.
type FeaturedSheet struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Stats       []Stat `yaml:"stats,omitempty" json:"stats,omitempty"`
	Links       []Link `yaml:"links,omitempty" json:"links,omitempty"`
}

// Category is a top-level subject grouping.
type Category struct {
	ID             string          `yaml:"id" json:"id"`
	Title          string          `yaml:"title" json:"title"`
	Description    string          `yaml:"description" json:"description"`
	GradientFrom   string          `yaml:"gradient_from" json:"gradientFrom"`
	GradientTo     string          `yaml:"gradient_to" json:"gradientTo"`
	Icon           string          `yaml:"icon" json:"icon"`
	Algorithmic    bool            `yaml:"algorithmic,omitempty" json:"algorithmic,omitempty"`
	Roadmaps       []Roadmap       `yaml:"roadmaps" json:"roadmaps"`
	FeaturedSheets []FeaturedSheet `yaml:"featured_sheets,omitempty" json:"featuredSheets,omitempty"`
}

// Roadmap returns the roadmap with the given ID owned by c.
func (c *Category) Roadmap(id string) (*Roadmap, bool) {
	for i := range c.Roadmaps {
		if c.Roadmaps[i].ID == id {
			return &c.Roadmaps[i], true
		}
	}
	return nil, false
}

// document is the top-level shape of a content file.
type document struct {
	Categories []Category `yaml:"categories"`
}
