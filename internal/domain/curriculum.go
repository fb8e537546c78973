package domain

// Curriculum is the structured record built by the curriculum designer.
// Empty strings mean "not yet provided".
type Curriculum struct {
	Subject        string       `json:"subject" yaml:"subject"`
	TargetAudience string       `json:"target_audience" yaml:"target_audience"`
	Duration       string       `json:"duration" yaml:"duration"`
	Objectives     []string     `json:"objectives" yaml:"objectives"`
	Lessons        []Lesson     `json:"lessons" yaml:"lessons"`
	Resources      []Resource   `json:"resources" yaml:"resources"`
	Assessments    []Assessment `json:"assessments" yaml:"assessments"`
}

type Lesson struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration" yaml:"duration"`
	Objectives  []string `json:"objectives" yaml:"objectives"`
	Content     []string `json:"content" yaml:"content"`
	Activities  []string `json:"activities" yaml:"activities"`
	Assessments []string `json:"assessments" yaml:"assessments"`
}

type Resource struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Type        ResourceType `json:"type" yaml:"type"`
	URL         string       `json:"url,omitempty" yaml:"url,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
}

type Assessment struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Type        AssessmentType `json:"type" yaml:"type"`
	Description string         `json:"description" yaml:"description"`
	Points      *int           `json:"points,omitempty" yaml:"points,omitempty"`
	Duration    string         `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// NewCurriculum returns an empty curriculum with non-nil lists.
func NewCurriculum() Curriculum {
	return Curriculum{
		Objectives:  []string{},
		Lessons:     []Lesson{},
		Resources:   []Resource{},
		Assessments: []Assessment{},
	}
}

// IsEmpty reports whether nothing has been captured yet.
func (c Curriculum) IsEmpty() bool {
	return c.Subject == "" && len(c.Objectives) == 0 && len(c.Lessons) == 0
}
