package engine

import (
	"testing"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculum_SubjectFromOpeningStatement(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))

	res := e.Process("I want to teach JavaScript to beginners", domain.NewCurriculum(), nil)

	assert.Equal(t, "Javascript to beginners", res.Curriculum.Subject)
	assert.Equal(t, CurriculumInitial, res.Step)
	assert.Contains(t, res.Response, "Perfect!")
	assert.Contains(t, res.Response, "target audience")
}

func TestCurriculum_ObjectivesLeadToLessons(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))
	current := domain.NewCurriculum()
	current.Subject = "JavaScript"
	current.TargetAudience = "Beginners"
	current.Duration = "8 weeks"

	res := e.Process("Students should understand variables and functions, learn DOM manipulation, build a simple web app", current, nil)

	assert.NotEmpty(t, res.Curriculum.Objectives)
	assert.Contains(t, res.Curriculum.Objectives, "learn DOM manipulation")
	assert.Contains(t, res.Response, "lessons")
}

func TestCurriculum_FullWalkthrough(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))
	c := domain.NewCurriculum()

	turns := []struct {
		text string
		step CurriculumStep
	}{
		{"Curriculum for Python data analysis", CurriculumInitial},
		{"Junior analysts with spreadsheet experience", CurriculumSubjectDefined},
		{"6 weeks, two sessions per week", CurriculumAudienceDefined},
		{"Clean messy datasets; build pandas pipelines; present charts clearly", CurriculumDurationDefined},
		{"Week 1 loading CSV files and exploring frames. Week 2 grouping and aggregating sales data", CurriculumObjectivesDefined},
		{"Use these resources: https://pandas.pydata.org and the book \"Python for Data Analysis\"", CurriculumLessonPlanning},
		{"I want to assess them with a quiz and a final project", CurriculumResourceGathering},
		{"Add a presentation too", CurriculumComplete},
	}

	for _, turn := range turns {
		res := e.Process(turn.text, c, nil)
		require.Equal(t, turn.step, res.Step, "turn %q", turn.text)
		c = res.Curriculum
	}

	assert.Equal(t, "Python data analysis", c.Subject)
	assert.Equal(t, "Junior analysts with spreadsheet experience", c.TargetAudience)
	assert.Equal(t, "6 weeks, two sessions per week", c.Duration)
	assert.Len(t, c.Objectives, 3)
	require.Len(t, c.Lessons, 2)
	assert.Equal(t, "Lesson 1", c.Lessons[0].Title)
	assert.Equal(t, "Lesson 2", c.Lessons[1].Title)
	require.Len(t, c.Resources, 2)
	assert.Equal(t, domain.ResourceLink, c.Resources[0].Type)
	assert.Equal(t, domain.ResourceBook, c.Resources[1].Type)
	assert.Equal(t, "Python for Data Analysis", c.Resources[1].Title)
	require.Len(t, c.Assessments, 3)
	assert.Equal(t, domain.AssessmentQuiz, c.Assessments[0].Type)
	assert.Equal(t, domain.AssessmentProject, c.Assessments[1].Type)
	assert.Equal(t, domain.AssessmentPresentation, c.Assessments[2].Type)
	assert.Equal(t, CurriculumComplete, ResolveCurriculumStep(c))
}

func TestCurriculum_LessonPlanningAppendsWithoutResourceKeyword(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))
	c := curriculumAt(CurriculumLessonPlanning)

	res := e.Process("Session 3 building a small command line tool end to end", c, nil)

	assert.Len(t, res.Curriculum.Lessons, 2)
	assert.Equal(t, "Lesson 2", res.Curriculum.Lessons[1].Title)
	assert.Contains(t, res.Response, "Current lessons (2)")
	assert.Empty(t, res.Curriculum.Resources)
}

func TestCurriculum_ResourceGatheringWithoutAssessmentKeyword(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))
	c := curriculumAt(CurriculumResourceGathering)

	res := e.Process("Also the video \"Go in 100 seconds\"", c, nil)

	require.Len(t, res.Curriculum.Resources, 2)
	assert.Equal(t, domain.ResourceVideo, res.Curriculum.Resources[1].Type)
	assert.Empty(t, res.Curriculum.Assessments)
	assert.Contains(t, res.Response, "Added to your resource list!")
}

func TestCurriculum_CompleteReentersAssessmentBranch(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))
	c := curriculumAt(CurriculumComplete)

	res := e.Process("one more exam at the end", c, nil)

	assert.Equal(t, CurriculumComplete, res.Step)
	assert.Len(t, res.Curriculum.Assessments, 2)
	assert.Contains(t, res.Response, "**Summary:**")
	assert.Contains(t, res.Response, "- **Assessments:** 2 designed")
}

func TestCurriculum_DoesNotMutateInput(t *testing.T) {
	e := NewCurriculumEngine(NewSequenceIDs("c"))
	c := curriculumAt(CurriculumLessonPlanning)
	c.Lessons = make([]domain.Lesson, 1, 8)
	c.Lessons[0] = domain.Lesson{ID: "l-0", Title: "Lesson 1"}

	res := e.Process("Day 2 writing table driven tests for the parser package", c, nil)

	assert.Len(t, c.Lessons, 1)
	assert.Len(t, res.Curriculum.Lessons, 2)
	spare := c.Lessons[:2]
	assert.Empty(t, spare[1].ID, "caller backing array must stay untouched")
}

func TestCurriculum_EmptyMessageOnDefaultRecord(t *testing.T) {
	e := NewCurriculumEngine(nil)

	res := e.Process("", domain.NewCurriculum(), nil)

	assert.NotEmpty(t, res.Response)
	assert.Empty(t, res.Curriculum.Subject)
	assert.NotNil(t, res.Curriculum.Objectives)
}

// curriculumAt returns a record whose resolved step is step.
func curriculumAt(step CurriculumStep) domain.Curriculum {
	c := domain.NewCurriculum()
	fill := []func(){
		func() { c.Subject = "Go" },
		func() { c.TargetAudience = "Backend developers" },
		func() { c.Duration = "4 weeks" },
		func() { c.Objectives = []string{"Write idiomatic Go services"} },
		func() { c.Lessons = []domain.Lesson{{ID: "l-1", Title: "Lesson 1"}} },
		func() { c.Resources = []domain.Resource{{ID: "r-1", Title: "Tour", Type: domain.ResourceLink}} },
		func() {
			c.Assessments = []domain.Assessment{{ID: "a-1", Title: "Quiz Assessment", Type: domain.AssessmentQuiz}}
		},
	}
	for i := 0; i < step.Ordinal() && i < len(fill); i++ {
		fill[i]()
	}
	return c
}
