package engine

import "github.com/alexanderramin/scriptchat/internal/domain"

// CurriculumStep is a position in the curriculum designer's sequence.
type CurriculumStep string

const (
	CurriculumInitial           CurriculumStep = "initial"
	CurriculumSubjectDefined    CurriculumStep = "subject_defined"
	CurriculumAudienceDefined   CurriculumStep = "audience_defined"
	CurriculumDurationDefined   CurriculumStep = "duration_defined"
	CurriculumObjectivesDefined CurriculumStep = "objectives_defined"
	CurriculumLessonPlanning    CurriculumStep = "lesson_planning"
	CurriculumResourceGathering CurriculumStep = "resource_gathering"
	// CurriculumAssessmentPlanning labels the branch a complete record is
	// handled by; the resolver returns CurriculumComplete instead.
	CurriculumAssessmentPlanning CurriculumStep = "assessment_planning"
	CurriculumComplete           CurriculumStep = "complete"
)

var curriculumSteps = []CurriculumStep{
	CurriculumInitial,
	CurriculumSubjectDefined,
	CurriculumAudienceDefined,
	CurriculumDurationDefined,
	CurriculumObjectivesDefined,
	CurriculumLessonPlanning,
	CurriculumResourceGathering,
	CurriculumAssessmentPlanning,
	CurriculumComplete,
}

// CurriculumSteps returns the step enumeration in order.
func CurriculumSteps() []CurriculumStep {
	return appendFresh(curriculumSteps)
}

// Ordinal is the zero-based position of s in the enumeration, or -1.
func (s CurriculumStep) Ordinal() int {
	for i, step := range curriculumSteps {
		if step == s {
			return i
		}
	}
	return -1
}

func (s CurriculumStep) String() string { return string(s) }

// ResolveCurriculumStep derives the current step from which fields of c
// are still empty. It depends on nothing but c.
func ResolveCurriculumStep(c domain.Curriculum) CurriculumStep {
	switch {
	case c.Subject == "":
		return CurriculumInitial
	case c.TargetAudience == "":
		return CurriculumSubjectDefined
	case c.Duration == "":
		return CurriculumAudienceDefined
	case len(c.Objectives) == 0:
		return CurriculumDurationDefined
	case len(c.Lessons) == 0:
		return CurriculumObjectivesDefined
	case len(c.Resources) == 0:
		return CurriculumLessonPlanning
	case len(c.Assessments) == 0:
		return CurriculumResourceGathering
	default:
		return CurriculumComplete
	}
}
