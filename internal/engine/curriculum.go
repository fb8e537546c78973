package engine

import "github.com/alexanderramin/scriptchat/internal/domain"

// CurriculumResult is the outcome of one curriculum turn.
type CurriculumResult struct {
	Response   string
	Step       CurriculumStep
	Curriculum domain.Curriculum
}

// CurriculumEngine walks a user through subject, audience, duration,
// objectives, lessons, resources and assessments.
type CurriculumEngine struct {
	ids IDGenerator
}

func NewCurriculumEngine(ids IDGenerator) *CurriculumEngine {
	return &CurriculumEngine{ids: idsOrDefault(ids)}
}

// Process handles one user message. The input record is never modified;
// the returned record shares every slice that the turn did not extend.
// History is accepted for a uniform signature and is not consulted.
func (e *CurriculumEngine) Process(text string, current domain.Curriculum, _ []domain.Message) CurriculumResult {
	step := ResolveCurriculumStep(current)
	response, updated := e.advance(step, text, current)
	return CurriculumResult{Response: response, Step: step, Curriculum: updated}
}

func (e *CurriculumEngine) advance(step CurriculumStep, text string, c domain.Curriculum) (string, domain.Curriculum) {
	switch step {
	case CurriculumInitial:
		c.Subject = ExtractSubject(text)
		return subjectReply(c.Subject), c

	case CurriculumSubjectDefined:
		c.TargetAudience = ExtractAudience(text)
		return audienceReply(c.TargetAudience), c

	case CurriculumAudienceDefined:
		c.Duration = ExtractDuration(text)
		return durationReply(c.Duration), c

	case CurriculumDurationDefined:
		c.Objectives = appendFresh(c.Objectives, ExtractObjectives(text)...)
		return objectivesReply(c.Objectives), c

	case CurriculumObjectivesDefined:
		c.Lessons = appendFresh(c.Lessons, ExtractLessons(text, len(c.Lessons), e.ids)...)
		return lessonPlanningReply(c), c

	case CurriculumLessonPlanning:
		if containsAny(text, "resource", "material") {
			c.Resources = appendFresh(c.Resources, ExtractResources(text, e.ids)...)
			return resourceReply(c), c
		}
		c.Lessons = appendFresh(c.Lessons, ExtractLessons(text, len(c.Lessons), e.ids)...)
		return continuedLessonReply(c), c

	case CurriculumResourceGathering:
		if containsAny(text, "assess", "test", "grade") {
			c.Assessments = appendFresh(c.Assessments, ExtractAssessments(text, e.ids)...)
			return assessmentReply(c), c
		}
		c.Resources = appendFresh(c.Resources, ExtractResources(text, e.ids)...)
		return continuedResourceReply(), c

	case CurriculumAssessmentPlanning, CurriculumComplete:
		c.Assessments = appendFresh(c.Assessments, ExtractAssessments(text, e.ids)...)
		return curriculumFinalReply(c), c

	default:
		return curriculumGenericReply(c), c
	}
}
