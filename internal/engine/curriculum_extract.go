package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

var (
	subjectLeadIn  = regexp.MustCompile(`(?i)^(i want to teach|i'm teaching|teaching|i need a curriculum for|curriculum for)`)
	subjectPrepRe  = regexp.MustCompile(`(?i)^(about|on|for)\s+`)
	objectiveSplit = regexp.MustCompile(`[,;\n]|\band\b|\d+\.|-`)
	objectiveLead  = regexp.MustCompile(`(?i)^(they should|students will|learners will|objectives?:?)`)
	lessonSplit    = regexp.MustCompile(`(?i)lesson \d+|week \d+|day \d+|session \d+`)
	urlRe          = regexp.MustCompile(`https?://\S+`)
	quotedRe       = regexp.MustCompile(`"([^"]+)"|“([^”]+)”|'([^']+)'|‘([^’]+)’`)
)

const (
	minObjectiveLen      = 10
	maxObjectiveLen      = 200
	minLessonLen         = 20
	lessonDescriptionLen = 200
	minQuotedTitleLen    = 3
	defaultLessonLength  = "1 hour"
	defaultPoints        = 100
)

// assessmentVocabulary is checked in order; "test" has no type of its own
// and is recorded as an exam.
var assessmentVocabulary = []struct {
	word string
	typ  domain.AssessmentType
}{
	{"quiz", domain.AssessmentQuiz},
	{"test", domain.AssessmentExam},
	{"exam", domain.AssessmentExam},
	{"assignment", domain.AssessmentAssignment},
	{"project", domain.AssessmentProject},
	{"presentation", domain.AssessmentPresentation},
}

// ExtractSubject pulls the course subject out of an opening statement such
// as "I want to teach JavaScript to beginners".
func ExtractSubject(text string) string {
	cleaned := stripLeading(strings.ToLower(text), subjectLeadIn, subjectPrepRe)
	return capitalizeFirst(strings.TrimSpace(cleaned))
}

func ExtractAudience(text string) string {
	return strings.TrimSpace(text)
}

func ExtractDuration(text string) string {
	return strings.TrimSpace(text)
}

// ExtractObjectives splits a free-form list of goals into objectives.
func ExtractObjectives(text string) []string {
	var out []string
	for _, part := range splitTrimmed(objectiveSplit, text) {
		if runeLen(part) >= maxObjectiveLen {
			continue
		}
		obj := strings.TrimSpace(stripLeading(part, objectiveLead))
		if runeLen(obj) > minObjectiveLen {
			out = append(out, obj)
		}
	}
	return out
}

// ExtractLessons turns "Lesson 1 ... Lesson 2 ..." style text into lessons.
// Titles continue numbering after the existing count.
func ExtractLessons(text string, existing int, ids IDGenerator) []domain.Lesson {
	ids = idsOrDefault(ids)
	var lessons []domain.Lesson
	for _, part := range lessonSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if runeLen(part) <= minLessonLen {
			continue
		}
		lessons = append(lessons, domain.Lesson{
			ID:          ids.NewID(),
			Title:       "Lesson " + strconv.Itoa(existing+len(lessons)+1),
			Description: truncate(part, lessonDescriptionLen),
			Duration:    defaultLessonLength,
			Objectives:  []string{},
			Content:     []string{part},
			Activities:  []string{},
			Assessments: []string{},
		})
	}
	return lessons
}

// ExtractResources finds links and quoted titles.
func ExtractResources(text string, ids IDGenerator) []domain.Resource {
	ids = idsOrDefault(ids)
	var resources []domain.Resource

	for _, url := range urlRe.FindAllString(text, -1) {
		resources = append(resources, domain.Resource{
			ID:          ids.NewID(),
			Title:       "External Resource",
			Type:        domain.ResourceLink,
			URL:         url,
			Description: "Resource mentioned in conversation",
		})
	}

	quotedType := domain.ResourceBook
	if containsAny(text, "video") {
		quotedType = domain.ResourceVideo
	}
	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		title := domain.CoalesceStr(m[1:]...)
		if runeLen(title) <= minQuotedTitleLen {
			continue
		}
		resources = append(resources, domain.Resource{
			ID:          ids.NewID(),
			Title:       title,
			Type:        quotedType,
			Description: "Recommended resource",
		})
	}
	return resources
}

// ExtractAssessments yields one assessment per vocabulary word present.
func ExtractAssessments(text string, ids IDGenerator) []domain.Assessment {
	ids = idsOrDefault(ids)
	lower := strings.ToLower(text)
	var out []domain.Assessment
	for _, v := range assessmentVocabulary {
		if !strings.Contains(lower, v.word) {
			continue
		}
		out = append(out, domain.Assessment{
			ID:          ids.NewID(),
			Title:       capitalizeFirst(v.word) + " Assessment",
			Type:        v.typ,
			Description: "Assessment mentioned in conversation",
			Points:      domain.IntPtr(defaultPoints),
		})
	}
	return out
}
