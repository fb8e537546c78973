package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
)

// FormatSummary renders the summary panel for the active record of mode.
// A missing record renders as the mode's empty record.
func FormatSummary(mode domain.Mode, b *domain.Bundle) string {
	switch mode {
	case domain.ModeCurriculum:
		c := domain.NewCurriculum()
		if b != nil && b.Curriculum != nil {
			c = *b.Curriculum
		}
		return FormatCurriculumSummary(c)
	case domain.ModeEcom:
		s := domain.NewTikTokShop()
		if b != nil && b.TikTokShop != nil {
			s = *b.TikTokShop
		}
		return FormatShopSummary(s)
	case domain.ModeGeneral:
		g := domain.NewGeneralChat()
		if b != nil && b.GeneralChat != nil {
			g = *b.GeneralChat
		}
		return FormatGeneralSummary(g)
	default:
		return Dim(fmt.Sprintf("No summary for mode %q.", mode))
	}
}

// StepProgress renders "●●○○○○○○ 2/8 audience defined" for a position in
// an ordered step list. The first step counts as nothing done.
func StepProgress(ordinal, steps int, name string) string {
	if steps < 2 {
		return ""
	}
	last := steps - 1
	done := min(max(ordinal, 0), last)
	bar := StyleGreen.Render(strings.Repeat("●", done)) + Dim(strings.Repeat("○", last-done))
	return fmt.Sprintf("%s %d/%d %s", bar, done, last, strings.ReplaceAll(name, "_", " "))
}

func FormatCurriculumSummary(c domain.Curriculum) string {
	step := engine.ResolveCurriculumStep(c)
	lines := []string{
		StepProgress(step.Ordinal(), len(engine.CurriculumSteps()), step.String()),
		"",
		Field("Subject", c.Subject),
		Field("Audience", c.TargetAudience),
		Field("Duration", c.Duration),
		List("Objectives", c.Objectives),
	}

	lessons := make([]string, 0, len(c.Lessons))
	for i, l := range c.Lessons {
		entry := fmt.Sprintf("%d. %s", i+1, l.Title)
		if l.Duration != "" {
			entry += Dim(" (" + l.Duration + ")")
		}
		lessons = append(lessons, entry)
	}
	lines = append(lines, List("Lessons", lessons))

	resources := make([]string, 0, len(c.Resources))
	for _, r := range c.Resources {
		resources = append(resources, r.Title+Dim(" ["+string(r.Type)+"]"))
	}
	lines = append(lines, List("Resources", resources))

	assessments := make([]string, 0, len(c.Assessments))
	for _, a := range c.Assessments {
		entry := a.Title + Dim(" ["+string(a.Type)+"]")
		if a.Points != nil {
			entry += Dim(fmt.Sprintf(" %d pts", *a.Points))
		}
		assessments = append(assessments, entry)
	}
	lines = append(lines, List("Assessments", assessments))

	return RenderBox(domain.CoalesceStr(c.Subject, "Curriculum"), strings.Join(lines, "\n"))
}

func FormatShopSummary(s domain.TikTokShop) string {
	step := engine.ResolveShopStep(s)

	products := make([]string, 0, len(s.Products))
	for _, p := range s.Products {
		entry := p.Name
		if p.Price > 0 {
			entry += Dim(fmt.Sprintf(" $%.2f", p.Price))
		}
		products = append(products, entry)
	}

	lines := []string{
		StepProgress(step.Ordinal(), len(engine.ShopSteps()), step.String()),
		"",
		Field("Business", s.BusinessName),
		Field("Niche", s.Niche),
		Field("Audience", s.TargetAudience),
		List("Products", products),
		Field("Content", s.ContentStrategy),
		Field("Schedule", s.PostingSchedule),
		Field("Budget", s.Budget),
		List("Goals", s.MarketingGoals),
		List("Competitors", s.CompetitorAnalysis),
	}
	return RenderBox(domain.CoalesceStr(s.BusinessName, "TikTok Shop"), strings.Join(lines, "\n"))
}

func FormatGeneralSummary(g domain.GeneralChat) string {
	lines := []string{
		Field("Topic", g.Topic),
		Field("Summary", g.ConversationSummary),
		List("Key insights", g.KeyInsights.Last(5)),
		List("Follow-ups", g.FollowUpQuestions),
		List("Preferences", g.Preferences),
		Dim(fmt.Sprintf("%d of %d context messages kept", g.Context.Len(), domain.ContextLimit)),
	}
	return RenderBox(domain.CoalesceStr(g.Topic, "General Chat"), strings.Join(lines, "\n"))
}
