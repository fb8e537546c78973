package engine

import "github.com/alexanderramin/scriptchat/internal/domain"

type ShopResult struct {
	Response string
	Step     ShopStep
	Shop     domain.TikTokShop
}

// ShopEngine builds a TikTok Shop strategy: business, niche, audience,
// products, content, schedule, budget, competitors and goals.
type ShopEngine struct {
	ids IDGenerator
}

func NewShopEngine(ids IDGenerator) *ShopEngine {
	return &ShopEngine{ids: idsOrDefault(ids)}
}

// Process handles one user message without touching current.
func (e *ShopEngine) Process(text string, current domain.TikTokShop, _ []domain.Message) ShopResult {
	step := ResolveShopStep(current)
	response, updated := e.advance(step, text, current)
	return ShopResult{Response: response, Step: step, Shop: updated}
}

func (e *ShopEngine) advance(step ShopStep, text string, s domain.TikTokShop) (string, domain.TikTokShop) {
	switch step {
	case ShopInitial:
		s.BusinessName = ExtractBusinessName(text)
		return businessNameReply(s.BusinessName), s

	case ShopBusinessDefined:
		s.Niche = ExtractNiche(text)
		return nicheReply(s.Niche), s

	case ShopNicheDefined:
		s.TargetAudience = ExtractShopAudience(text)
		return shopAudienceReply(s.TargetAudience, s.Niche), s

	case ShopAudienceDefined:
		s.Products = appendFresh(s.Products, ExtractProducts(text, s, e.ids)...)
		return productPlanningReply(s), s

	case ShopProductsPlanning:
		if containsAny(text, "content", "video", "post") {
			s.ContentStrategy = ExtractContentStrategy(text)
			return contentStrategyReply(), s
		}
		s.Products = appendFresh(s.Products, ExtractProducts(text, s, e.ids)...)
		return continuedProductReply(s), s

	case ShopContentStrategy:
		if containsAny(text, "budget", "money", "cost") {
			s.Budget = ExtractBudget(text)
			return budgetReply(), s
		}
		if s.PostingSchedule == "" {
			s.PostingSchedule = ExtractPostingSchedule(text)
		}
		return postingScheduleReply(), s

	case ShopBudgetPlanning:
		s.CompetitorAnalysis = appendFresh(s.CompetitorAnalysis, ExtractCompetitors(text)...)
		return competitorReply(), s

	case ShopCompetitorAnalysis, ShopComplete:
		s.MarketingGoals = appendFresh(s.MarketingGoals, ExtractMarketingGoals(text)...)
		return shopFinalReply(s), s

	default:
		return shopGenericReply(s), s
	}
}
