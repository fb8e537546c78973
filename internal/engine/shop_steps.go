package engine

import "github.com/alexanderramin/scriptchat/internal/domain"

// ShopStep is a position in the TikTok Shop strategist's sequence.
type ShopStep string

const (
	ShopInitial          ShopStep = "initial"
	ShopBusinessDefined  ShopStep = "business_defined"
	ShopNicheDefined     ShopStep = "niche_defined"
	ShopAudienceDefined  ShopStep = "audience_defined"
	ShopProductsPlanning ShopStep = "products_planning"
	ShopContentStrategy  ShopStep = "content_strategy"
	ShopBudgetPlanning   ShopStep = "budget_planning"
	// ShopCompetitorAnalysis labels the branch a complete record is handled
	// by; the resolver returns ShopComplete instead.
	ShopCompetitorAnalysis ShopStep = "competitor_analysis"
	ShopComplete           ShopStep = "complete"
)

var shopSteps = []ShopStep{
	ShopInitial,
	ShopBusinessDefined,
	ShopNicheDefined,
	ShopAudienceDefined,
	ShopProductsPlanning,
	ShopContentStrategy,
	ShopBudgetPlanning,
	ShopCompetitorAnalysis,
	ShopComplete,
}

func ShopSteps() []ShopStep {
	return appendFresh(shopSteps)
}

func (s ShopStep) Ordinal() int {
	for i, step := range shopSteps {
		if step == s {
			return i
		}
	}
	return -1
}

func (s ShopStep) String() string { return string(s) }

// ResolveShopStep derives the current step from the shop record alone.
// The posting schedule is optional and never gates progress.
func ResolveShopStep(s domain.TikTokShop) ShopStep {
	switch {
	case s.BusinessName == "":
		return ShopInitial
	case s.Niche == "":
		return ShopBusinessDefined
	case s.TargetAudience == "":
		return ShopNicheDefined
	case len(s.Products) == 0:
		return ShopAudienceDefined
	case s.ContentStrategy == "":
		return ShopProductsPlanning
	case s.Budget == "":
		return ShopContentStrategy
	case len(s.CompetitorAnalysis) == 0:
		return ShopBudgetPlanning
	default:
		return ShopComplete
	}
}
