package domain

// TikTokShop is the structured record built by the e-commerce strategist.
type TikTokShop struct {
	BusinessName       string    `json:"business_name" yaml:"business_name"`
	Niche              string    `json:"niche" yaml:"niche"`
	TargetAudience     string    `json:"target_audience" yaml:"target_audience"`
	Products           []Product `json:"products" yaml:"products"`
	ContentStrategy    string    `json:"content_strategy" yaml:"content_strategy"`
	PostingSchedule    string    `json:"posting_schedule" yaml:"posting_schedule"`
	MarketingGoals     []string  `json:"marketing_goals" yaml:"marketing_goals"`
	Budget             string    `json:"budget" yaml:"budget"`
	CompetitorAnalysis []string  `json:"competitor_analysis" yaml:"competitor_analysis"`
}

type Product struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Price          float64  `json:"price" yaml:"price"`
	Category       string   `json:"category" yaml:"category"`
	TargetAudience string   `json:"target_audience" yaml:"target_audience"`
	Keywords       []string `json:"keywords" yaml:"keywords"`
	ContentIdeas   []string `json:"content_ideas" yaml:"content_ideas"`
	Hooks          []string `json:"hooks" yaml:"hooks"`
	CallToActions  []string `json:"call_to_actions" yaml:"call_to_actions"`
}

// NewTikTokShop returns an empty shop record with non-nil lists.
func NewTikTokShop() TikTokShop {
	return TikTokShop{
		Products:           []Product{},
		MarketingGoals:     []string{},
		CompetitorAnalysis: []string{},
	}
}

func (s TikTokShop) IsEmpty() bool {
	return s.BusinessName == "" && s.Niche == "" && len(s.Products) == 0
}
