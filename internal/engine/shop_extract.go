package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

var (
	businessLeadIn = regexp.MustCompile(`(?i)^(i want to create|i'm building|my business is|business name is|i'm starting)`)
	articleRe      = regexp.MustCompile(`(?i)^(a |an |the )`)
	productSplit   = regexp.MustCompile(`(?i)product \d+|item \d+|\n|,`)
	priceRe        = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
	competitorSep  = regexp.MustCompile(`,|\n`)
	goalSep        = regexp.MustCompile(`,|\n|;|\d+\.`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

const (
	minProductLen    = 10
	productNameLen   = 50
	ideaSnippetLen   = 20
	maxKeywords      = 5
	minKeywordLen    = 3
	minMarketGoalLen = 10
)

var keywordStopwords = wordSet("this", "that", "with", "have", "will", "from")

var productHooks = []string{
	"You'll never believe what this does...",
	"This changed everything for me...",
	"POV: You discover the perfect...",
	"Everyone's asking where I got this...",
	"This is why everyone needs...",
}

var productCTAs = []string{
	"Link in bio to shop!",
	"Get yours before they sell out!",
	"Use my code for 10% off!",
	"Which color would you choose?",
	"Tag someone who needs this!",
}

// ExtractBusinessName pulls a shop name out of an opening statement.
// The article is stripped before trimming, so "I want to create a shop"
// keeps its article.
func ExtractBusinessName(text string) string {
	cleaned := stripLeading(strings.ToLower(text), businessLeadIn, articleRe)
	return capitalizeFirst(strings.TrimSpace(cleaned))
}

func ExtractNiche(text string) string           { return strings.TrimSpace(text) }
func ExtractShopAudience(text string) string    { return strings.TrimSpace(text) }
func ExtractContentStrategy(text string) string { return strings.TrimSpace(text) }
func ExtractPostingSchedule(text string) string { return strings.TrimSpace(text) }
func ExtractBudget(text string) string          { return strings.TrimSpace(text) }

// ExtractProducts splits a product list on "product N", "item N", commas
// and newlines and builds one product per meaningful segment.
func ExtractProducts(text string, shop domain.TikTokShop, ids IDGenerator) []domain.Product {
	ids = idsOrDefault(ids)
	var products []domain.Product
	for _, part := range productSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if runeLen(part) <= minProductLen {
			continue
		}
		products = append(products, domain.Product{
			ID:             ids.NewID(),
			Name:           truncate(part, productNameLen),
			Description:    part,
			Price:          parsePrice(part),
			Category:       shop.Niche,
			TargetAudience: shop.TargetAudience,
			Keywords:       ExtractKeywords(part),
			ContentIdeas:   contentIdeas(part),
			Hooks:          appendFresh(productHooks),
			CallToActions:  appendFresh(productCTAs),
		})
	}
	return products
}

func parsePrice(text string) float64 {
	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return price
}

// ExtractKeywords returns up to five lower-cased words longer than three
// characters, skipping filler words.
func ExtractKeywords(text string) []string {
	keywords := []string{}
	for _, w := range whitespaceRe.Split(strings.ToLower(text), -1) {
		if runeLen(w) <= minKeywordLen || keywordStopwords[w] {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

func contentIdeas(text string) []string {
	snippet := truncate(text, ideaSnippetLen)
	return []string{
		"Unboxing video for " + snippet + "...",
		"Before and after using " + snippet + "...",
		"Day in the life with " + snippet + "...",
		"Common mistakes when using " + snippet + "...",
		"5 ways to use " + snippet + "...",
	}
}

func ExtractCompetitors(text string) []string {
	return splitTrimmed(competitorSep, text)
}

func ExtractMarketingGoals(text string) []string {
	var goals []string
	for _, g := range splitTrimmed(goalSep, text) {
		if runeLen(g) > minMarketGoalLen {
			goals = append(goals, g)
		}
	}
	return goals
}
