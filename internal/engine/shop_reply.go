package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

func formatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'f', -1, 64)
}

func businessNameReply(name string) string {
	return fmt.Sprintf(`Awesome! So we're building a TikTok Shop strategy for "%s".

TikTok Shop is one of the hottest opportunities right now for e-commerce!

What's your niche or product category? For example:
- Beauty & skincare
- Fashion & accessories
- Home & lifestyle
- Tech gadgets
- Health & wellness
- Handmade crafts

This helps me understand your market and create targeted content strategies.`, name)
}

func nicheReply(niche string) string {
	return fmt.Sprintf(`Perfect! The %s space has huge potential on TikTok.

Now, who's your ideal customer? Paint me a picture of your target audience:
- Age range
- Interests and hobbies
- Shopping behavior
- What problems do your products solve for them?
- Where do they hang out online?

The more specific you can be, the better I can help you create content that converts!`, niche)
}

func shopAudienceReply(audience, niche string) string {
	return fmt.Sprintf(`Excellent! Your %s products for %s have a clear market fit.

Let's dive into your product lineup. What products do you want to feature in your TikTok Shop?

For each product, share:
- Product name and brief description
- Price point (if you know it)
- What makes it special or unique
- Any variations (colors, sizes, etc.)

Don't worry if you don't have everything figured out yet - we can brainstorm together!`, niche, audience)
}

func productPlanningReply(s domain.TikTokShop) string {
	lines := make([]string, len(s.Products))
	for i, p := range s.Products {
		lines[i] = p.Name
		if p.Price > 0 {
			lines[i] += " (" + formatPrice(p.Price) + ")"
		}
	}
	return fmt.Sprintf(`Great start on your product lineup!

Current products (%d):
%s

Would you like to:
- Add more products to your lineup
- Start planning your content strategy
- Develop marketing campaigns for these products
- Set up your posting schedule

What feels most important to tackle next?`, len(s.Products), numbered(lines, 1))
}

func continuedProductReply(s domain.TikTokShop) string {
	tail := s.Products
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	names := make([]string, len(tail))
	for i, p := range tail {
		names[i] = p.Name
	}
	return fmt.Sprintf(`Added to your product catalog!

Current lineup (%d products):
%s

Continue adding products or let's move on to planning your content strategy and posting schedule!`,
		len(s.Products), numbered(names, len(s.Products)-len(tail)+1))
}

func contentStrategyReply() string {
	return `Excellent content strategy! This will help you connect authentically with your audience.

Now let's talk posting consistency. What's realistic for your schedule?

Consider:
- How often can you post? (Daily, 3x/week, etc.)
- Best times for your audience
- Content batching vs. daily creation
- Mix of product showcases, lifestyle content, and engaging hooks

What posting frequency feels sustainable for you?`
}

func postingScheduleReply() string {
	return `Perfect! Consistency is key on TikTok.

Let's talk budget. What's your monthly marketing budget for:
- Paid TikTok ads (optional but powerful)
- Product sampling/giveaways
- Content creation tools
- Influencer collaborations

Even a small budget can go far with the right strategy. What are you comfortable investing monthly?`
}

func budgetReply() string {
	return `Smart budgeting! Now let's analyze your competition.

Who are the top creators/brands in your space that you admire or compete with?

Look for:
- Similar products to yours
- Same target audience
- Successful content formats
- Pricing strategies

This helps us identify opportunities and differentiate your brand. Share any competitors you've noticed!`
}

func competitorReply() string {
	return `Great competitive intelligence!

Finally, what are your main marketing goals for the next 3-6 months?

Examples:
- Build brand awareness
- Drive direct sales
- Grow follower count
- Establish thought leadership
- Launch new products
- Increase customer lifetime value

What success looks like for you?`
}

func shopFinalReply(s domain.TikTokShop) string {
	var b strings.Builder
	b.WriteString("🎉 Your TikTok Shop strategy is taking shape beautifully!\n\n")
	b.WriteString("**Strategy Summary:**\n")
	fmt.Fprintf(&b, "- **Business:** %s\n", s.BusinessName)
	fmt.Fprintf(&b, "- **Niche:** %s\n", s.Niche)
	fmt.Fprintf(&b, "- **Audience:** %s\n", s.TargetAudience)
	fmt.Fprintf(&b, "- **Products:** %d planned\n", len(s.Products))
	fmt.Fprintf(&b, "- **Budget:** %s\n", s.Budget)
	fmt.Fprintf(&b, "- **Goals:** %d defined\n\n", len(s.MarketingGoals))
	b.WriteString(`**Your TikTok Shop Action Plan is Ready!**

You can:
- Review your complete strategy with /summary
- Export your plan to share with team members
- Start implementing your content calendar
- Begin creating your first viral videos

Ready to take TikTok by storm? 🚀 What would you like to refine or add to your strategy?`)
	return b.String()
}

func shopGenericReply(s domain.TikTokShop) string {
	return fmt.Sprintf(`I understand! Let me help you with that aspect of your TikTok Shop strategy.

Based on your %s business targeting %s, I can help you:
- Refine your product positioning
- Develop viral content ideas
- Optimize pricing strategies
- Plan influencer collaborations
- Create conversion-focused campaigns

What specific area would you like to dive deeper into?`, s.Niche, s.TargetAudience)
}
