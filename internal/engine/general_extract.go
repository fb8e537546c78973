package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

const (
	minContextMessageLen = 10
	minSentenceLen       = 20
	minTopicWordLen      = 4
	maxTopicWords        = 3
	minSummaryWordLen    = 6
	maxSummaryTopics     = 5
	summaryTopicsShown   = 3
	focusExcerptLen      = 50
	engagedContextCount  = 3
)

var topicRules = []rule{
	{regexp.MustCompile(`(?i)(?:about|regarding|concerning|on the topic of|discussing)\s+(.+?)(?:\.|$|\?|!)`), lastGroup},
	{regexp.MustCompile(`(?i)(?:i want to talk about|let's discuss|tell me about)\s+(.+?)(?:\.|$|\?|!)`), lastGroup},
	{regexp.MustCompile(`(?i)(?:what do you think about|thoughts on)\s+(.+?)(?:\.|$|\?|!)`), lastGroup},
}

var contextRules = []rule{
	{regexp.MustCompile(`(?i)i am (working on|building|creating|studying|learning|interested in) (.+)`), lastGroup},
	{regexp.MustCompile(`(?i)my (goal|objective|plan|idea|project) is (.+)`), lastGroup},
	{regexp.MustCompile(`(?i)i need help with (.+)`), lastGroup},
	{regexp.MustCompile(`(?i)i'm trying to (.+)`), lastGroup},
	{regexp.MustCompile(`(?i)the problem is (.+)`), lastGroup},
	{regexp.MustCompile(`(?i)what i want to do is (.+)`), lastGroup},
}

var preferenceRules = []rule{
	{regexp.MustCompile(`(?i)\bi (?:prefer|like|love|enjoy) (.+?)(?:[.!?]|$)`), lastGroup},
	{regexp.MustCompile(`(?i)\bi'd rather (.+?)(?:[.!?]|$)`), lastGroup},
}

var (
	sentenceSep = regexp.MustCompile(`[.!?]`)

	topicStopwords = wordSet("hello", "thanks", "please", "would", "could", "should", "think", "about")

	summaryStopwords = wordSet("hello", "thanks", "please", "would", "could", "should", "think", "about",
		"something", "anything", "everything", "nothing", "someone", "everyone", "anyone", "nobody")
)

// insightRules map keyword families to the insight they imply.
var insightRules = []struct {
	keywords []string
	insight  string
}{
	{[]string{"problem", "issue"}, "Problem-solving mode: User is working through challenges"},
	{[]string{"learn", "understand"}, "Learning mode: User is seeking knowledge and understanding"},
	{[]string{"create", "build", "make"}, "Creative mode: User is in a building/creating phase"},
	{[]string{"decide", "choose", "option"}, "Decision-making mode: User needs help with choices"},
}

const engagedInsight = "Engaged conversation: Multiple contexts being explored"

// ExtractTopic finds what the user wants to talk about. Explicit phrases
// win; otherwise the first few long words are used; failing that the
// default topic.
func ExtractTopic(text string) string {
	if topic, ok := firstMatch(topicRules, text); ok {
		return topic
	}

	var important []string
	for _, w := range strings.Split(strings.ToLower(strings.TrimSpace(text)), " ") {
		if runeLen(w) > minTopicWordLen && !topicStopwords[w] {
			important = append(important, w)
			if len(important) == maxTopicWords {
				break
			}
		}
	}
	if len(important) > 0 {
		return strings.Join(important, " ")
	}
	return domain.DefaultTopic
}

// ExtractContext returns one snippet describing what the user is doing,
// or "" when the message carries none.
func ExtractContext(text string) string {
	if runeLen(text) < minContextMessageLen {
		return ""
	}
	if ctx, ok := firstMatch(contextRules, text); ok {
		return ctx
	}
	for _, s := range sentenceSep.Split(text, -1) {
		if runeLen(strings.TrimSpace(s)) > minSentenceLen {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// ExtractPreference captures statements such as "I prefer short answers".
func ExtractPreference(text string) string {
	pref, _ := firstMatch(preferenceRules, text)
	return pref
}

// DeriveInsights lists the conversational modes a message suggests.
// contextCount is the size of the context window after this turn.
func DeriveInsights(text string, contextCount int) []string {
	var insights []string
	for _, r := range insightRules {
		if containsAny(text, r.keywords...) {
			insights = append(insights, r.insight)
		}
	}
	if contextCount > engagedContextCount {
		insights = append(insights, engagedInsight)
	}
	return insights
}

// FollowUpQuestions rebuilds the suggested follow-ups for this turn.
func FollowUpQuestions(text, topic string) []string {
	var qs []string
	if strings.Contains(text, "?") {
		qs = append(qs,
			"Would you like me to elaborate on any part of my response?",
			"Is there a specific aspect you'd like to explore further?")
	} else {
		qs = append(qs,
			"What would you like to know more about?",
			"How can I help you with this further?")
	}
	if topic != "" && topic != domain.DefaultTopic {
		qs = append(qs, "Are there other aspects of "+topic+" you'd like to discuss?")
	}
	qs = append(qs, "Is there anything else I can help you with?")
	return qs[:domain.FollowUpLimit]
}

// SummarizeConversation describes the conversation so far from scratch.
func SummarizeConversation(history []domain.Message, current string) string {
	var b strings.Builder
	b.WriteString("Conversation with " + strconv.Itoa(domain.CountRole(history, domain.RoleUser)) + " user messages")

	if topics := mainTopics(history); len(topics) > 0 {
		if len(topics) > summaryTopicsShown {
			topics = topics[:summaryTopicsShown]
		}
		b.WriteString(". Main topics: " + strings.Join(topics, ", "))
	}
	if runeLen(current) > focusExcerptLen {
		b.WriteString(". Current focus: " + truncate(current, focusExcerptLen) + "...")
	}
	return b.String()
}

// mainTopics collects distinct long words from the user's messages in the
// order they first appeared.
func mainTopics(history []domain.Message) []string {
	seen := map[string]bool{}
	var topics []string
	for _, m := range history {
		if m.Role != domain.RoleUser {
			continue
		}
		for _, w := range whitespaceRe.Split(strings.ToLower(m.Content), -1) {
			if runeLen(w) <= minSummaryWordLen || summaryStopwords[w] || seen[w] {
				continue
			}
			seen[w] = true
			topics = append(topics, w)
			if len(topics) == maxSummaryTopics {
				return topics
			}
		}
	}
	return topics
}
