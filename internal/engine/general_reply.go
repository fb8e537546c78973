package engine

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

var (
	greetingRe = regexp.MustCompile(`(?i)^(hi|hello|hey|good morning|good afternoon|good evening)\b`)
	farewellRe = regexp.MustCompile(`(?i)^(bye|goodbye|see you|farewell|thanks|thank you)\b`)
)

// greetingHistoryLimit is how many prior messages still count as the
// opening of a conversation.
const greetingHistoryLimit = 2

type sentiment int

const (
	sentimentNeutral sentiment = iota
	sentimentPositive
	sentimentNegative
)

var (
	positiveWords = wordSet("great", "awesome", "love", "excellent", "amazing", "wonderful", "fantastic", "good", "happy", "excited")
	negativeWords = wordSet("bad", "terrible", "hate", "awful", "horrible", "sad", "angry", "frustrated", "difficult", "problem", "issue")
)

var questionOpeners = []struct {
	prefix  string
	opening func(topic string) string
}{
	{"how", func(string) string { return "Great question! Let me break this down for you step by step..." }},
	{"what", func(topic string) string {
		return "That's an interesting question about " + topic + ". Here's what I think..."
	}},
	{"why", func(string) string {
		return `That's a thoughtful "why" question. Let me explore the reasoning behind this...`
	}},
	{"where", func(string) string { return "For location or context questions like this, here's what I'd suggest..." }},
	{"when", func(string) string { return "Regarding timing and scheduling, here's my perspective..." }},
	{"who", func(string) string { return "When it comes to people or roles involved, here's what I'd consider..." }},
}

const generalQuestionOpening = "That's a great question! Let me think through this with you..."

func generalReply(text string, chat domain.GeneralChat, history []domain.Message) string {
	switch {
	case greetingRe.MatchString(text) && len(history) <= greetingHistoryLimit:
		return "Hello! I'm your general chat assistant. I'm here to help with any questions, have conversations, brainstorm ideas, or assist with whatever you need. What's on your mind today?"
	case farewellRe.MatchString(text):
		return "Thank you for the great conversation! I enjoyed discussing " +
			domain.CoalesceStr(chat.Topic, "various topics") +
			" with you. Feel free to come back anytime you want to chat or need assistance. Take care!"
	case strings.Contains(text, "?"):
		return questionReply(text, chat)
	default:
		return statementReply(text, chat)
	}
}

func questionOpening(text, topic string) string {
	lower := strings.ToLower(text)
	for _, q := range questionOpeners {
		if strings.HasPrefix(lower, q.prefix) {
			return q.opening(domain.CoalesceStr(topic, "this topic"))
		}
	}
	return generalQuestionOpening
}

func questionReply(text string, chat domain.GeneralChat) string {
	var b strings.Builder
	b.WriteString(questionOpening(text, chat.Topic))
	if chat.Context.Len() > 0 {
		b.WriteString("\n\nGiven what we've discussed about " + strings.Join(chat.Context.Last(2), " and ") + ", ")
	}
	b.WriteString("\n\nI'd be happy to elaborate on any part of this or explore related aspects. What specific area interests you most?")
	return b.String()
}

func statementReply(text string, chat domain.GeneralChat) string {
	var b strings.Builder
	switch classifySentiment(text) {
	case sentimentPositive:
		b.WriteString("That sounds really interesting! I can sense your enthusiasm about this. ")
	case sentimentNegative:
		b.WriteString("I understand that can be challenging. Let me see if I can help you work through this. ")
	default:
		b.WriteString("I appreciate you sharing that with me. It's a thoughtful perspective. ")
	}

	if chat.Topic != "" && chat.Topic != domain.DefaultTopic {
		b.WriteString("Building on our discussion about " + chat.Topic + ", ")
	}
	b.WriteString("what aspects of this would you like to explore further? I'm here to help however I can.")

	if last := chat.KeyInsights.Last(1); len(last) == 1 {
		b.WriteString("\n\nBased on our conversation, I notice you're in a " + strings.ToLower(last[0]) + ".")
	}
	return b.String()
}

// classifySentiment counts positive and negative keywords; ties are neutral.
func classifySentiment(text string) sentiment {
	var pos, neg int
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, `.,!?;:"'()`)
		switch {
		case positiveWords[w]:
			pos++
		case negativeWords[w]:
			neg++
		}
	}
	switch {
	case pos > neg:
		return sentimentPositive
	case neg > pos:
		return sentimentNegative
	default:
		return sentimentNeutral
	}
}
