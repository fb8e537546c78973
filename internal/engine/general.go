package engine

import (
	"slices"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

type GeneralChatResult struct {
	Response string
	Chat     domain.GeneralChat
}

// GeneralChatEngine has no step sequence; every turn refreshes topic,
// context, insights, follow-ups and the running summary.
type GeneralChatEngine struct{}

func NewGeneralChatEngine() *GeneralChatEngine {
	return &GeneralChatEngine{}
}

// Process handles one user message. history holds the messages that came
// before text.
func (e *GeneralChatEngine) Process(text string, current domain.GeneralChat, history []domain.Message) GeneralChatResult {
	chat := current.Normalized()

	if chat.Topic == "" && len(history) <= greetingHistoryLimit {
		chat.Topic = ExtractTopic(text)
	}

	if ctx := ExtractContext(text); ctx != "" {
		chat.Context = chat.Context.Push(ctx)
	}

	if pref := ExtractPreference(text); pref != "" && !slices.Contains(chat.Preferences, pref) {
		chat.Preferences = appendFresh(chat.Preferences, pref)
	}

	if insights := DeriveInsights(text, chat.Context.Len()); len(insights) > 0 {
		chat.KeyInsights = chat.KeyInsights.Push(insights...)
	}

	chat.FollowUpQuestions = FollowUpQuestions(text, chat.Topic)
	chat.ConversationSummary = SummarizeConversation(history, text)

	return GeneralChatResult{
		Response: generalReply(text, chat, history),
		Chat:     chat,
	}
}
