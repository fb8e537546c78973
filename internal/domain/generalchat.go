package domain

import "encoding/json"

const (
	ContextLimit  = 10
	InsightLimit  = 15
	FollowUpLimit = 3
	DefaultTopic  = "General Conversation"
)

// GeneralChat is the structured record kept by the general chat assistant.
type GeneralChat struct {
	Topic               string         `json:"topic" yaml:"topic"`
	Context             Window[string] `json:"context" yaml:"context"`
	KeyInsights         Window[string] `json:"key_insights" yaml:"key_insights"`
	FollowUpQuestions   []string       `json:"follow_up_questions" yaml:"follow_up_questions"`
	ConversationSummary string         `json:"conversation_summary" yaml:"conversation_summary"`
	Preferences         []string       `json:"preferences" yaml:"preferences"`
}

// NewGeneralChat returns an empty record with its bounded lists sized.
func NewGeneralChat() GeneralChat {
	return GeneralChat{
		Context:           NewWindow[string](ContextLimit),
		KeyInsights:       NewWindow[string](InsightLimit),
		FollowUpQuestions: []string{},
		Preferences:       []string{},
	}
}

// UnmarshalJSON decodes into a fresh record so the window limits survive
// a round trip through storage.
func (g *GeneralChat) UnmarshalJSON(data []byte) error {
	type plain GeneralChat
	fresh := NewGeneralChat()
	if err := json.Unmarshal(data, (*plain)(&fresh)); err != nil {
		return err
	}
	*g = fresh
	return nil
}

func (g GeneralChat) IsEmpty() bool {
	return g.Topic == "" && g.Context.Len() == 0 && g.KeyInsights.Len() == 0
}

// Normalized returns g with its bounded lists carrying the standard limits.
// Records built as struct literals start with unbounded zero windows.
func (g GeneralChat) Normalized() GeneralChat {
	if g.Context.Limit() != ContextLimit {
		g.Context = NewWindow(ContextLimit, g.Context.Items()...)
	}
	if g.KeyInsights.Limit() != InsightLimit {
		g.KeyInsights = NewWindow(InsightLimit, g.KeyInsights.Items()...)
	}
	return g
}
