package engine

import "github.com/alexanderramin/scriptchat/internal/domain"

// UnknownModeReply is returned, with the bundle untouched, for any mode the
// dispatcher does not recognise.
const UnknownModeReply = "I'm not sure how to help with that. Please try again or select a different mode."

// Result is the mode-independent outcome of a turn. Data is a new bundle
// except for unknown modes, where it is the caller's bundle unchanged.
type Result struct {
	Response string
	Data     *domain.Bundle
	// Step is the resolved step for step-driven modes, empty otherwise.
	Step string
}

// Dispatcher routes messages to the engine for the conversation's mode.
type Dispatcher struct {
	curriculum *CurriculumEngine
	shop       *ShopEngine
	general    *GeneralChatEngine
}

// NewDispatcher wires the three mode engines around one ID source.
func NewDispatcher(ids IDGenerator) *Dispatcher {
	ids = idsOrDefault(ids)
	return &Dispatcher{
		curriculum: NewCurriculumEngine(ids),
		shop:       NewShopEngine(ids),
		general:    NewGeneralChatEngine(),
	}
}

// Process runs one turn. history holds the messages preceding text.
// Missing records are replaced by the mode's empty default before the
// engine runs; data itself is never modified.
func (d *Dispatcher) Process(text string, mode domain.Mode, data *domain.Bundle, history []domain.Message) Result {
	var next domain.Bundle
	if data != nil {
		next = *data
	}

	switch mode {
	case domain.ModeCurriculum:
		current := domain.NewCurriculum()
		if next.Curriculum != nil {
			current = *next.Curriculum
		}
		res := d.curriculum.Process(text, current, history)
		next.Curriculum = &res.Curriculum
		return Result{Response: res.Response, Data: &next, Step: res.Step.String()}

	case domain.ModeEcom:
		current := domain.NewTikTokShop()
		if next.TikTokShop != nil {
			current = *next.TikTokShop
		}
		res := d.shop.Process(text, current, history)
		next.TikTokShop = &res.Shop
		return Result{Response: res.Response, Data: &next, Step: res.Step.String()}

	case domain.ModeGeneral:
		current := domain.NewGeneralChat()
		if next.GeneralChat != nil {
			current = *next.GeneralChat
		}
		res := d.general.Process(text, current, history)
		next.GeneralChat = &res.Chat
		return Result{Response: res.Response, Data: &next}

	default:
		return Result{Response: UnknownModeReply, Data: data}
	}
}

// DefaultBundle returns a bundle holding the empty record for mode.
func DefaultBundle(mode domain.Mode) *domain.Bundle {
	switch mode {
	case domain.ModeCurriculum:
		c := domain.NewCurriculum()
		return &domain.Bundle{Curriculum: &c}
	case domain.ModeEcom:
		s := domain.NewTikTokShop()
		return &domain.Bundle{TikTokShop: &s}
	case domain.ModeGeneral:
		g := domain.NewGeneralChat()
		return &domain.Bundle{GeneralChat: &g}
	default:
		return &domain.Bundle{}
	}
}

// InitialGreeting is the assistant's opening line for a new conversation.
func InitialGreeting(mode domain.Mode) string {
	switch mode {
	case domain.ModeCurriculum:
		return "I'll help you design your curriculum. What subject or topic would you like to create learning content for?"
	case domain.ModeEcom:
		return "I'll help you build your TikTok Shop strategy! What's your business name or what products are you planning to sell?"
	case domain.ModeGeneral:
		return "Hi! I'm here to chat about anything on your mind. Ask a question, share an idea, or tell me what you're working on."
	default:
		return "Hello! How can I help you today?"
	}
}

// Title derives a display title from the record that defines the mode,
// falling back to a per-mode default while that field is still empty.
func Title(mode domain.Mode, data *domain.Bundle) string {
	switch mode {
	case domain.ModeCurriculum:
		if data != nil && data.Curriculum != nil {
			return domain.CoalesceStr(data.Curriculum.Subject, "New Curriculum")
		}
		return "New Curriculum"
	case domain.ModeEcom:
		if data != nil && data.TikTokShop != nil {
			return domain.CoalesceStr(data.TikTokShop.BusinessName, "New TikTok Shop")
		}
		return "New TikTok Shop"
	case domain.ModeGeneral:
		if data != nil && data.GeneralChat != nil {
			return domain.CoalesceStr(data.GeneralChat.Topic, "General Chat")
		}
		return "General Chat"
	default:
		return "New Conversation"
	}
}
