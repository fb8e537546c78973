package service

import (
	"context"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
)

// ConversationService owns the conversation lifecycle: greeting, turns,
// listing and deletion.
type ConversationService interface {
	Start(ctx context.Context, mode domain.Mode) (*domain.Conversation, error)
	Send(ctx context.Context, id, text string) (*Reply, error)
	Get(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context) ([]*domain.Conversation, error)
	Delete(ctx context.Context, id string) error
}

// Processor turns one user message into a reply and an updated record.
// *engine.Dispatcher is the production implementation.
type Processor interface {
	Process(text string, mode domain.Mode, data *domain.Bundle, history []domain.Message) engine.Result
}

var _ Processor = (*engine.Dispatcher)(nil)

// Reply is the outcome of Send. Conversation includes both new messages.
type Reply struct {
	Conversation *domain.Conversation
	Response     string
	// Step is the step the message was handled in; empty for general chat
	// and for replies produced by the error fallback.
	Step string
}
