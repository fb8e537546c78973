package repository

import (
	"context"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

// ConversationRepo stores conversation headers and their structured record.
// Messages live in MessageRepo; GetByID and List leave Messages empty.
type ConversationRepo interface {
	Create(ctx context.Context, c *domain.Conversation) error
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context) ([]*domain.Conversation, error)
	Update(ctx context.Context, c *domain.Conversation) error
	Delete(ctx context.Context, id string) error
}

type MessageRepo interface {
	Append(ctx context.Context, conversationID string, m domain.Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error)
	CountByConversation(ctx context.Context, conversationID string) (int, error)
}
