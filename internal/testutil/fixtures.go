package testutil

import (
	"time"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/google/uuid"
)

// Conversation options
type ConversationOption func(*domain.Conversation)

func WithTitle(title string) ConversationOption {
	return func(c *domain.Conversation) {
		c.Title = title
	}
}

func WithData(b *domain.Bundle) ConversationOption {
	return func(c *domain.Conversation) {
		c.Data = b
	}
}

func WithUpdatedAt(t time.Time) ConversationOption {
	return func(c *domain.Conversation) {
		c.UpdatedAt = t
	}
}

func WithMessages(msgs ...domain.Message) ConversationOption {
	return func(c *domain.Conversation) {
		c.Messages = append(c.Messages, msgs...)
	}
}

// NewTestConversation builds an unsaved conversation with an empty record
// for mode.
func NewTestConversation(mode domain.Mode, opts ...ConversationOption) *domain.Conversation {
	now := time.Now().UTC()
	c := &domain.Conversation{
		ID:        uuid.New().String(),
		Title:     "Test " + mode.Label(),
		Mode:      mode,
		Messages:  []domain.Message{},
		Data:      engine.DefaultBundle(mode),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Message options
type MessageOption func(*domain.Message)

func WithTimestamp(t time.Time) MessageOption {
	return func(m *domain.Message) {
		m.Timestamp = t
	}
}

func NewTestMessage(role domain.Role, content string, opts ...MessageOption) domain.Message {
	m := domain.Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
