package domain

import "time"

type Conversation struct {
	ID        string
	Title     string
	Mode      Mode
	Messages  []Message
	Data      *Bundle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastMessage returns the most recent message, if any.
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// UserTurns counts the messages the user has sent.
func (c *Conversation) UserTurns() int {
	return CountRole(c.Messages, RoleUser)
}

// DisplayID returns a short identifier for lists and prompts.
func (c *Conversation) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
