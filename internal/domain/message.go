package domain

import "time"

// Message is a single chat turn. Messages are never edited after creation;
// a conversation's history only grows by appending.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// CountRole returns how many messages in history have the given role.
func CountRole(history []Message, role Role) int {
	n := 0
	for _, m := range history {
		if m.Role == role {
			n++
		}
	}
	return n
}
