package service

import "errors"

var (
	ErrUnknownMode  = errors.New("unknown conversation mode")
	ErrEmptyMessage = errors.New("message is empty")
)

// FallbackReply is sent when processing a message fails unexpectedly. The
// conversation record is left as it was.
const FallbackReply = "Sorry, I encountered an error processing your message. Please try again."
