package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// encodeBundle stores a nil bundle as an empty object.
func encodeBundle(b *domain.Bundle) (string, error) {
	if b == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encoding conversation data: %w", err)
	}
	return string(raw), nil
}

func decodeBundle(raw string) (*domain.Bundle, error) {
	var b domain.Bundle
	if raw == "" {
		return &b, nil
	}
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, fmt.Errorf("decoding conversation data: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("decoding conversation data: %w", err)
	}
	return &b, nil
}
