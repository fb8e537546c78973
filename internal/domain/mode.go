package domain

import (
	"fmt"
	"strings"
)

// Mode selects which scripted assistant drives a conversation.
type Mode string

const (
	ModeCurriculum Mode = "curriculum"
	ModeEcom       Mode = "ecom"
	ModeGeneral    Mode = "general"
)

var modeAliases = map[string]Mode{
	"curriculum": ModeCurriculum,
	"course":     ModeCurriculum,
	"ecom":       ModeEcom,
	"shop":       ModeEcom,
	"tiktok":     ModeEcom,
	"general":    ModeGeneral,
	"chat":       ModeGeneral,
}

// AllModes returns the supported modes in display order.
func AllModes() []Mode {
	return []Mode{ModeCurriculum, ModeEcom, ModeGeneral}
}

// ParseMode resolves a user-supplied mode name or alias.
func ParseMode(s string) (Mode, error) {
	m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown mode %q (want curriculum, ecom or general)", s)
	}
	return m, nil
}

func (m Mode) Valid() bool {
	switch m {
	case ModeCurriculum, ModeEcom, ModeGeneral:
		return true
	}
	return false
}

// Label is the short human-readable name shown in pickers and lists.
func (m Mode) Label() string {
	switch m {
	case ModeCurriculum:
		return "Curriculum Designer"
	case ModeEcom:
		return "TikTok Shop Strategist"
	case ModeGeneral:
		return "General Chat"
	default:
		return string(m)
	}
}

func (m Mode) Description() string {
	switch m {
	case ModeCurriculum:
		return "Design courses, lessons, resources and assessments"
	case ModeEcom:
		return "Plan products, content, budget and goals for a TikTok Shop"
	case ModeGeneral:
		return "Open conversation, brainstorming and questions"
	default:
		return ""
	}
}
