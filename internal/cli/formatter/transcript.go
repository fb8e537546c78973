package formatter

import (
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatMessage renders one chat turn. Assistant lines are prefixed with
// the mode's accent color; continuation lines are indented under the
// speaker label.
func FormatMessage(mode domain.Mode, msg domain.Message, width int) string {
	var label string
	switch msg.Role {
	case domain.RoleUser:
		label = StyleYellow.Render("you")
	default:
		label = ModeStyle(mode).Render("bot")
	}

	body := msg.Content
	if width > 8 {
		body = lipgloss.NewStyle().Width(width - 6).Render(body)
	}
	lines := strings.Split(body, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = "      " + lines[i]
	}
	return label + Dim(" │ ") + strings.Join(lines, "\n")
}

// FormatTranscript renders messages in order separated by blank lines.
func FormatTranscript(mode domain.Mode, msgs []domain.Message, width int) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, FormatMessage(mode, m, width))
	}
	return strings.Join(parts, "\n\n")
}

// FormatThinking is the placeholder shown while a reply is pending.
func FormatThinking(mode domain.Mode) string {
	return ModeStyle(mode).Render("bot") + Dim(" │ typing…")
}
