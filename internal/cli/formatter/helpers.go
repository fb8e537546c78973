package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Field renders one "Label: value" line, with a dim placeholder for an
// empty value.
func Field(label, value string) string {
	if value == "" {
		value = Dim("not set")
	}
	return fmt.Sprintf("%s %s", StyleBold.Render(label+":"), value)
}

// List renders items as an indented bullet list under a label. An empty
// list renders as a single "none yet" field.
func List(label string, items []string) string {
	if len(items) == 0 {
		return Field(label, Dim("none yet"))
	}
	var b strings.Builder
	b.WriteString(StyleBold.Render(label + ":"))
	for _, item := range items {
		b.WriteString("\n  " + Dim("•") + " " + item)
	}
	return b.String()
}

// Truncate shortens s to at most n visible characters, ending with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// RelativeTime returns a compact age like "just now", "5m ago" or "2d ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
