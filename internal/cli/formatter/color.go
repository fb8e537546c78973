package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor switches the default renderer to plain ASCII output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ModeStyle returns the accent style used for a mode's badge and prompt.
func ModeStyle(mode domain.Mode) lipgloss.Style {
	switch mode {
	case domain.ModeCurriculum:
		return StyleBlue
	case domain.ModeEcom:
		return StylePurple
	case domain.ModeGeneral:
		return StyleGreen
	default:
		return StyleDim
	}
}

// ModeBadge renders a colored marker such as "● Curriculum Designer".
func ModeBadge(mode domain.Mode) string {
	return ModeStyle(mode).Render("● " + mode.Label())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Error renders an error line for inline display.
func Error(err error) string {
	return StyleRed.Render("Error: ") + err.Error()
}
