package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable lays out rows under a header and a dim rule. Widths are
// measured with lipgloss so styled cells still line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := range widths {
			if i < len(cells) {
				widths[i] = max(widths[i], lipgloss.Width(cells[i]))
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
	}
	writeRow(&b, styled, headers, widths)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, rule, rule, widths)

	for _, row := range rows {
		writeRow(&b, row, row, widths)
	}
	return b.String()
}

// writeRow pads each cell to its column width using the visible width of
// the matching plain cell.
func writeRow(b *strings.Builder, cells, plain []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i == len(widths)-1 {
			break
		}
		visible := 0
		if i < len(plain) {
			visible = lipgloss.Width(plain[i])
		}
		b.WriteString(strings.Repeat(" ", max(w-visible, 0)+colGap))
	}
	b.WriteString("\n")
}
