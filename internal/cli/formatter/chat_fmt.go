package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

// FormatChatWelcome renders the banner shown when the chat opens.
func FormatChatWelcome() string {
	var b strings.Builder
	b.WriteString(StylePurple.Render("scriptchat") + "\n")
	b.WriteString(Dim("─────────────────────────────") + "\n")
	b.WriteString(Dim("Type a message and press enter. /help lists commands.") + "\n")
	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n" + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleGreen.Render(fmt.Sprintf("%-20s", c[0])),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatChatHelp renders the slash command reference.
func FormatChatHelp() string {
	categories := []helpCategory{
		{
			title: "Conversations",
			commands: [][]string{
				{"/new [mode]", "Start a conversation (default: current mode)"},
				{"/list", "List conversations, most recent first"},
				{"/switch <n>", "Open conversation n from /list"},
				{"/delete", "Delete the current conversation"},
			},
		},
		{
			title: "Record",
			commands: [][]string{
				{"/summary", "Show what has been captured so far"},
				{"/export [yaml|json]", "Print the record (default: yaml)"},
			},
		},
		{
			title: "Session",
			commands: [][]string{
				{"/help", "Show this help"},
				{"/quit", "Exit (also ctrl+c)"},
				{"↑ / ↓", "Recall earlier input"},
				{"alt+enter", "New line in the message (also ctrl+j)"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	return b.String()
}

// FormatModeTable lists every mode with its label and description.
func FormatModeTable() string {
	rows := make([][]string, 0, len(domain.AllModes()))
	for _, m := range domain.AllModes() {
		rows = append(rows, []string{ModeStyle(m).Render(string(m)), m.Label(), Dim(m.Description())})
	}
	return RenderTable([]string{"MODE", "NAME", "DESCRIPTION"}, rows)
}

// FormatConversationList renders conversations numbered from 1 in the
// given order, marking activeID.
func FormatConversationList(convs []*domain.Conversation, activeID string, now time.Time) string {
	if len(convs) == 0 {
		return Dim("No conversations yet. Start one with /new.")
	}
	rows := make([][]string, 0, len(convs))
	for i, c := range convs {
		marker := " "
		if c.ID == activeID {
			marker = StyleGreen.Render("*")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s%d", marker, i+1),
			Truncate(c.Title, 40),
			ModeStyle(c.Mode).Render(string(c.Mode)),
			fmt.Sprintf("%d", c.UserTurns()),
			Dim(RelativeTime(c.UpdatedAt, now)),
			Dim(c.DisplayID()),
		})
	}
	return RenderTable([]string{" #", "TITLE", "MODE", "TURNS", "UPDATED", "ID"}, rows)
}

// FormatChatHeader is the one-line banner above the transcript.
func FormatChatHeader(conv *domain.Conversation, step string) string {
	if conv == nil {
		return StylePurple.Render("scriptchat")
	}
	header := StylePurple.Render("scriptchat") + " " + Dim("›") + " " + Bold(conv.Title) + "  " + ModeBadge(conv.Mode)
	if step != "" {
		header += "  " + Dim("["+strings.ReplaceAll(step, "_", " ")+"]")
	}
	return header
}
