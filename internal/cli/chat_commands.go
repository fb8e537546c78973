package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// runSlash executes one of the chat's slash commands.
func (m chatModel) runSlash(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "/new":
		mode := m.currentMode()
		if len(args) > 0 {
			parsed, err := domain.ParseMode(args[0])
			if err != nil {
				return m.showError(err)
			}
			mode = parsed
		}
		return m, m.startCmd(mode, formatter.Dim("Started a new "+mode.Label()+" conversation"))

	case "/list":
		return m, m.listCmd()

	case "/switch":
		if len(args) != 1 {
			return m.showError(fmt.Errorf("usage: /switch <n> (see /list)"))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return m.showError(fmt.Errorf("invalid conversation number %q", args[0]))
		}
		return m, m.switchCmd(n)

	case "/summary":
		if m.conv == nil {
			return m, nil
		}
		return m.show(formatter.FormatSummary(m.conv.Mode, m.conv.Data))

	case "/export":
		if m.conv == nil {
			return m, nil
		}
		format, err := export.ParseFormat(strings.Join(args, ""))
		if err != nil {
			return m.showError(err)
		}
		var buf bytes.Buffer
		if err := export.Write(&buf, format, m.conv.Mode, m.conv.Data); err != nil {
			return m.showError(err)
		}
		return m.show(strings.TrimRight(buf.String(), "\n"))

	case "/delete":
		if m.conv == nil {
			return m, nil
		}
		return m, m.deleteCmd(m.conv)

	case "/help", "/?":
		return m.show(formatter.FormatChatHelp())

	case "/quit", "/exit", "/q":
		m.quitting = true
		return m, tea.Quit

	default:
		return m.showError(fmt.Errorf("unknown command %s (try /help)", name))
	}
}

func (m chatModel) show(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.refresh()
	return m, nil
}

func (m chatModel) showError(err error) (tea.Model, tea.Cmd) {
	return m.show(formatter.Error(err))
}

func (m *chatModel) currentMode() domain.Mode {
	if m.conv != nil {
		return m.conv.Mode
	}
	return m.startMode
}

// ── service commands ─────────────────────────────────────────────────────────

func (m chatModel) startCmd(mode domain.Mode, notice string) tea.Cmd {
	ctx, svc := m.ctx, m.app.Conversations
	return func() tea.Msg {
		conv, err := svc.Start(ctx, mode)
		return conversationMsg{conv: conv, notice: notice, err: err}
	}
}

// sendCmd delivers text after the configured reply delay.
func (m chatModel) sendCmd(id, text string) tea.Cmd {
	ctx, svc := m.ctx, m.app.Conversations
	send := func() tea.Msg {
		reply, err := svc.Send(ctx, id, text)
		return replyMsg{reply: reply, err: err}
	}
	if delay := m.app.Config.ReplyDelay; delay > 0 {
		return tea.Tick(delay, func(time.Time) tea.Msg { return send() })
	}
	return send
}

func (m chatModel) listCmd() tea.Cmd {
	ctx, app := m.ctx, m.app
	activeID := ""
	if m.conv != nil {
		activeID = m.conv.ID
	}
	return func() tea.Msg {
		convs, err := app.Conversations.List(ctx)
		if err != nil {
			return noticeMsg{err: err}
		}
		return noticeMsg{text: formatter.FormatConversationList(convs, activeID, app.now())}
	}
}

// switchCmd opens the n-th conversation (1-based) in /list order.
func (m chatModel) switchCmd(n int) tea.Cmd {
	ctx, svc := m.ctx, m.app.Conversations
	return func() tea.Msg {
		convs, err := svc.List(ctx)
		if err != nil {
			return conversationMsg{err: err}
		}
		if n > len(convs) {
			return conversationMsg{err: fmt.Errorf("no conversation %d (have %d)", n, len(convs))}
		}
		c := convs[n-1]
		return conversationMsg{conv: c, notice: formatter.Dim("Switched to " + c.Title)}
	}
}

// deleteCmd removes conv and opens the most recent remaining conversation,
// or a fresh one in the same mode when none is left.
func (m chatModel) deleteCmd(conv *domain.Conversation) tea.Cmd {
	ctx, svc := m.ctx, m.app.Conversations
	return func() tea.Msg {
		if err := svc.Delete(ctx, conv.ID); err != nil {
			return conversationMsg{err: err}
		}
		notice := formatter.Dim("Deleted " + conv.Title)
		convs, err := svc.List(ctx)
		if err != nil {
			return conversationMsg{err: err}
		}
		if len(convs) > 0 {
			return conversationMsg{conv: convs[0], notice: notice}
		}
		next, err := svc.Start(ctx, conv.Mode)
		return conversationMsg{conv: next, notice: notice, err: err}
	}
}
