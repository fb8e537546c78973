package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/alexanderramin/scriptchat/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// conversationMsg carries the conversation to show next, e.g. after
// /new, /switch or /delete.
type conversationMsg struct {
	conv   *domain.Conversation
	notice string
	err    error
}

type replyMsg struct {
	reply *service.Reply
	err   error
}

// noticeMsg replaces the notice shown under the transcript.
type noticeMsg struct {
	text string
	err  error
}

// maxInputRows caps how tall the input grows; longer messages scroll
// inside it.
const maxInputRows = 6

// chatModel is the bubbletea Model for the chat TUI.
type chatModel struct {
	ctx context.Context
	app *App

	input      textarea.Model
	transcript viewport.Model
	width      int
	height     int

	startMode domain.Mode
	conv      *domain.Conversation
	// notice is transient command output shown under the transcript and
	// cleared on the next submit.
	notice string

	// pending holds the user's text while its reply is on the way. Input
	// is blurred until the reply arrives.
	pending string
	history inputHistory

	quitting bool
}

func newChatModel(ctx context.Context, app *App, mode domain.Mode) chatModel {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.Placeholder = "Type a message or /help"
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	ta.SetHeight(1)
	ta.Focus()

	vp := viewport.New(0, 0)
	vp.KeyMap = transcriptKeyMap()
	vp.MouseWheelEnabled = true

	return chatModel{
		ctx:        ctx,
		app:        app,
		input:      ta,
		transcript: vp,
		startMode:  mode,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.startCmd(m.startMode, ""))
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(msg.Width-20, 10))
		m.transcript.Width = msg.Width
		m.layout()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd

	case conversationMsg:
		if msg.err != nil {
			m.notice = formatter.Error(msg.err)
		} else {
			m.conv = msg.conv
			m.notice = msg.notice
		}
		m.refresh()
		return m, nil

	case replyMsg:
		m.pending = ""
		if msg.err != nil {
			m.notice = formatter.Error(msg.err)
		} else {
			m.conv = msg.reply.Conversation
		}
		m.refresh()
		return m, m.input.Focus()

	case noticeMsg:
		if msg.err != nil {
			m.notice = formatter.Error(msg.err)
		} else {
			m.notice = msg.text
		}
		m.refresh()
		return m, nil
	}

	return m.updateInput(msg)
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.pending != "" {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		if msg.Alt {
			break
		}
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.layout()
		if text == "" {
			return m, nil
		}
		m.history.add(text)
		m.notice = ""
		if strings.HasPrefix(text, "/") {
			return m.runSlash(text)
		}
		return m.submit(text)

	case tea.KeyUp:
		if m.input.Line() > 0 {
			break
		}
		if text, ok := m.history.prev(m.input.Value()); ok {
			m.recall(text)
		}
		return m, nil

	case tea.KeyDown:
		if m.input.Line() < m.input.LineCount()-1 {
			break
		}
		if text, ok := m.history.next(); ok {
			m.recall(text)
		}
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the textarea and resizes the layout to the
// number of lines typed so far.
func (m chatModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.layout()
	return m, cmd
}

func (m *chatModel) recall(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.layout()
}

// layout grows the input up to maxInputRows and gives the rest of the
// screen to the transcript.
func (m *chatModel) layout() {
	rows := min(max(m.input.LineCount(), 1), maxInputRows)
	m.input.SetHeight(rows)
	if m.height > 0 {
		m.transcript.Height = max(m.height-3-rows, 3)
	}
}

// submit shows text right away and sends it after the configured delay.
func (m chatModel) submit(text string) (tea.Model, tea.Cmd) {
	if m.conv == nil {
		m.notice = formatter.Dim("Still starting up, try again in a moment.")
		m.refresh()
		return m, nil
	}
	m.pending = text
	m.input.Blur()
	m.refresh()
	return m, m.sendCmd(m.conv.ID, text)
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	body := m.content()
	if m.height > 0 {
		body = m.transcript.View()
	}

	return strings.Join([]string{
		formatter.FormatChatHeader(m.conv, m.step()),
		sep,
		body,
		sep,
		m.prompt() + m.input.View(),
	}, "\n")
}

// ── rendering ────────────────────────────────────────────────────────────────

// refresh rebuilds the transcript and scrolls to the newest line.
func (m *chatModel) refresh() {
	m.transcript.SetContent(m.content())
	m.transcript.GotoBottom()
}

func (m *chatModel) content() string {
	parts := []string{formatter.FormatChatWelcome()}
	if m.conv != nil {
		parts = append(parts, formatter.FormatTranscript(m.conv.Mode, m.conv.Messages, m.width))
		if m.pending != "" {
			user := domain.Message{Role: domain.RoleUser, Content: m.pending}
			parts = append(parts,
				formatter.FormatMessage(m.conv.Mode, user, m.width),
				formatter.FormatThinking(m.conv.Mode))
		}
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return strings.Join(parts, "\n\n")
}

func (m *chatModel) prompt() string {
	if m.conv == nil {
		return formatter.Dim("❯ ")
	}
	if m.pending != "" {
		return formatter.Dim(string(m.conv.Mode) + " … ")
	}
	return formatter.ModeStyle(m.conv.Mode).Render(string(m.conv.Mode)) + formatter.Dim(" ❯ ")
}

func (m *chatModel) step() string {
	if m.conv == nil {
		return ""
	}
	return currentStep(m.conv.Mode, m.conv.Data)
}

// currentStep names where a step-driven conversation stands; general chat
// has no steps.
func currentStep(mode domain.Mode, b *domain.Bundle) string {
	if b == nil {
		return ""
	}
	switch mode {
	case domain.ModeCurriculum:
		if b.Curriculum != nil {
			return engine.ResolveCurriculumStep(*b.Curriculum).String()
		}
	case domain.ModeEcom:
		if b.TikTokShop != nil {
			return engine.ResolveShopStep(*b.TikTokShop).String()
		}
	}
	return ""
}

// transcriptKeyMap leaves arrow keys to input history.
func transcriptKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}
