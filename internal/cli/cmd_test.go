package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/config"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/alexanderramin/scriptchat/internal/service"
	"github.com/alexanderramin/scriptchat/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	formatter.DisableColor()
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := service.NewConversationService(
		testutil.NewTestUoW(database),
		engine.NewDispatcher(engine.NewSequenceIDs("t")),
	)
	return &App{
		Conversations: svc,
		Config:        config.DefaultConfig(),
		Now:           func() time.Time { return testNow },
	}
}

// executeCmd runs a cobra command with stdin and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(buf)
	root.SetErr(buf)
	// A nil slice would make cobra fall back to the test binary's flags.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// captureProgram records the model handed to the TUI runner instead of
// running it.
func captureProgram(app *App) *chatModel {
	var got chatModel
	app.RunProgram = func(m tea.Model) error {
		got = m.(chatModel)
		return nil
	}
	return &got
}

// --- root ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)
	captureProgram(app)

	out, err := executeCmd(t, app, "")
	require.NoError(t, err)
	assert.Contains(t, out, "scriptchat")
	assert.Contains(t, out, "replay")
}

func TestRootCmd_InteractiveOpensChat(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.SelectMode = func() (domain.Mode, error) { return domain.ModeEcom, nil }
	got := captureProgram(app)

	_, err := executeCmd(t, app, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeEcom, got.startMode)
}

// --- chat ---

func TestChatCmd_ModeFlag(t *testing.T) {
	app := testApp(t)
	got := captureProgram(app)

	_, err := executeCmd(t, app, "", "chat", "--mode", "shop")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeEcom, got.startMode)
}

func TestChatCmd_ConfiguredDefaultMode(t *testing.T) {
	app := testApp(t)
	app.Config.DefaultMode = domain.ModeCurriculum
	got := captureProgram(app)

	_, err := executeCmd(t, app, "", "chat")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeCurriculum, got.startMode)
}

func TestChatCmd_NoModeWithoutTerminal(t *testing.T) {
	app := testApp(t)
	captureProgram(app)

	_, err := executeCmd(t, app, "", "chat")
	assert.ErrorIs(t, err, errNoMode)
}

func TestChatCmd_AsksForMode(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	asked := false
	app.SelectMode = func() (domain.Mode, error) {
		asked = true
		return domain.ModeGeneral, nil
	}
	got := captureProgram(app)

	_, err := executeCmd(t, app, "", "chat")
	require.NoError(t, err)
	assert.True(t, asked)
	assert.Equal(t, domain.ModeGeneral, got.startMode)
}

func TestChatCmd_InvalidMode(t *testing.T) {
	app := testApp(t)
	captureProgram(app)

	_, err := executeCmd(t, app, "", "chat", "--mode", "poetry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

// --- modes / greet ---

func TestModesCmd_ListsThreeModes(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "modes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5, "header, rule and one row per mode")
	for _, m := range domain.AllModes() {
		assert.Contains(t, out, m.Label())
	}
}

func TestGreetCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "greet", "--mode", "ecom")
	require.NoError(t, err)
	assert.Equal(t, engine.InitialGreeting(domain.ModeEcom)+"\n", out)
}

func TestGreetCmd_RequiresMode(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "greet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

// --- replay ---

func TestReplayCmd_PrintsEachReply(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "Curriculum for Python data analysis\n\nJunior analysts\n",
		"replay", "--mode", "curriculum")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "bot │ "+engine.InitialGreeting(domain.ModeCurriculum)))
	assert.Contains(t, out, "you │ Curriculum for Python data analysis")
	assert.Contains(t, out, "you │ Junior analysts")
	assert.Equal(t, 3, strings.Count(out, "bot │"), "greeting plus one reply per non-blank line")

	convs, err := app.Conversations.List(t.Context())
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "Python data analysis", convs[0].Title)
	assert.Len(t, convs[0].Messages, 5)
}

func TestReplayCmd_SummaryAndExport(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "Curriculum for Python data analysis\n",
		"replay", "-m", "curriculum", "--summary", "--export", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject: Python data analysis")
	assert.Contains(t, out, "1/8 subject defined")
	assert.Contains(t, out, `"mode": "curriculum"`)
	assert.Contains(t, out, `"subject": "Python data analysis"`)
}

func TestReplayCmd_ParagraphsSendMultilineMessages(t *testing.T) {
	app := testApp(t)
	script := "I'm starting GlowUp\n\nSkincare\n\nTeens with oily skin\n\n" +
		"Vitamin C serum for glow\nNight repair cream $30\n"

	out, err := executeCmd(t, app, script, "replay", "--mode", "ecom", "--paragraphs")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "bot │"), "greeting plus one reply per block")
	assert.Contains(t, out, "you │ Vitamin C serum for glow\n      Night repair cream $30")

	convs, err := app.Conversations.List(t.Context())
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Len(t, convs[0].Data.TikTokShop.Products, 2)
}

func TestReadScript(t *testing.T) {
	in := "  a\nb  \n\n\nc\n"

	lines, err := readScript(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)

	blocks, err := readScript(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a\nb", "c"}, blocks)

	long := strings.Repeat("x", 100_000)
	lines, err = readScript(strings.NewReader(long+"\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{long}, lines)
}

func TestReplayCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello there\n"), 0o644))

	out, err := executeCmd(t, testApp(t), "ignored stdin\n", "replay", "--mode", "general", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "you │ hello there")
	assert.NotContains(t, out, "ignored stdin")
}

func TestReplayCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "replay", "--mode", "general", "--file", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening script")
}

func TestReplayCmd_BadExportFormat(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "hi\n", "replay", "--mode", "general", "--export", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")

	convs, err := app.Conversations.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, convs, "nothing is started when the format is invalid")
}
