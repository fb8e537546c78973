package cli

import (
	"time"

	"github.com/alexanderramin/scriptchat/internal/config"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by every command.
type App struct {
	Conversations service.ConversationService
	Config        config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means it is not.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Nil runs it in the
	// terminal's alternate screen.
	RunProgram func(m tea.Model) error

	// SelectMode asks the user which mode to chat in. Nil shows a huh form.
	SelectMode func() (domain.Mode, error)

	// Now is the clock used for relative times. Nil means time.Now.
	Now func() time.Time
}

// NewRootCmd creates the top-level "scriptchat" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scriptchat",
		Short: "Scripted assistants for curricula, TikTok Shops and general chat",
		Long: `scriptchat runs rule-based conversational assistants that build a
structured record while you chat: a course curriculum, a TikTok Shop plan,
or a running summary of a general conversation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runChat(cmd.Context(), app, "")
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newModesCmd(app),
		newReplayCmd(app),
		newGreetCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
