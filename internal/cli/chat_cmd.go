package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var mode modeValue
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat",
		Long: `Open the chat TUI. Without --mode the configured default mode is used,
or you are asked to pick one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), app, mode.Mode())
		},
	}
	addModeFlag(cmd, &mode, false)
	return cmd
}

func runChat(ctx context.Context, app *App, flag domain.Mode) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mode, err := app.resolveMode(flag)
	if err != nil {
		return err
	}
	if err := app.runProgram(newChatModel(ctx, app, mode)); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}

func newModesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the available assistant modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModeTable())
			return nil
		},
	}
}

func newGreetCmd(app *App) *cobra.Command {
	var mode modeValue
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a mode's opening line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), engine.InitialGreeting(mode.Mode()))
			return nil
		},
	}
	addModeFlag(cmd, &mode, true)
	return cmd
}
