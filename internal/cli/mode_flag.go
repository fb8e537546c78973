package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// modeValue is a --mode flag that accepts mode names and their aliases.
type modeValue struct {
	mode domain.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) String() string { return string(v.mode) }

func (v *modeValue) Set(s string) error {
	m, err := domain.ParseMode(s)
	if err != nil {
		return err
	}
	v.mode = m
	return nil
}

func (v *modeValue) Type() string { return "mode" }

func (v *modeValue) Mode() domain.Mode { return v.mode }

// addModeFlag registers --mode/-m on cmd with completion for mode names.
func addModeFlag(cmd *cobra.Command, v *modeValue, required bool) {
	cmd.Flags().VarP(v, "mode", "m", "assistant mode: curriculum, ecom or general")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(domain.AllModes()))
		for _, m := range domain.AllModes() {
			names = append(names, fmt.Sprintf("%s\t%s", m, m.Label()))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	if required {
		_ = cmd.MarkFlagRequired("mode")
	}
}

// errNoMode is returned when a mode is needed but nobody can be asked.
var errNoMode = errors.New("--mode is required when not running in a terminal")

// resolveMode picks the chat mode: the flag, then the configured default,
// then an interactive prompt.
func (a *App) resolveMode(flag domain.Mode) (domain.Mode, error) {
	if flag != "" {
		return flag, nil
	}
	if a.Config.DefaultMode != "" {
		return a.Config.DefaultMode, nil
	}
	if !a.interactive() {
		return "", errNoMode
	}
	if a.SelectMode != nil {
		return a.SelectMode()
	}
	return selectModeForm()
}

func selectModeForm() (domain.Mode, error) {
	mode := domain.ModeGeneral
	if err := modeSelectForm(&mode).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("mode selection cancelled")
		}
		return "", fmt.Errorf("selecting mode: %w", err)
	}
	return mode, nil
}

func modeSelectForm(value *domain.Mode) *huh.Form {
	opts := make([]huh.Option[domain.Mode], 0, len(domain.AllModes()))
	for _, m := range domain.AllModes() {
		opts = append(opts, huh.NewOption(m.Label()+formatter.Dim("  "+m.Description()), m))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Mode]().
				Title("What would you like to work on?").
				Options(opts...).
				Value(value),
		),
	).WithTheme(scriptchatHuhTheme()).WithShowHelp(false)
}

// scriptchatHuhTheme matches huh forms to the formatter palette.
func scriptchatHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
