package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/export"
	"github.com/spf13/cobra"
)

// maxScriptLine bounds a single script line.
const maxScriptLine = 1 << 20

type replayOptions struct {
	mode    domain.Mode
	summary bool
	export  string
	// paragraphs sends each blank-line separated block as one message,
	// keeping its line breaks.
	paragraphs bool
}

func newReplayCmd(app *App) *cobra.Command {
	var (
		mode modeValue
		file string
		opts replayOptions
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Feed lines as user messages and print the transcript",
		Long: `Start a conversation and send each non-blank input line as a user
message. Lines come from --file, or stdin when the file is omitted or "-".

With --paragraphs, lines are grouped into messages at blank lines so a
single message can span several lines (e.g. one product per line).`,
		Example: `  printf 'Python\nbeginners\n' | scriptchat replay --mode curriculum --summary
  scriptchat replay -m ecom -f script.txt --export json
  scriptchat replay -m ecom -p -f shop.txt --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}
			opts.mode = mode.Mode()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runReplay(ctx, app, in, cmd.OutOrStdout(), opts)
		},
	}
	addModeFlag(cmd, &mode, true)
	cmd.Flags().StringVarP(&file, "file", "f", "", "read messages from this file instead of stdin")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print the summary panel at the end")
	cmd.Flags().StringVar(&opts.export, "export", "", "print the final record as yaml or json")
	cmd.Flags().BoolVarP(&opts.paragraphs, "paragraphs", "p", false, "send blank-line separated blocks as multi-line messages")
	return cmd
}

func runReplay(ctx context.Context, app *App, in io.Reader, out io.Writer, opts replayOptions) error {
	var format export.Format
	if opts.export != "" {
		f, err := export.ParseFormat(opts.export)
		if err != nil {
			return err
		}
		format = f
	}

	conv, err := app.Conversations.Start(ctx, opts.mode)
	if err != nil {
		return err
	}
	for _, msg := range conv.Messages {
		fmt.Fprintln(out, formatter.FormatMessage(conv.Mode, msg, 0))
	}

	messages, err := readScript(in, opts.paragraphs)
	if err != nil {
		return err
	}
	for _, text := range messages {
		reply, err := app.Conversations.Send(ctx, conv.ID, text)
		if err != nil {
			return err
		}
		conv = reply.Conversation
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.FormatMessage(conv.Mode, domain.Message{Role: domain.RoleUser, Content: text}, 0))
		fmt.Fprintln(out, formatter.FormatMessage(conv.Mode, domain.Message{Role: domain.RoleAssistant, Content: reply.Response}, 0))
	}

	if opts.summary {
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.FormatSummary(conv.Mode, conv.Data))
	}
	if opts.export != "" {
		fmt.Fprintln(out)
		if err := export.Write(out, format, conv.Mode, conv.Data); err != nil {
			return err
		}
	}
	return nil
}

// readScript splits in into user messages: one per non-blank line, or one
// per blank-line separated block when paragraphs is set.
func readScript(in io.Reader, paragraphs bool) ([]string, error) {
	var (
		messages []string
		block    []string
	)
	flush := func() {
		if len(block) > 0 {
			messages = append(messages, strings.Join(block, "\n"))
			block = nil
		}
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case paragraphs:
			block = append(block, line)
		default:
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	flush()
	return messages, nil
}
