/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/longkey1/chatbox/internal/ui/line"
	"github.com/longkey1/chatbox/internal/ui/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var plain bool

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with the bot",
	Long: `Open the chat widget and talk to the bot.

Without arguments and on a terminal, a full-screen chat window is opened.
Use --plain for a simple line-by-line prompt instead; it also reads
one message per line from piped stdin.

If a message is given as arguments, or piped through stdin, it is sent once
and the bot's reply is printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if len(args) > 0 {
			return runOnce(ctx, os.Stdout, strings.Join(args, " "))
		}
		if plain {
			return runLine(ctx)
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message := strings.TrimSpace(string(input))
			if message == "" {
				return fmt.Errorf("no message provided")
			}
			return runOnce(ctx, os.Stdout, message)
		}
		return runFullScreen(ctx)
	},
}

// runOnce sends a single message and prints the reply.
func runOnce(ctx context.Context, out io.Writer, message string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.closeLog()

	w := chatbox.NewWidget(chatbox.NewField(message), s.predictor, s.options...)
	reply, ok := w.Send(ctx)
	if !ok {
		return fmt.Errorf("no message provided")
	}
	fmt.Fprintln(out, reply.Text)
	return nil
}

func runLine(ctx context.Context) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.closeLog()

	repl := line.New(s.predictor, os.Stdin, os.Stdout, os.Stderr, s.options,
		line.WithSpinner(term.IsTerminal(int(os.Stderr.Fd()))))
	return repl.Run(ctx)
}

func runFullScreen(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("full-screen mode needs a terminal; use --plain or pass a message")
	}

	s, err := newSession(true)
	if err != nil {
		return err
	}
	defer s.closeLog()

	s.logger.Info("chat window opened", "endpoint", s.predictor.Endpoint())
	m := tui.New(ctx, "chatbox", s.predictor, s.options...)
	return tui.Run(ctx, m)
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVar(&plain, "plain", false, "Use a line-by-line prompt instead of the full-screen window")
}
