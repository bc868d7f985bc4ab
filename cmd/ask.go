package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/longkey1/chatbox/internal/ui/line"
	"github.com/spf13/cobra"
)

var askJSON bool

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>...",
	Short: "Send several questions at once",
	Long: `Send every argument as a separate message without waiting for the
previous answer, then print the whole conversation.

With --json the transcript is printed as a JSON array of messages.

Examples:
  chatbox ask "jadwal kuliah" "biaya spp"
  chatbox ask --json "hello" | jq '.[].text'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runAsk(ctx, os.Stdout, args, askJSON)
	},
}

// runAsk submits every question at once and writes the resulting transcript.
func runAsk(ctx context.Context, out io.Writer, questions []string, asJSON bool) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.closeLog()

	w := chatbox.NewWidget(chatbox.NewField(""), s.predictor, s.options...)
	replies := w.SendAll(ctx, questions)
	if len(replies) == 0 {
		return fmt.Errorf("no message provided")
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(w.Transcript().Entries()); err != nil {
			return fmt.Errorf("encoding transcript: %w", err)
		}
		return nil
	}

	line.WriteTranscript(out, w)
	return nil
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the transcript as JSON")
}
