// Package line is the plain-terminal front end: one prompt per line,
// replies printed as they arrive.
package line

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/longkey1/chatbox/internal/chatbox"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// REPL reads messages from In and prints the conversation to Out.
// Prompts, the spinner and command output go to Err.
type REPL struct {
	widget  *chatbox.Widget
	field   *chatbox.Field
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	title   string
	spinner bool
}

// Option configures a REPL.
type Option func(*REPL)

// WithSpinner enables the waiting animation on the error stream.
func WithSpinner(enabled bool) Option {
	return func(r *REPL) { r.spinner = enabled }
}

// WithTitle sets the banner title.
func WithTitle(title string) Option {
	return func(r *REPL) { r.title = title }
}

// New creates a REPL and its widget. widgetOpts are passed to the widget.
func New(predictor chatbox.Predictor, in io.Reader, out, errOut io.Writer, widgetOpts []chatbox.Option, opts ...Option) *REPL {
	field := chatbox.NewField("")
	r := &REPL{
		field:  field,
		in:     in,
		out:    out,
		errOut: errOut,
		title:  "chatbox",
	}
	for _, opt := range opts {
		opt(r)
	}
	r.widget = chatbox.NewWidget(field, predictor, widgetOpts...)
	return r
}

// Widget returns the widget driven by this REPL.
func (r *REPL) Widget() *chatbox.Widget {
	return r.widget
}

// Run loops until EOF, /exit or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	texts := r.widget.Texts()

	fmt.Fprintf(r.errOut, "\n=== %s ===\n", r.title)
	fmt.Fprintf(r.errOut, "Type '/help' for commands, '/exit' or 'Ctrl+D' to quit\n")
	fmt.Fprintf(r.errOut, "===================================\n\n")

	for _, m := range r.widget.Transcript().Entries() {
		fmt.Fprintln(r.out, FormatEntry(m, texts))
	}
	fmt.Fprintln(r.out)

	stop := make(chan struct{})
	defer close(stop)
	lines, scanErr := readLines(r.in, stop)

	for {
		fmt.Fprintf(r.errOut, "%s> ", texts.UserLabel)

		var text string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.errOut, "\nGoodbye!")
			return nil
		case received, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("input error: %w", err)
				}
				fmt.Fprintln(r.errOut, "\nGoodbye!")
				return nil
			}
			text = received
		}
		// Both cases may be ready at once; cancellation wins.
		if ctx.Err() != nil {
			fmt.Fprintln(r.errOut, "\nGoodbye!")
			return nil
		}

		input := strings.TrimSpace(text)
		if strings.HasPrefix(input, "/") {
			if r.handleCommand(input) {
				continue
			}
			return nil
		}

		r.field.SetValue(input)
		ex, ok := r.widget.Submit()
		if !ok {
			continue
		}

		var reply chatbox.Reply
		if r.spinner {
			done := make(chan struct{})
			stopped := make(chan struct{})
			go func() {
				showSpinner(r.errOut, texts.Typing, done)
				close(stopped)
			}()
			reply = r.widget.Await(ctx, ex)
			close(done)
			<-stopped
		} else {
			reply = r.widget.Await(ctx, ex)
		}

		msg, _ := r.widget.Resolve(ex, reply)
		fmt.Fprintf(r.out, "\n%s\n\n", FormatEntry(msg, texts))
	}
}

// readLines scans in on its own goroutine so that Run can give up waiting
// when its context ends. scanErr receives the scanner error before lines is
// closed at EOF.
func readLines(in io.Reader, stop <-chan struct{}) (lines <-chan string, scanErr <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-stop:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return out, errc
}

// showSpinner animates on w until done is closed.
func showSpinner(w io.Writer, label string, done <-chan struct{}) {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	i := 0
	for {
		fmt.Fprintf(w, "\r%s %s", spinnerFrames[i], label)
		i = (i + 1) % len(spinnerFrames)
		select {
		case <-done:
			fmt.Fprint(w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// handleCommand processes slash commands.
// Returns true to continue the loop, false to exit.
func (r *REPL) handleCommand(command string) bool {
	command = strings.ToLower(strings.TrimSpace(command))

	switch command {
	case "/help", "/h":
		fmt.Fprintln(r.errOut, "\nAvailable commands:")
		fmt.Fprintln(r.errOut, "  /help, /h      - Show this help message")
		fmt.Fprintln(r.errOut, "  /history, /l   - Print the transcript")
		fmt.Fprintln(r.errOut, "  /clear, /c     - Clear screen (Unix/Linux only)")
		fmt.Fprintln(r.errOut, "  /exit, /quit   - Exit")
		fmt.Fprintln(r.errOut, "  Ctrl+D         - Exit")
		fmt.Fprintln(r.errOut, "")
		return true

	case "/history", "/l":
		fmt.Fprintln(r.errOut)
		WriteTranscript(r.errOut, r.widget)
		fmt.Fprintln(r.errOut)
		return true

	case "/clear", "/c":
		fmt.Fprint(r.out, "\033[H\033[2J")
		return true

	case "/exit", "/quit", "/q":
		fmt.Fprintln(r.errOut, "Goodbye!")
		return false

	default:
		fmt.Fprintf(r.errOut, "Unknown command: %s (type '/help' for available commands)\n", command)
		return true
	}
}
