package line

import (
	"fmt"
	"io"

	"github.com/longkey1/chatbox/internal/chatbox"
)

// FormatEntry renders one transcript entry as a single line,
// e.g. "[09:05] Bot: Halo!".
func FormatEntry(m chatbox.Message, texts chatbox.Texts) string {
	text := m.Text
	if m.IsPlaceholder() {
		text = texts.Typing
	}
	if m.Timestamp == "" {
		return fmt.Sprintf("%s: %s", texts.Label(m.Sender), text)
	}
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp, texts.Label(m.Sender), text)
}

// WriteTranscript prints every entry of w's transcript, one per line.
func WriteTranscript(out io.Writer, w *chatbox.Widget) {
	texts := w.Texts()
	for _, m := range w.Transcript().Entries() {
		fmt.Fprintln(out, FormatEntry(m, texts))
	}
}
