package chatbox

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// TimeLayout is the timestamp format shown next to every entry.
const TimeLayout = "15:04"

// Message represents a single transcript entry
type Message struct {
	ID        string `json:"id"`        // UUID v4, used to locate placeholders
	Sender    Sender `json:"sender"`    // "user" or "bot"
	Text      string `json:"text"`      // Message content
	IsMarkup  bool   `json:"is_markup"` // Drawn by the front end (typing indicator)
	Timestamp string `json:"timestamp"` // HH:MM at render time, empty in the plain variant
}

// NewMessage creates an unrendered message with a fresh ID.
func NewMessage(sender Sender, text string, isMarkup bool) Message {
	return Message{
		ID:       uuid.New().String(),
		Sender:   sender,
		Text:     text,
		IsMarkup: isMarkup,
	}
}

// IsPlaceholder reports whether m is a transient typing indicator.
func (m Message) IsPlaceholder() bool {
	return m.Sender == SenderBot && m.IsMarkup
}

// FormatTime formats t as HH:MM in t's location.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
