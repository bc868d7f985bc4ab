// Package chatbox provides the core abstractions of the chat widget.
// A Widget mediates between an input control and a Predictor: it owns the
// transcript and turns every submission into an Exchange that ends in
// exactly one bot message.
//
// Front ends (the full-screen TUI, line mode, one-shot commands) supply the
// Input and an optional Scroller; the predict package supplies the Predictor.
package chatbox

import "context"

// Reply is the result of one prediction request.
// Err is nil on success; Answer may still be empty, in which case the
// widget shows its fallback text.
type Reply struct {
	Answer string
	Err    error
}

// OK reports whether the request completed successfully.
func (r Reply) OK() bool {
	return r.Err == nil
}

// Predictor defines the interface for the remote answer service.
//
// Example usage:
//
//	client, err := predict.NewClient("http://127.0.0.1:5000")
//	reply := client.Predict(ctx, "jadwal kuliah informatika")
type Predictor interface {
	// Predict sends text to the service and returns its answer or an error.
	// Implementations must not panic on malformed responses.
	Predict(ctx context.Context, text string) Reply
}

// PredictorFunc adapts a function to the Predictor interface.
type PredictorFunc func(ctx context.Context, text string) Reply

// Predict calls f(ctx, text).
func (f PredictorFunc) Predict(ctx context.Context, text string) Reply {
	return f(ctx, text)
}

// Input is the text input control the widget reads from.
type Input interface {
	Value() string
	SetValue(value string)
	Focus()
}

// Scroller is implemented by transcript views that can follow new entries.
type Scroller interface {
	ScrollToBottom()
}

// Field is an in-memory Input for commands without an interactive control.
type Field struct {
	value   string
	focused bool
}

// NewField returns a Field holding value.
func NewField(value string) *Field {
	return &Field{value: value}
}

func (f *Field) Value() string         { return f.value }
func (f *Field) SetValue(value string) { f.value = value }
func (f *Field) Focus()                { f.focused = true }

// Focused reports whether Focus has been called since the field was created.
func (f *Field) Focused() bool { return f.focused }
