package chatbox

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Widget mediates between an Input and a Predictor and owns the transcript.
//
// Submit, Resolve and Render mutate the transcript and must be called from
// the goroutine that owns the widget. Await only talks to the predictor and
// may run anywhere.
type Widget struct {
	transcript *Transcript
	input      Input
	predictor  Predictor
	scroller   Scroller
	texts      Texts
	greeting   string
	timestamps bool
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Widget.
type Option func(*Widget)

// WithTexts sets the user-facing strings.
func WithTexts(texts Texts) Option {
	return func(w *Widget) { w.texts = texts }
}

// WithGreeting overrides the greeting from the configured texts.
// An empty greeting keeps the locale default.
func WithGreeting(greeting string) Option {
	return func(w *Widget) { w.greeting = greeting }
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// WithScroller sets the view that follows new entries.
func WithScroller(s Scroller) Option {
	return func(w *Widget) { w.scroller = s }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) { w.logger = logger }
}

// WithTimestamps selects between timestamped and plain entries.
func WithTimestamps(enabled bool) Option {
	return func(w *Widget) { w.timestamps = enabled }
}

// NewWidget creates a widget and renders the initial greeting.
func NewWidget(input Input, predictor Predictor, opts ...Option) *Widget {
	texts, _ := TextsFor(DefaultLocale)
	w := &Widget{
		transcript: NewTranscript(),
		input:      input,
		predictor:  predictor,
		texts:      texts,
		timestamps: true,
		now:        time.Now,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}

	greeting := w.greeting
	if greeting == "" {
		greeting = w.texts.Greeting
	}
	if greeting != "" {
		w.Render(NewMessage(SenderBot, greeting, false))
	}
	return w
}

// Transcript returns the widget's transcript for reading.
func (w *Widget) Transcript() *Transcript {
	return w.transcript
}

// Texts returns the strings the widget renders with.
func (w *Widget) Texts() Texts {
	return w.texts
}

// Render stamps m with the current local time, appends it and scrolls to
// the bottom. It returns the message as stored in the transcript.
func (w *Widget) Render(m Message) Message {
	if w.timestamps {
		m.Timestamp = FormatTime(w.now())
	} else {
		m.Timestamp = ""
	}
	w.transcript.Append(m)
	if w.scroller != nil {
		w.scroller.ScrollToBottom()
	}
	return m
}

// Submit takes the current input and starts an exchange.
// Input that is empty after trimming is ignored and leaves everything
// untouched.
func (w *Widget) Submit() (*Exchange, bool) {
	text := strings.TrimSpace(w.input.Value())
	if text == "" {
		return nil, false
	}

	ex := newExchange(text)
	w.Render(NewMessage(SenderUser, text, false))

	w.input.SetValue("")
	w.input.Focus()

	placeholder := w.Render(NewMessage(SenderBot, w.texts.Typing, true))
	ex.placeholder = placeholder.ID
	ex.state = StateAwaitingResponse

	w.logger.Debug("message submitted", "exchange", ex.ID, "length", len(text))
	return ex, true
}

// Await performs the single request of ex and returns its reply.
// It does not modify the widget.
func (w *Widget) Await(ctx context.Context, ex *Exchange) Reply {
	start := time.Now()
	reply := w.predictor.Predict(ctx, ex.Text)
	if reply.Err != nil {
		w.logger.Error("prediction request failed",
			"exchange", ex.ID,
			"error", reply.Err,
			"duration_ms", time.Since(start).Milliseconds())
		return reply
	}
	w.logger.Debug("prediction received",
		"exchange", ex.ID,
		"empty", reply.Answer == "",
		"duration_ms", time.Since(start).Milliseconds())
	return reply
}

// Resolve replaces the placeholder of ex with the bot reply.
// It returns false if ex was already resolved or never submitted.
func (w *Widget) Resolve(ex *Exchange, reply Reply) (Message, bool) {
	if ex == nil || ex.state != StateAwaitingResponse {
		return Message{}, false
	}

	w.transcript.Remove(ex.placeholder)

	var text string
	switch {
	case reply.Err != nil:
		text = w.texts.NetworkError
		ex.outcome = OutcomeError
	case reply.Answer == "":
		text = w.texts.Fallback
		ex.outcome = OutcomeSuccess
	default:
		text = reply.Answer
		ex.outcome = OutcomeSuccess
	}
	ex.state = StateResolved

	return w.Render(NewMessage(SenderBot, text, false)), true
}

// Send submits the current input, waits for the reply and resolves it.
func (w *Widget) Send(ctx context.Context) (Message, bool) {
	ex, ok := w.Submit()
	if !ok {
		return Message{}, false
	}
	return w.Resolve(ex, w.Await(ctx, ex))
}

type awaited struct {
	exchange *Exchange
	reply    Reply
}

// SendAll submits every text at once and resolves the replies on the
// calling goroutine in the order they arrive. Blank texts are skipped.
// The returned bot messages are in resolution order.
func (w *Widget) SendAll(ctx context.Context, texts []string) []Message {
	var exchanges []*Exchange
	for _, text := range texts {
		w.input.SetValue(text)
		ex, ok := w.Submit()
		if !ok {
			continue
		}
		exchanges = append(exchanges, ex)
	}
	if len(exchanges) == 0 {
		return nil
	}

	results := make(chan awaited, len(exchanges))
	g, gctx := errgroup.WithContext(ctx)
	for _, ex := range exchanges {
		ex := ex
		g.Go(func() error {
			results <- awaited{exchange: ex, reply: w.Await(gctx, ex)}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(results)
	}()

	replies := make([]Message, 0, len(exchanges))
	for r := range results {
		if m, ok := w.Resolve(r.exchange, r.reply); ok {
			replies = append(replies, m)
		}
	}
	return replies
}
