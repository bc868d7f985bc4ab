package chatbox

import "github.com/google/uuid"

// State is the lifecycle position of one submission.
type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingResponse:
		return "awaiting_response"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome describes how a resolved exchange ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	default:
		return "none"
	}
}

// Exchange tracks one submission from the user message to the bot reply.
// Exchanges are independent of each other; several may be awaiting at once.
type Exchange struct {
	ID   string
	Text string // Trimmed user input sent to the predictor

	placeholder string
	state       State
	outcome     Outcome
}

func newExchange(text string) *Exchange {
	return &Exchange{
		ID:    uuid.New().String(),
		Text:  text,
		state: StateIdle,
	}
}

// State returns the current lifecycle state.
func (e *Exchange) State() State { return e.state }

// Outcome returns how the exchange ended; OutcomeNone until resolved.
func (e *Exchange) Outcome() Outcome { return e.outcome }

// PlaceholderID returns the ID of the typing indicator shown for this exchange.
func (e *Exchange) PlaceholderID() string { return e.placeholder }
