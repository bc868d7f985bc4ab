package chatbox

// Transcript is the ordered, append-only history of a widget.
// Only placeholders are ever removed.
//
// A Transcript has a single owner and is not safe for concurrent mutation.
type Transcript struct {
	entries []Message
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds m to the end of the transcript.
func (t *Transcript) Append(m Message) {
	t.entries = append(t.entries, m)
}

// Remove deletes the entry with the given ID and reports whether it existed.
func (t *Transcript) Remove(id string) bool {
	for i, m := range t.entries {
		if m.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether an entry with the given ID is present.
func (t *Transcript) Contains(id string) bool {
	for _, m := range t.entries {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Entries returns a copy of all entries in order.
func (t *Transcript) Entries() []Message {
	out := make([]Message, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Last returns the most recent entry, or false when the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.entries) == 0 {
		return Message{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Pending returns the number of placeholders still awaiting a reply.
func (t *Transcript) Pending() int {
	n := 0
	for _, m := range t.entries {
		if m.IsPlaceholder() {
			n++
		}
	}
	return n
}
