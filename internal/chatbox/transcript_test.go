package chatbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptAppendRemove(t *testing.T) {
	tr := NewTranscript()
	_, ok := tr.Last()
	assert.False(t, ok)

	first := NewMessage(SenderUser, "halo", false)
	placeholder := NewMessage(SenderBot, "typing", true)
	tr.Append(first)
	tr.Append(placeholder)

	require.Equal(t, 2, tr.Len())
	assert.True(t, tr.Contains(placeholder.ID))
	assert.Equal(t, 1, tr.Pending())

	assert.True(t, tr.Remove(placeholder.ID))
	assert.False(t, tr.Remove(placeholder.ID), "second removal must report absence")
	assert.Equal(t, 0, tr.Pending())

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, first.ID, last.ID)
}

func TestTranscriptEntriesIsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewMessage(SenderBot, "a", false))

	entries := tr.Entries()
	entries[0].Text = "changed"

	last, _ := tr.Last()
	assert.Equal(t, "a", last.Text)
}

func TestTranscriptRemoveKeepsOrder(t *testing.T) {
	tr := NewTranscript()
	a := NewMessage(SenderUser, "a", false)
	b := NewMessage(SenderBot, "b", true)
	c := NewMessage(SenderUser, "c", false)
	tr.Append(a)
	tr.Append(b)
	tr.Append(c)

	require.True(t, tr.Remove(b.ID))

	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Text)
	assert.Equal(t, "c", entries[1].Text)
}
