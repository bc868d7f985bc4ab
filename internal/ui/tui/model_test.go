package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func newTestModel(t *testing.T, p chatbox.Predictor) *Model {
	t.Helper()
	texts, err := chatbox.TextsFor("en")
	require.NoError(t, err)
	clock := func() time.Time { return time.Date(2025, 1, 2, 13, 45, 0, 0, time.Local) }
	m := New(context.Background(), "chatbox", p, chatbox.WithTexts(texts), chatbox.WithClock(clock))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestEnterSubmitsAndReplyResolves(t *testing.T) {
	m := newTestModel(t, chatbox.PredictorFunc(func(ctx context.Context, text string) chatbox.Reply {
		return chatbox.Reply{Answer: "echo: " + text}
	}))

	typeText(m, "hello")
	assert.Equal(t, "hello", m.input.Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	tr := m.Widget().Transcript()
	assert.Equal(t, 3, tr.Len(), "greeting, user message, placeholder")
	assert.Equal(t, 1, tr.Pending())
	assert.Equal(t, "", m.input.Value())
	assert.Contains(t, m.View(), "typing...")

	m.Update(cmd())

	assert.Equal(t, 0, tr.Pending())
	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, "echo: hello", last.Text)
	assert.Contains(t, m.View(), "echo: hello")
	assert.Contains(t, m.View(), "13:45")
}

func TestEnterOnBlankInputDoesNothing(t *testing.T) {
	m := newTestModel(t, chatbox.PredictorFunc(func(ctx context.Context, text string) chatbox.Reply {
		t.Fatal("predictor must not be called")
		return chatbox.Reply{}
	}))

	typeText(m, "   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Widget().Transcript().Len())
	assert.Equal(t, "   ", m.input.Value())
}

func TestConcurrentSubmissionsResolveIndependently(t *testing.T) {
	m := newTestModel(t, chatbox.PredictorFunc(func(ctx context.Context, text string) chatbox.Reply {
		if text == "second" {
			return chatbox.Reply{Err: errors.New("connection reset")}
		}
		return chatbox.Reply{Answer: "ok " + text}
	}))

	typeText(m, "first")
	_, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "second")
	_, second := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, first)
	require.NotNil(t, second)

	tr := m.Widget().Transcript()
	assert.Equal(t, 2, tr.Pending())

	// The second request finishes first.
	m.Update(second())
	assert.Equal(t, 1, tr.Pending())
	last, _ := tr.Last()
	assert.Equal(t, m.Widget().Texts().NetworkError, last.Text)

	m.Update(first())
	assert.Equal(t, 0, tr.Pending())
	last, _ = tr.Last()
	assert.Equal(t, "ok first", last.Text)
	assert.Equal(t, 5, tr.Len())
}

func TestLongInputIsSentWhole(t *testing.T) {
	var got string
	m := newTestModel(t, chatbox.PredictorFunc(func(ctx context.Context, text string) chatbox.Reply {
		got = text
		return chatbox.Reply{Err: errors.New("HTTP error! status: 400")}
	}))
	long := strings.Repeat("a", 600)

	typeText(m, long)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, long, got)
	last, _ := m.Widget().Transcript().Last()
	assert.Equal(t, m.Widget().Texts().NetworkError, last.Text)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, chatbox.PredictorFunc(func(ctx context.Context, text string) chatbox.Reply {
		return chatbox.Reply{}
	}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsGreeting(t *testing.T) {
	m := newTestModel(t, chatbox.PredictorFunc(func(ctx context.Context, text string) chatbox.Reply {
		return chatbox.Reply{}
	}))
	assert.Contains(t, m.View(), "virtual assistant")
	assert.Contains(t, m.View(), "enter send")
}
