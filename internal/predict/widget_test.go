package predict

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetWithClient(t *testing.T) {
	texts, err := chatbox.TextsFor("id")
	require.NoError(t, err)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		closed  bool
		want    string
		outcome chatbox.Outcome
	}{
		{
			name: "answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"answer":"hello"}`)
			},
			want:    "hello",
			outcome: chatbox.OutcomeSuccess,
		},
		{
			name: "empty object falls back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{}`)
			},
			want:    texts.Fallback,
			outcome: chatbox.OutcomeSuccess,
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `null`)
			},
			want:    texts.NetworkError,
			outcome: chatbox.OutcomeError,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want:    texts.NetworkError,
			outcome: chatbox.OutcomeError,
		},
		{
			name: "input rejected",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error":"Input terlalu panjang"}`)
			},
			want:    texts.NetworkError,
			outcome: chatbox.OutcomeError,
		},
		{
			name:    "server unreachable",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			closed:  true,
			want:    texts.NetworkError,
			outcome: chatbox.OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			if tt.closed {
				srv.Close()
			}

			field := chatbox.NewField("halo")
			w := chatbox.NewWidget(field, newTestClient(t, srv.URL), chatbox.WithTexts(texts))

			ex, ok := w.Submit()
			require.True(t, ok)
			msg, ok := w.Resolve(ex, w.Await(context.Background(), ex))
			require.True(t, ok)

			assert.Equal(t, tt.want, msg.Text)
			assert.Equal(t, tt.outcome, ex.Outcome())

			tr := w.Transcript()
			assert.Equal(t, 3, tr.Len(), "greeting, user message, bot reply")
			assert.Equal(t, 0, tr.Pending())
			assert.False(t, tr.Contains(ex.PlaceholderID()))
			last, _ := tr.Last()
			assert.Equal(t, chatbox.SenderBot, last.Sender)
			assert.Equal(t, tt.want, last.Text)
		})
	}
}
