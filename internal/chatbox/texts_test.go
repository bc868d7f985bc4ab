package chatbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextsFor(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		wantErr  bool
		fallback string
	}{
		{
			name:     "default locale",
			locale:   "",
			fallback: "Maaf, saya tidak bisa memproses permintaan Anda saat ini.",
		},
		{
			name:     "indonesian",
			locale:   "id",
			fallback: "Maaf, saya tidak bisa memproses permintaan Anda saat ini.",
		},
		{
			name:     "english with spacing and case",
			locale:   " EN ",
			fallback: "Sorry, I can't process your request right now.",
		},
		{
			name:    "unknown",
			locale:  "fr",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts, err := TextsFor(tt.locale)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "en, id")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fallback, texts.Fallback)
			assert.NotEmpty(t, texts.NetworkError)
			assert.NotEmpty(t, texts.Greeting)
		})
	}
}

func TestTextsLabel(t *testing.T) {
	texts, err := TextsFor("en")
	require.NoError(t, err)
	assert.Equal(t, "You", texts.Label(SenderUser))
	assert.Equal(t, "Bot", texts.Label(SenderBot))
}
