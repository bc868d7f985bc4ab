package chatbox

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "id"

// Texts holds the user-facing strings of the widget.
type Texts struct {
	Greeting     string // Initial bot message shown at load
	Fallback     string // Shown when a successful reply carries no answer
	NetworkError string // Shown for every failed request
	Typing       string // Plain-text rendition of the typing indicator
	UserLabel    string
	BotLabel     string
}

var locales = map[string]Texts{
	"id": {
		Greeting:     "Halo! Saya asisten virtual Fakultas Teknik. Ada yang bisa saya bantu?",
		Fallback:     "Maaf, saya tidak bisa memproses permintaan Anda saat ini.",
		NetworkError: "Waduh, sepertinya ada gangguan jaringan atau server. Silakan coba lagi beberapa saat.",
		Typing:       "sedang mengetik...",
		UserLabel:    "Anda",
		BotLabel:     "Bot",
	},
	"en": {
		Greeting:     "Hi! I'm the faculty's virtual assistant. How can I help you?",
		Fallback:     "Sorry, I can't process your request right now.",
		NetworkError: "Oops, there seems to be a network or server problem. Please try again in a moment.",
		Typing:       "typing...",
		UserLabel:    "You",
		BotLabel:     "Bot",
	},
}

// TextsFor returns the built-in strings for locale.
func TextsFor(locale string) (Texts, error) {
	key := strings.ToLower(strings.TrimSpace(locale))
	if key == "" {
		key = DefaultLocale
	}
	texts, ok := locales[key]
	if !ok {
		return Texts{}, fmt.Errorf("unsupported locale: %s (available: %s)", locale, strings.Join(Locales(), ", "))
	}
	return texts, nil
}

// Locales returns the names of the built-in locales, sorted.
func Locales() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Label returns the display label for sender.
func (t Texts) Label(sender Sender) string {
	if sender == SenderUser {
		return t.UserLabel
	}
	return t.BotLabel
}
