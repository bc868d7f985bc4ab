package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the chat view.
type Styles struct {
	Header    lipgloss.Style
	UserBox   lipgloss.Style
	BotBox    lipgloss.Style
	Typing    lipgloss.Style
	Timestamp lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

// DefaultStyles returns the built-in theme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3B5BDB")).
			Padding(0, 1),
		UserBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1C7ED6")).
			Padding(0, 1),
		BotBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#212529")).
			Background(lipgloss.Color("#E9ECEF")).
			Padding(0, 1),
		Typing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#868E96")).
			Background(lipgloss.Color("#E9ECEF")).
			Padding(0, 1),
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#868E96")).
			Faint(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#868E96")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F08C00")),
	}
}
