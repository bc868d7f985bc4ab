// Package tui is the full-screen front end of the chat widget.
// The bubbles textinput plays the input control, a viewport the transcript
// container and a spinner the typing indicator.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/longkey1/chatbox/internal/chatbox"
)

const (
	headerHeight = 1
	footerHeight = 3 // blank line, input, help
	defaultWidth = 80
)

// replyMsg carries a finished request back into the update loop.
type replyMsg struct {
	exchange *chatbox.Exchange
	reply    chatbox.Reply
}

// Model is the bubbletea model of the chat widget.
type Model struct {
	ctx      context.Context
	title    string
	widget   *chatbox.Widget
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   Styles
	keys     keyMap
	width    int
	height   int
}

// New creates the model and its widget. opts are passed to the widget;
// the model registers itself as the widget's scroller.
func New(ctx context.Context, title string, predictor chatbox.Predictor, opts ...chatbox.Option) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0 // the server decides what is too long
	input.Focus()

	vp := viewport.New(defaultWidth, 20)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	m := &Model{
		ctx:      ctx,
		title:    title,
		input:    input,
		viewport: vp,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Points)),
		styles:   DefaultStyles(),
		keys:     defaultKeyMap(),
		width:    defaultWidth,
	}

	opts = append(opts, chatbox.WithScroller(m))
	m.widget = chatbox.NewWidget(inputField{&m.input}, predictor, opts...)
	m.input.Placeholder = placeholderFor(m.widget.Texts())
	m.ScrollToBottom()
	return m
}

// Widget returns the widget driven by this model.
func (m *Model) Widget() *chatbox.Widget {
	return m.widget
}

// Init starts the cursor blink and the typing indicator animation.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles terminal events and finished requests.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case replyMsg:
		m.widget.Resolve(msg.exchange, msg.reply)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.widget.Transcript().Pending() > 0 {
			m.refresh()
		}
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts an exchange and returns the command that awaits its reply.
func (m *Model) submit() tea.Cmd {
	ex, ok := m.widget.Submit()
	if !ok {
		return nil
	}
	ctx, w := m.ctx, m.widget
	return func() tea.Msg {
		return replyMsg{exchange: ex, reply: w.Await(ctx, ex)}
	}
}

// View renders header, transcript, input and help line.
func (m *Model) View() string {
	header := m.styles.Header.Render(m.title)
	if n := m.widget.Transcript().Pending(); n > 0 {
		header += " " + m.styles.Status.Render(fmt.Sprintf("%s (%d)", m.widget.Texts().Typing, n))
	}
	return header + "\n" +
		m.viewport.View() + "\n\n" +
		m.input.View() + "\n" +
		m.styles.Help.Render(m.keys.helpLine())
}

// ScrollToBottom re-renders the transcript and follows the newest entry.
func (m *Model) ScrollToBottom() {
	// The widget renders its greeting before New has stored it.
	if m.widget == nil {
		return
	}
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-headerHeight-footerHeight)
	m.input.Width = max(10, width-len(m.input.Prompt)-2)
	m.ScrollToBottom()
}

func (m *Model) renderTranscript() string {
	entries := m.widget.Transcript().Entries()
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, m.renderEntry(entry))
	}
	return strings.Join(blocks, "\n\n")
}

// renderEntry draws one bubble with its timestamp, user entries on the right.
func (m *Model) renderEntry(msg chatbox.Message) string {
	width := max(m.viewport.Width, 20)
	maxBubble := width * 3 / 4

	var bubble string
	switch {
	case msg.IsMarkup:
		bubble = m.styles.Typing.Render(m.spinner.View() + " " + m.widget.Texts().Typing)
	case msg.Sender == chatbox.SenderUser:
		bubble = wrap(m.styles.UserBox, msg.Text, maxBubble)
	default:
		bubble = wrap(m.styles.BotBox, msg.Text, maxBubble)
	}

	align := lipgloss.Left
	if msg.Sender == chatbox.SenderUser {
		align = lipgloss.Right
	}

	block := bubble
	if msg.Timestamp != "" {
		block = lipgloss.JoinVertical(align, bubble, m.styles.Timestamp.Render(msg.Timestamp))
	}
	return lipgloss.PlaceHorizontal(width, align, block)
}

func wrap(style lipgloss.Style, text string, maxWidth int) string {
	if lipgloss.Width(text)+style.GetHorizontalFrameSize() > maxWidth {
		style = style.Width(maxWidth)
	}
	return style.Render(text)
}

func placeholderFor(texts chatbox.Texts) string {
	if texts.UserLabel == "" {
		return ""
	}
	return texts.UserLabel + "..."
}

// inputField adapts a textinput.Model to chatbox.Input.
type inputField struct {
	m *textinput.Model
}

func (f inputField) Value() string         { return f.m.Value() }
func (f inputField) SetValue(value string) { f.m.SetValue(value) }
func (f inputField) Focus()                { f.m.Focus() }

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running chat view: %w", err)
	}
	return nil
}
