// Package tui is the terminal front-end: one input area, one action, and
// either the humanized text or an error below it.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adeqmish/ai-text-humanizer/internal/initiator"
)

const (
	labelIdle    = "Humanize Text"
	labelLoading = "Humanizing..."
)

type humanizeDoneMsg struct{}

type Model struct {
	in      *initiator.Initiator
	input   textarea.Model
	spinner spinner.Model
	help    help.Model
	width   int

	// busy is set as soon as a submission is dispatched, before the
	// initiator itself reports Loading.
	busy bool
}

// New builds the model around an initiator. The caller keeps ownership of
// in; the TUI only reads its state and calls Submit.
func New(in *initiator.Initiator) *Model {
	input := textarea.New()
	input.Placeholder = "Paste AI-generated text here..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(8)
	input.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(colorPrimary)),
	)

	return &Model{
		in:      in,
		input:   input,
		spinner: sp,
		help:    help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			return m, m.submit()
		case key.Matches(msg, keys.Clear):
			if !m.loading() {
				m.input.Reset()
				m.in.SetInput("")
			}
			return m, nil
		}
		if m.loading() {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width - 4)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case humanizeDoneMsg:
		m.busy = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.in.SetInput(m.input.Value())
	return m, cmd
}

func (m *Model) loading() bool {
	return m.busy || m.in.State().Loading
}

func (m *Model) submit() tea.Cmd {
	if m.loading() || !m.in.CanSubmit() {
		return nil
	}
	m.busy = true
	return tea.Batch(m.humanize(m.input.Value()), m.spinner.Tick)
}

func (m *Model) humanize(text string) tea.Cmd {
	return func() tea.Msg {
		m.in.Submit(context.Background(), text)
		return humanizeDoneMsg{}
	}
}

func (m *Model) View() string {
	s := m.in.State()

	var b strings.Builder
	b.WriteString(styleTitle.Render(initiator.AppName))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(initiator.AppTagline))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading():
		b.WriteString(styleButtonDisabled.Render(m.spinner.View() + " " + labelLoading))
	case m.in.CanSubmit():
		b.WriteString(styleButton.Render(labelIdle))
	default:
		b.WriteString(styleButtonDisabled.Render(labelIdle))
	}
	b.WriteString("\n\n")

	if s.Error != "" {
		body := styleErrorText.Render("Error") + "\n" + s.Error + "\n\n" + styleSubtitle.Render(initiator.ConfigHint)
		b.WriteString(m.box(styleErrorBox).Render(body))
		b.WriteString("\n\n")
	}
	if s.Output != "" {
		body := styleLabel.Render("Humanized Text") + "\n" + s.Output
		b.WriteString(m.box(styleOutputBox).Render(body))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m *Model) box(style lipgloss.Style) lipgloss.Style {
	if m.width > 4 {
		return style.Width(m.width - 4)
	}
	return style
}

// Run starts the program on the current terminal and blocks until quit.
func Run(in *initiator.Initiator) error {
	_, err := tea.NewProgram(New(in), tea.WithAltScreen()).Run()
	return err
}
