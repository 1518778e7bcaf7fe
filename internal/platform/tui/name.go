package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxNameLen = 20

// NameModel asks for the player name shown in reports and on the scoreboard.
type NameModel struct {
	input    textinput.Model
	width    int
	done     bool
	quitting bool
}

// NewNameModel creates a name prompt prefilled with suggestion.
func NewNameModel(suggestion string, width int) NameModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen
	ti.SetValue(suggestion)
	ti.Focus()
	return NameModel{input: ti, width: width}
}

// Init starts the cursor blink.
func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.Name() != "" {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("WHO'S WHACKING?"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: continue  |  Esc: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Name returns the trimmed name typed so far.
func (m NameModel) Name() string {
	return strings.TrimSpace(m.input.Value())
}

// Done reports whether a name was confirmed.
func (m NameModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit.
func (m NameModel) IsQuitting() bool {
	return m.quitting
}
