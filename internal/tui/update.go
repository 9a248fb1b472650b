package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements the Bubble Tea Model interface.
//
//nolint:ireturn // tea.Model interface is required by Bubble Tea framework
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	default:
		return m, nil
	}
}

// handleKeyMessage handles key press messages.
//
//nolint:ireturn // tea.Model interface is required by Bubble Tea framework
func (m Model) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.result.Destroy()

		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

		return m, nil
	case key.Matches(msg, m.keys.ToggleView):
		m.masked = !m.masked
		if m.masked {
			m.input.EchoMode = textinput.EchoPassword
		} else {
			m.input.EchoMode = textinput.EchoNormal
		}

		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.evaluate()

		return m, cmd
	}
}
