package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-passcheck/passcheck"
)

// Model represents the meter's TUI state.
type Model struct {
	engine *passcheck.Engine

	input  textinput.Model
	result passcheck.Result
	masked bool

	showHelp bool

	keys   KeyMap
	help   help.Model
	styles StyleSet

	width, height int
}

// NewModel creates a new meter model backed by a [passcheck.Engine]
// built for locale (empty means English).
func NewModel(locale string) (*Model, error) {
	engine, err := passcheck.DefaultEngine()
	if err != nil {
		return nil, fmt.Errorf("building password checker: %w", err)
	}
	if locale != "" {
		if err := engine.SetLocale(locale); err != nil {
			return nil, err
		}
	}

	input := textinput.New()
	input.Placeholder = "type a password..."
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()
	input.CharLimit = passcheck.MaxPasswordLength

	m := &Model{
		engine: engine,
		input:  input,
		masked: true,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyleSet(),
	}
	m.evaluate()

	return m, nil
}

// Init implements the Bubble Tea Model interface.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// evaluate re-runs the engine against the current input value.
func (m *Model) evaluate() {
	m.result = m.engine.Evaluate(m.input.Value(), nil)
}
