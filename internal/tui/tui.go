package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive live password-strength meter. locale
// selects the language for warnings and suggestions (empty means
// English).
func Run(locale string) error {
	model, err := NewModel(locale)
	if err != nil {
		return fmt.Errorf("creating meter model: %w", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("meter program failed: %w", err)
	}

	return nil
}
