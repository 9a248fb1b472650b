// Package tui provides an interactive, full-screen live password-strength
// meter: the password is re-evaluated against the core engine on every
// keystroke.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the meter.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	ToggleView key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		ToggleView: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "show/hide password")),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleView, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.ToggleView, k.Help, k.Quit}}
}
