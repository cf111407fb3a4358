// Package keymap defines keybindings for the watch dashboard.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the dashboard.
type KeyMap struct {
	// Quit stops watching and exits.
	Quit key.Binding

	// Help toggles the full help.
	Help key.Binding

	// Convert runs a conversion immediately.
	Convert key.Binding

	// Clear empties the run history.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Convert: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "convert now"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
	}
}

// ShortHelp returns the keybindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Quit, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Convert, k.Clear},
		{k.Help, k.Quit},
	}
}
