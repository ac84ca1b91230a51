package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pixelvoid/starfall/internal/shooter"
)

// KeyMap holds the key bindings for a play session. Centralizing them keeps
// the bindings testable and the help text in one place.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Grow   key.Binding
	Shrink key.Binding

	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow ship"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink ship"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// direction maps a pressed binding to a simulation direction.
// The boolean reports whether the key was a movement key at all.
func (k KeyMap) direction(keyName string) (shooter.Direction, bool) {
	match := func(b key.Binding) bool {
		for _, kk := range b.Keys() {
			if kk == keyName {
				return true
			}
		}
		return false
	}

	switch {
	case match(k.Up):
		return shooter.DirUp, true
	case match(k.Down):
		return shooter.DirDown, true
	case match(k.Left):
		return shooter.DirLeft, true
	case match(k.Right):
		return shooter.DirRight, true
	default:
		return 0, false
	}
}
