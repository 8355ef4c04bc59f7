package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Robot1   key.Binding
	Robot2   key.Binding
	Robot3   key.Binding
	Robot4   key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Reroll   key.Binding
	NewBoard key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Reroll, k.NewBoard, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Robot1, k.Robot2, k.Robot3, k.Robot4, k.Next},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reroll, k.NewBoard, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Robot1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "robot 1"),
		),
		Robot2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "robot 2"),
		),
		Robot3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "robot 3"),
		),
		Robot4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "robot 4"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next robot"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "slide up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "slide down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "slide left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "slide right"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-roll robots"),
		),
		NewBoard: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new board"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
