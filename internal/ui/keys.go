package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit      key.Binding
	FocusNext   key.Binding
	Help        key.Binding
	Quit        key.Binding
	QuitHistory key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "roll"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch focus"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc", "quit"),
		),
		// "q" quits only while the history table is focused; in the entry
		// field it is ordinary input.
		QuitHistory: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
