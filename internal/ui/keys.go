package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for the console.
type keyMap struct {
	Quit       key.Binding
	ToggleLock key.Binding
	CycleTheme key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleLock: key.NewBinding(
			key.WithKeys("u", "l"),
			key.WithHelp("u/l", "unlock/lock"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLock, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleLock, k.CycleTheme},
		{k.Help, k.Quit},
	}
}
