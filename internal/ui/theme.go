package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toolcrib/cellmon/internal/cell"
)

// Theme defines the console colors.
type Theme struct {
	Name string

	Text   string
	Muted  string
	Accent string
	Border string

	DoorOpen    string
	DoorClosed  string
	DoorUnknown string

	CycleTaken    string
	CycleReturned string
}

var themes = []Theme{
	{
		Name:          "Graphite",
		Text:          "#d0d0d0",
		Muted:         "#6c6c6c",
		Accent:        "#5fafd7",
		Border:        "#444444",
		DoorOpen:      "#d75f5f",
		DoorClosed:    "#87af87",
		DoorUnknown:   "#8a8a8a",
		CycleTaken:    "#d7af5f",
		CycleReturned: "#87afd7",
	},
	{
		Name:          "Signal",
		Text:          "#e4e4e4",
		Muted:         "#767676",
		Accent:        "#ff8700",
		Border:        "#585858",
		DoorOpen:      "#ff5f5f",
		DoorClosed:    "#5fd75f",
		DoorUnknown:   "#9e9e9e",
		CycleTaken:    "#ffd75f",
		CycleReturned: "#5fafff",
	},
}

// ThemeByName returns the named theme, defaulting to the first one.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// DoorColor maps a door state to its theme color.
func (t Theme) DoorColor(d cell.DoorState) lipgloss.Color {
	switch d {
	case cell.DoorOpen:
		return lipgloss.Color(t.DoorOpen)
	case cell.DoorClosed:
		return lipgloss.Color(t.DoorClosed)
	default:
		return lipgloss.Color(t.DoorUnknown)
	}
}

// CycleColor maps a cycle state to its theme color.
func (t Theme) CycleColor(c cell.CycleState) lipgloss.Color {
	switch c {
	case cell.CycleTaken:
		return lipgloss.Color(t.CycleTaken)
	case cell.CycleReturned:
		return lipgloss.Color(t.CycleReturned)
	default:
		return lipgloss.Color(t.DoorUnknown)
	}
}
