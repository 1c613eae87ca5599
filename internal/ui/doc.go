// Package ui provides the Bubble Tea console for cellmon.
//
// The console renders the cell grid from the canonical store on a fixed
// refresh tick; it never talks to the backend itself. The lock toggle is
// the only control that reaches the sync core, driving the session gate.
// Everything else (themes, help) is purely presentational.
package ui
