package ui

import (
	"github.com/toolcrib/cellmon/internal/cell"
	"github.com/toolcrib/cellmon/internal/feed"
)

// doorLabel renders a door state for the cell tile.
func doorLabel(d cell.DoorState) string {
	switch d {
	case cell.DoorOpen:
		return "OPEN"
	case cell.DoorClosed:
		return "CLOSED"
	default:
		return "— ? —"
	}
}

// cycleLabel renders a cycle state for the cell tile.
func cycleLabel(c cell.CycleState) string {
	switch c {
	case cell.CycleTaken:
		return "taken"
	case cell.CycleReturned:
		return "returned"
	default:
		return "no data"
	}
}

// channelGlyph condenses a channel lifecycle for the footer.
func channelGlyph(lc feed.Lifecycle) string {
	switch lc {
	case feed.LifecycleActive:
		return "●"
	case feed.LifecycleConnecting, feed.LifecycleRetrying:
		return "◌"
	case feed.LifecycleStopped:
		return "■"
	default:
		return "·"
	}
}
