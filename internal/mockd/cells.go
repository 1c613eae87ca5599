package mockd

import (
	"sync"

	"github.com/toolcrib/cellmon/internal/cell"
)

// cellRecord is the server-side state of one cell. awaitingClose arms the
// cycle toggle: an open door means a tool is being taken or returned, and
// the close that follows flips the cycle state.
type cellRecord struct {
	door          cell.DoorState
	cycle         cell.CycleState
	awaitingClose bool
}

func (c *cellRecord) apply(door cell.DoorState) bool {
	changed := false
	switch door {
	case cell.DoorOpen:
		if c.door != cell.DoorOpen {
			changed = true
		}
		c.door = cell.DoorOpen
		c.awaitingClose = true
	case cell.DoorClosed:
		if c.awaitingClose {
			next := cell.CycleReturned
			if c.cycle == cell.CycleReturned || c.cycle == cell.CycleUnknown {
				next = cell.CycleTaken
			}
			if next != c.cycle {
				changed = true
			}
			c.cycle = next
			c.awaitingClose = false
		}
		if c.door != cell.DoorClosed {
			changed = true
		}
		c.door = cell.DoorClosed
	default:
		if c.door != cell.DoorUnknown {
			changed = true
		}
		c.door = cell.DoorUnknown
	}
	return changed
}

// registry holds the mock backend's cell table.
type registry struct {
	mu    sync.Mutex
	cells map[cell.ID]*cellRecord
}

func newRegistry() *registry {
	cells := make(map[cell.ID]*cellRecord, len(cell.KnownIDs()))
	for _, id := range cell.KnownIDs() {
		cells[id] = &cellRecord{door: cell.DoorUnknown, cycle: cell.CycleUnknown}
	}
	return &registry{cells: cells}
}

// set applies a door reading to one cell and reports whether anything
// changed. Unknown identifiers are rejected.
func (r *registry) set(id cell.ID, door cell.DoorState) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.cells[id]
	if !ok {
		return false, false
	}
	return record.apply(door), true
}

// snapshotRaw renders the table in the wire shape shared by /state and the
// websocket envelope.
func (r *registry) snapshotRaw() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw := make(map[string]any, len(r.cells))
	for id, record := range r.cells {
		raw[string(id)] = map[string]any{
			"door":  string(record.door),
			"cycle": string(record.cycle),
		}
	}
	return raw
}
