package cell

// ID names a monitored cell. The set of valid IDs is closed and agreed with
// the backend; it does not change for the lifetime of the process.
type ID string

// knownIDs is the build-time roster of monitored cells, in display order.
var knownIDs = []ID{
	"Door_1",
	"Door_2",
	"Door_3",
	"Door_4",
	"Door_5",
	"Door_6",
	"Door_7",
	"Door_8",
	"Door_9",
	"Door_10",
	"Door_11",
	"Door_12",
}

var knownSet = func() map[ID]struct{} {
	set := make(map[ID]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		set[id] = struct{}{}
	}
	return set
}()

// KnownIDs returns the ordered roster of cell identifiers.
func KnownIDs() []ID {
	ids := make([]ID, len(knownIDs))
	copy(ids, knownIDs)
	return ids
}

// IsKnown reports whether id belongs to the build-time roster.
func IsKnown(id ID) bool {
	_, ok := knownSet[id]
	return ok
}

// DoorState reflects the last reported position of a cell door.
type DoorState string

const (
	DoorOpen    DoorState = "open"
	DoorClosed  DoorState = "closed"
	DoorUnknown DoorState = "unknown"
)

// CycleState reflects whether the tool tracked by a cell is currently
// checked out or back in its cell.
type CycleState string

const (
	CycleTaken    CycleState = "taken"
	CycleReturned CycleState = "returned"
	CycleUnknown  CycleState = "unknown"
)

// Status is the per-cell pair of door and cycle readings. Components that
// the backend did not report, or reported out of range, are unknown.
type Status struct {
	Door  DoorState
	Cycle CycleState
}

// UnknownStatus is the default reading for a cell nothing has reported on.
var UnknownStatus = Status{Door: DoorUnknown, Cycle: CycleUnknown}

// Snapshot maps every known cell to exactly one Status. A Snapshot built by
// this package is always total: each entry of the roster is present.
type Snapshot map[ID]Status

// NewSnapshot returns a total snapshot with every cell unknown.
func NewSnapshot() Snapshot {
	snap := make(Snapshot, len(knownIDs))
	for _, id := range knownIDs {
		snap[id] = UnknownStatus
	}
	return snap
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	dup := make(Snapshot, len(s))
	for id, status := range s {
		dup[id] = status
	}
	return dup
}

// Equal reports whether two snapshots carry the same readings.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for id, status := range s {
		if other[id] != status {
			return false
		}
	}
	return true
}
