package cell

// Normalize converts an untrusted payload into a total Snapshot. It is the
// single point where external JSON shapes become internal types.
//
// The input is the decoded "cells" object of either feed: keys are candidate
// cell identifiers, values are either a structured {door, cycle} object or a
// bare door value sent by legacy callers. Keys outside the roster are
// dropped without error. Any door or cycle value that is not an exact enum
// string degrades to unknown. Normalize never fails and never returns a
// partial snapshot.
func Normalize(raw map[string]any) Snapshot {
	snap := NewSnapshot()
	for key, value := range raw {
		id := ID(key)
		if !IsKnown(id) {
			continue
		}
		snap[id] = statusFromAny(value)
	}
	return snap
}

func statusFromAny(value any) Status {
	switch v := value.(type) {
	case map[string]any:
		return Status{
			Door:  doorFromAny(v["door"]),
			Cycle: cycleFromAny(v["cycle"]),
		}
	default:
		// Legacy callers send the door value directly.
		return Status{
			Door:  doorFromAny(value),
			Cycle: CycleUnknown,
		}
	}
}

func doorFromAny(value any) DoorState {
	s, ok := value.(string)
	if !ok {
		return DoorUnknown
	}
	switch DoorState(s) {
	case DoorOpen:
		return DoorOpen
	case DoorClosed:
		return DoorClosed
	default:
		return DoorUnknown
	}
}

func cycleFromAny(value any) CycleState {
	s, ok := value.(string)
	if !ok {
		return CycleUnknown
	}
	switch CycleState(s) {
	case CycleTaken:
		return CycleTaken
	case CycleReturned:
		return CycleReturned
	default:
		return CycleUnknown
	}
}
