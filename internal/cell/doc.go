// Package cell defines the cell data model and payload normalization.
//
// # Overview
//
// A cell is a monitored physical enclosure with a door sensor and an
// optional tool-cycle sensor. The package fixes the roster of cells at
// build time, defines the tri-state door and cycle enums, and converts
// untrusted backend payloads into total, fully-defaulted snapshots.
//
// # Core Types
//
//   - ID: one of a closed, ordered set of cell names
//   - DoorState: open | closed | unknown
//   - CycleState: taken | returned | unknown
//   - Status: the {door, cycle} pair for one cell
//   - Snapshot: a total map from every known ID to exactly one Status
//
// # Normalization Contract
//
// Normalize is pure and never fails. Malformed values degrade to unknown
// rather than aborting the rest of the payload, and identifiers outside the
// roster are dropped silently. The result always covers the full roster,
// even when the inbound payload omitted cells entirely. Both the push and
// the poll feed route their payloads through this single function before
// anything reaches shared state.
package cell
