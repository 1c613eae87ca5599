// Package feed implements the dual-channel state synchronization core.
//
// # Overview
//
// Two independent channel managers keep the canonical store consistent with
// the backend:
//
//   - Push: a persistent websocket at /ws, the primary feed
//   - Poll: a periodic GET /state, the bootstrap and fallback feed
//
// The Gate starts and stops both on the operator's lock toggle. Each
// manager routes its payload through cell.Normalize and replaces the store
// snapshot wholesale.
//
// # Push State Machine
//
//	idle → connecting → active ⇄ retrying → stopped
//
// A disconnect schedules exactly one reconnect attempt after a fixed delay.
// Retries are unbounded with no backoff growth; the backend is LAN-local
// and always-retry is the intended policy. Malformed frames are dropped
// silently and never count as a connection failure.
//
// # Liveness
//
// Stopping a manager clears its timer and connection handles and flips a
// liveness flag under the manager's mutex. Store writes happen under the
// same mutex after re-checking the flag, so a dial, read, or request that
// completes after teardown can never mutate a store that has since been
// reset for a new session.
//
// # Channel Race
//
// Push and poll updates are unordered with respect to each other and the
// store applies last-write-wins, so a stale poll body can briefly overwrite
// a fresher push frame. The decision record is in DESIGN.md. Polling keeps
// running while push is active and doubles as a liveness check for the
// HTTP side.
package feed
