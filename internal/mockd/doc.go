// Package mockd implements the development mock backend.
//
// It reproduces the production backend's client-facing surface so the
// console can be exercised without hardware: GET /health, GET /state, the
// /ws push feed, and POST /mock/{cell_id}/{state} to inject door readings.
//
// The cycle rule matches the real sensor pipeline: opening a door arms the
// cell, and the close that follows toggles the tool-cycle state (unknown or
// returned becomes taken, taken becomes returned). Every effective change
// is broadcast to all websocket clients as a state envelope tagged with a
// "mock:<cell>:<state>" diagnostic trailer.
package mockd
