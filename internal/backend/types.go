package backend

import "encoding/json"

// StateResponse mirrors the payload returned by GET /state. Cells is kept
// untyped on purpose: cell.Normalize is the only place that interprets it.
type StateResponse struct {
	Cells map[string]any `json:"cells"`
}

// Envelope mirrors one frame of the /ws push feed:
//
//	{"type": "state", "data": {"cells": {...}, "raw": "..."}}
//
// Frames whose Type is not "state" are discarded by the push manager.
type Envelope struct {
	Type string       `json:"type"`
	Data EnvelopeData `json:"data"`
}

// EnvelopeData carries the cells object plus the free-form diagnostic
// trailer the backend attaches to event-tagged updates.
type EnvelopeData struct {
	Cells map[string]any `json:"cells"`
	Raw   *string        `json:"raw"`
}

// EnvelopeTypeState is the only frame type the client consumes.
const EnvelopeTypeState = "state"

// DecodeEnvelope parses a raw websocket frame. It returns false when the
// frame is not valid JSON or does not match the expected envelope shape;
// such frames are dropped without affecting the connection.
func DecodeEnvelope(frame []byte) (Envelope, bool) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, false
	}
	if env.Type != EnvelopeTypeState || env.Data.Cells == nil {
		return Envelope{}, false
	}
	return env, true
}
