// Package backend provides the HTTP client for the crib backend API and the
// wire types shared with the websocket push feed.
//
// # Endpoints
//
//   - GET /state: full current snapshot (bootstrap and fallback polling)
//   - GET /health: reachability probe
//   - POST /mock/{cell_id}/{state}: development-only state injection
//   - /ws: push feed; the URL is derived from the base server URL with the
//     scheme upgraded to ws or wss (see Client.WSURL)
//
// Both feeds carry the same per-cell shape. The client deliberately leaves
// the cells object untyped; cell.Normalize is the single decode point for
// untrusted payloads.
package backend
