// Package app is the composition root for cellmon.
//
// Run wires configuration, logging, the backend client, the canonical
// store, the session gate, and the console together, then blocks in the
// UI until the operator exits. RunMock hosts the development backend.
// No business logic lives here; everything is initialized and connected,
// nothing more.
package app
