// Package state provides the thread-safe canonical snapshot store.
//
// # Overview
//
// The Store is the coordination point between the two channel managers
// (producers) and the UI (consumer). Updates are wholesale replacements of
// the full snapshot, never incremental patches, so a reader can never
// observe a partially-applied update.
//
// # Concurrency Model
//
//	Producers (push + poll):        Consumer (UI):
//	┌─────────────────────┐        ┌─────────────────┐
//	│ normalize payload   │        │                 │
//	│        ↓            │        │                 │
//	│ store.Replace()     │───────→│ store.Current() │
//	│                     │ (mutex)│        ↓        │
//	└─────────────────────┘        │   render grid   │
//	                               └─────────────────┘
//
// The store deliberately applies no merge or ordering logic between the two
// producers: the latest successful Replace wins. When push and poll race,
// a stale poll result can therefore overwrite a fresher push result for up
// to one poll period. This matches the documented last-write-wins contract;
// see DESIGN.md for the decision record.
package state
