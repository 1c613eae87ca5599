package state

import (
	"sync"
	"time"

	"github.com/toolcrib/cellmon/internal/cell"
)

// View is the latest data available to the UI: the current snapshot plus the
// diagnostic trailer of the update that produced it.
type View struct {
	Cells         cell.Snapshot
	Diagnostic    string
	HasDiagnostic bool
	LastUpdated   time.Time
}

// Store is the canonical holder of the current snapshot. Both channel
// managers write into it; the UI only reads. The last successful Replace
// wins regardless of which channel it came from; there is no ordering
// between push and poll.
type Store struct {
	mu   sync.RWMutex
	view View
}

// New returns a store populated with the all-unknown default snapshot.
func New() *Store {
	return &Store{view: View{Cells: cell.NewSnapshot()}}
}

// Current returns a copy of the present view. It never fails and the
// returned snapshot is always total.
func (s *Store) Current() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.view
	view.Cells = s.view.Cells.Clone()
	return view
}

// Replace swaps in a complete snapshot wholesale. A nil diag clears the
// diagnostic trailer; poll-sourced snapshots always pass nil since they are
// not event-tagged. Readers never observe a partially-updated snapshot.
func (s *Store) Replace(snap cell.Snapshot, diag *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Cells = snap.Clone()
	if diag != nil {
		s.view.Diagnostic = *diag
		s.view.HasDiagnostic = true
	} else {
		s.view.Diagnostic = ""
		s.view.HasDiagnostic = false
	}
	s.view.LastUpdated = time.Now()
}

// Reset wipes the store back to the all-unknown default. Used on session
// transitions so no stale information survives into an inactive view.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = View{Cells: cell.NewSnapshot()}
}
