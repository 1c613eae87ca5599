package feed

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/toolcrib/cellmon/internal/backend"
	"github.com/toolcrib/cellmon/internal/cell"
	"github.com/toolcrib/cellmon/internal/state"
)

// Poll issues the bootstrap and fallback requests: one immediately on
// start, then one per fixed period until stopped. Failures are skipped
// silently; the next tick tries again. Like Push, a Poll is single-use.
type Poll struct {
	fetcher  backend.StateFetcher
	interval time.Duration
	store    *state.Store
	log      *logrus.Entry

	mu        sync.Mutex
	lifecycle Lifecycle
	live      bool
	started   bool
	done      chan struct{}
}

// NewPoll builds a poll manager fetching through fetcher every interval.
func NewPoll(fetcher backend.StateFetcher, interval time.Duration, store *state.Store, log *logrus.Entry) *Poll {
	return &Poll{
		fetcher:   fetcher,
		interval:  interval,
		store:     store,
		log:       log,
		lifecycle: LifecycleIdle,
		done:      make(chan struct{}),
	}
}

// Start launches the polling goroutine and returns immediately. The first
// request goes out at once so a fresh session has data before the first
// tick. Calling Start more than once, or after Stop, is a no-op.
func (p *Poll) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.lifecycle == LifecycleStopped {
		return
	}
	p.started = true
	p.live = true
	p.lifecycle = LifecycleActive

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			p.fetch()
			select {
			case <-p.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop cancels the periodic timer. An in-flight request that resolves
// afterwards is discarded by the liveness check and never mutates the
// store.
func (p *Poll) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lifecycle == LifecycleStopped {
		return
	}
	p.live = false
	p.lifecycle = LifecycleStopped
	close(p.done)
}

// Lifecycle returns the channel's current state.
func (p *Poll) Lifecycle() Lifecycle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lifecycle
}

func (p *Poll) fetch() {
	raw, err := p.fetcher.FetchState(context.Background())
	if err != nil {
		// Not escalated: the console keeps showing the last snapshot.
		p.log.WithError(err).Debug("state poll failed")
		return
	}
	snap := cell.Normalize(raw)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	// Poll-sourced snapshots are not event-tagged, so the diagnostic is
	// cleared.
	p.store.Replace(snap, nil)
}
