package feed

import (
	"sync"
	"time"

	"github.com/toolcrib/cellmon/internal/backend"
	"github.com/toolcrib/cellmon/internal/logging"
	"github.com/toolcrib/cellmon/internal/state"
)

// Gate starts and stops both channel managers on an external active signal,
// typically the operator lock toggle. Channel managers are single-use, so
// every activation builds fresh ones; nothing of a previous session
// survives a deactivate/activate cycle.
type Gate struct {
	store          *state.Store
	wsURL          string
	fetcher        backend.StateFetcher
	pollInterval   time.Duration
	reconnectDelay time.Duration

	mu     sync.Mutex
	active bool
	push   *Push
	poll   *Poll
}

// NewGate wires a gate over the shared store and the backend client. wsURL
// is the derived push endpoint (see backend.Client.WSURL).
func NewGate(store *state.Store, fetcher backend.StateFetcher, wsURL string, pollInterval, reconnectDelay time.Duration) *Gate {
	return &Gate{
		store:          store,
		wsURL:          wsURL,
		fetcher:        fetcher,
		pollInterval:   pollInterval,
		reconnectDelay: reconnectDelay,
	}
}

// SetActive transitions the session. Activation resets the store to the
// all-unknown default, then starts the poll manager for an immediate
// bootstrap and the push manager for the continuous feed. Deactivation
// stops both managers and wipes the store so no stale information survives
// into a locked view. Redundant transitions are no-ops.
func (g *Gate) SetActive(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if active == g.active {
		return
	}
	g.active = active

	if !active {
		if g.push != nil {
			g.push.Stop()
		}
		if g.poll != nil {
			g.poll.Stop()
		}
		g.push = nil
		g.poll = nil
		g.store.Reset()
		return
	}

	g.store.Reset()
	g.poll = NewPoll(g.fetcher, g.pollInterval, g.store, logging.NewLogger("poll"))
	g.push = NewPush(g.wsURL, g.reconnectDelay, g.store, logging.NewLogger("push"))
	g.poll.Start()
	g.push.Start()
}

// Active reports whether a session is running.
func (g *Gate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Lifecycles returns the current state of the push and poll channels, idle
// when no session is running.
func (g *Gate) Lifecycles() (push, poll Lifecycle) {
	g.mu.Lock()
	p, q := g.push, g.poll
	g.mu.Unlock()

	push, poll = LifecycleIdle, LifecycleIdle
	if p != nil {
		push = p.Lifecycle()
	}
	if q != nil {
		poll = q.Lifecycle()
	}
	return push, poll
}
