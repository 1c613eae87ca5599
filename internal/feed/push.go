package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/toolcrib/cellmon/internal/backend"
	"github.com/toolcrib/cellmon/internal/cell"
	"github.com/toolcrib/cellmon/internal/state"
)

// Push owns the persistent websocket connection to the backend. It moves
// through idle, connecting, active, retrying and stopped; a drop schedules
// exactly one reconnect attempt after a fixed delay, with no backoff growth
// and no retry cap. A Push is single-use: the session gate builds a fresh
// one for every activation.
type Push struct {
	url   string
	delay time.Duration
	store *state.Store
	log   *logrus.Entry
	dial  *websocket.Dialer

	mu        sync.Mutex
	lifecycle Lifecycle
	live      bool
	started   bool
	conn      *websocket.Conn
	retry     *time.Timer
}

// NewPush builds a push manager for the given websocket URL. delay is the
// fixed reconnect interval.
func NewPush(url string, delay time.Duration, store *state.Store, log *logrus.Entry) *Push {
	return &Push{
		url:   url,
		delay: delay,
		store: store,
		log:   log,
		dial: &websocket.Dialer{
			HandshakeTimeout: 5 * time.Second,
		},
		lifecycle: LifecycleIdle,
	}
}

// Start opens the connection asynchronously. Calling Start more than once,
// or after Stop, is a no-op.
func (p *Push) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.lifecycle == LifecycleStopped {
		return
	}
	p.started = true
	p.live = true
	p.lifecycle = LifecycleConnecting
	go p.connect()
}

// Stop tears the channel down: the pending reconnect timer is cancelled and
// the connection closed. Any callback that fires afterwards observes the
// cleared liveness flag and no-ops, so nothing mutates the store after Stop
// returns.
func (p *Push) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.live = false
	p.lifecycle = LifecycleStopped
	if p.retry != nil {
		p.retry.Stop()
		p.retry = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Lifecycle returns the channel's current state.
func (p *Push) Lifecycle() Lifecycle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lifecycle
}

func (p *Push) connect() {
	conn, _, err := p.dial.Dial(p.url, nil)
	if err != nil {
		p.log.WithError(err).Debug("websocket dial failed")
		p.scheduleRetry()
		return
	}

	p.mu.Lock()
	if !p.live {
		p.mu.Unlock()
		_ = conn.Close()
		return
	}
	p.conn = conn
	p.lifecycle = LifecycleActive
	p.mu.Unlock()

	p.log.Debug("websocket connected")
	p.readLoop(conn)
}

func (p *Push) readLoop(conn *websocket.Conn) {
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			p.log.WithError(err).Debug("websocket read ended")
			p.scheduleRetry()
			return
		}
		p.handleFrame(frame)
	}
}

// handleFrame applies one inbound frame. A frame that is not valid JSON or
// does not match the state envelope is dropped without touching the
// connection; that is a payload problem, not a transport one.
func (p *Push) handleFrame(frame []byte) {
	env, ok := backend.DecodeEnvelope(frame)
	if !ok {
		p.log.WithField("bytes", len(frame)).Debug("dropped malformed frame")
		return
	}
	snap := cell.Normalize(env.Data.Cells)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	p.store.Replace(snap, env.Data.Raw)
}

// scheduleRetry arms a single reconnect timer. Repeated failure signals for
// the same drop never stack a second timer.
func (p *Push) scheduleRetry() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	if p.retry != nil {
		return
	}
	p.lifecycle = LifecycleRetrying
	p.retry = time.AfterFunc(p.delay, func() {
		p.mu.Lock()
		if !p.live {
			p.mu.Unlock()
			return
		}
		p.retry = nil
		p.lifecycle = LifecycleConnecting
		p.mu.Unlock()
		p.connect()
	})
}
