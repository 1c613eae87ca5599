package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolcrib/cellmon/internal/cell"
	"github.com/toolcrib/cellmon/internal/logging"
	"github.com/toolcrib/cellmon/internal/state"
)

var testUpgrader = websocket.Upgrader{}

// wsServer upgrades every request and forwards frames from send to the
// client until the test closes send.
func wsServer(t *testing.T, send chan string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		for frame := range send {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func TestPush_AppliesStateFrame(t *testing.T) {
	send := make(chan string, 4)
	url := wsServer(t, send)

	store := state.New()
	push := NewPush(url, 50*time.Millisecond, store, logging.NewLogger("push-test"))
	push.Start()
	t.Cleanup(push.Stop)

	send <- `{"type":"state","data":{"cells":{"Door_1":{"door":"open","cycle":"returned"}},"raw":"sensor-ok"}}`

	require.Eventually(t, func() bool {
		return store.Current().Cells["Door_1"].Door == cell.DoorOpen
	}, 2*time.Second, 10*time.Millisecond, "push frame never reached the store")

	view := store.Current()
	assert.Equal(t, cell.Status{Door: cell.DoorOpen, Cycle: cell.CycleReturned}, view.Cells["Door_1"])
	assert.True(t, view.HasDiagnostic)
	assert.Equal(t, "sensor-ok", view.Diagnostic)
	for _, id := range cell.KnownIDs() {
		if id == "Door_1" {
			continue
		}
		assert.Equal(t, cell.UnknownStatus, view.Cells[id], "cell %s", id)
	}
	assert.Equal(t, LifecycleActive, push.Lifecycle())
}

func TestPush_MalformedFrameIsDroppedSilently(t *testing.T) {
	store := state.New()
	snap := cell.NewSnapshot()
	snap["Door_1"] = cell.Status{Door: cell.DoorOpen, Cycle: cell.CycleReturned}
	diag := "sensor-ok"
	store.Replace(snap, &diag)

	push := NewPush("ws://unused.invalid/ws", time.Second, store, logging.NewLogger("push-test"))
	push.mu.Lock()
	push.live = true
	push.lifecycle = LifecycleActive
	push.mu.Unlock()

	for _, frame := range []string{
		"not json",
		`{"type":"ping","data":{"cells":{}}}`,
		`{"type":"state","data":{}}`,
	} {
		push.handleFrame([]byte(frame))
	}

	view := store.Current()
	assert.Equal(t, cell.DoorOpen, view.Cells["Door_1"].Door, "store changed by malformed frame")
	assert.Equal(t, "sensor-ok", view.Diagnostic)
	assert.Equal(t, LifecycleActive, push.Lifecycle(), "malformed frame must not touch the connection state")
}

func TestPush_ReconnectsOnDropAtFixedDelay(t *testing.T) {
	var mu sync.Mutex
	var dials []time.Time

	// Every connection is accepted and dropped immediately.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		dials = append(dials, time.Now())
		mu.Unlock()
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Close()
	}))
	t.Cleanup(server.Close)

	delay := 100 * time.Millisecond
	store := state.New()
	push := NewPush("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", delay, store, logging.NewLogger("push-test"))
	push.Start()
	t.Cleanup(push.Stop)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(dials) >= 3
	}, 3*time.Second, 10*time.Millisecond, "push did not keep retrying")

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < 3; i++ {
		gap := dials[i].Sub(dials[i-1])
		assert.GreaterOrEqual(t, gap, delay-5*time.Millisecond,
			"reconnect %d fired after %v, want >= %v", i, gap, delay)
	}
}

func TestPush_RepeatedDropsArmOnlyOneTimer(t *testing.T) {
	store := state.New()
	push := NewPush("ws://unused.invalid/ws", time.Hour, store, logging.NewLogger("push-test"))
	push.mu.Lock()
	push.live = true
	push.lifecycle = LifecycleActive
	push.mu.Unlock()

	push.scheduleRetry()
	push.mu.Lock()
	first := push.retry
	push.mu.Unlock()
	require.NotNil(t, first)

	push.scheduleRetry()
	push.mu.Lock()
	second := push.retry
	push.mu.Unlock()
	assert.Same(t, first, second, "second drop armed a second timer")
	assert.Equal(t, LifecycleRetrying, push.Lifecycle())

	push.Stop()
	push.mu.Lock()
	assert.Nil(t, push.retry, "Stop must cancel the pending timer")
	push.mu.Unlock()
}

func TestPush_StopPreventsLateStoreWrites(t *testing.T) {
	store := state.New()
	push := NewPush("ws://unused.invalid/ws", time.Second, store, logging.NewLogger("push-test"))
	push.mu.Lock()
	push.live = true
	push.lifecycle = LifecycleActive
	push.mu.Unlock()

	push.Stop()

	// A frame completing after teardown must no-op.
	push.handleFrame([]byte(`{"type":"state","data":{"cells":{"Door_1":{"door":"open","cycle":"taken"}}}}`))

	assert.Equal(t, cell.UnknownStatus, store.Current().Cells["Door_1"])
	assert.Equal(t, LifecycleStopped, push.Lifecycle())
}

func TestPush_StartAfterStopIsNoop(t *testing.T) {
	store := state.New()
	push := NewPush("ws://unused.invalid/ws", time.Second, store, logging.NewLogger("push-test"))
	push.Stop()
	push.Start()
	assert.Equal(t, LifecycleStopped, push.Lifecycle())
}
