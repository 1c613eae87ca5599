package mockd

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// hub tracks the connected websocket clients and broadcasts state
// envelopes to all of them.
type hub struct {
	log *logrus.Entry

	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func newHub(log *logrus.Entry) *hub {
	return &hub{
		log:   log,
		conns: make(map[string]*websocket.Conn),
	}
}

// add registers a connection and returns its id for later removal.
func (h *hub) add(conn *websocket.Conn) string {
	id := uuid.New().String()
	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()
	h.log.WithField("conn", id).Debug("client connected")
	return id
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	conn, ok := h.conns[id]
	if ok {
		delete(h.conns, id)
	}
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
		h.log.WithField("conn", id).Debug("client disconnected")
	}
}

// broadcast sends message to every client. Clients whose write fails are
// dropped from the hub.
func (h *hub) broadcast(message any) {
	h.mu.Lock()
	targets := make(map[string]*websocket.Conn, len(h.conns))
	for id, conn := range h.conns {
		targets[id] = conn
	}
	h.mu.Unlock()

	for id, conn := range targets {
		if err := conn.WriteJSON(message); err != nil {
			h.log.WithField("conn", id).WithError(err).Debug("dropping client")
			h.remove(id)
		}
	}
}
