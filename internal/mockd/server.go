package mockd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/toolcrib/cellmon/internal/backend"
	"github.com/toolcrib/cellmon/internal/cell"
)

// Server is the development backend. It serves the same HTTP and websocket
// surface as the production backend, with POST /mock/{cell_id}/{state}
// standing in for the hardware sensors.
type Server struct {
	cells *registry
	hub   *hub
	log   *logrus.Entry

	upgrader websocket.Upgrader
}

// NewServer builds a mock backend with every cell unknown.
func NewServer(log *logrus.Entry) *Server {
	return &Server{
		cells: newRegistry(),
		hub:   newHub(log),
		log:   log,
		upgrader: websocket.Upgrader{
			// Development tool: any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router returns the HTTP handler for the mock backend.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/mock/{cell_id}/{state}", s.handleMock).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWS)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"cells": s.cells.snapshotRaw()})
}

func (s *Server) handleMock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	door := cell.DoorState(vars["state"])
	if door != cell.DoorOpen && door != cell.DoorClosed {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "state must be open or closed"})
		return
	}

	index, err := strconv.Atoi(vars["cell_id"])
	ids := cell.KnownIDs()
	if err != nil || index < 1 || index > len(ids) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cell_id out of range"})
		return
	}
	id := ids[index-1]

	changed, _ := s.cells.set(id, door)
	if changed {
		raw := "mock:" + string(id) + ":" + string(door)
		s.hub.broadcast(backend.Envelope{
			Type: backend.EnvelopeTypeState,
			Data: backend.EnvelopeData{Cells: s.cells.snapshotRaw(), Raw: &raw},
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "changed": changed})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Debug("websocket upgrade failed")
		return
	}

	id := s.hub.add(conn)
	defer s.hub.remove(id)

	// Initial full snapshot, untagged.
	if err := conn.WriteJSON(backend.Envelope{
		Type: backend.EnvelopeTypeState,
		Data: backend.EnvelopeData{Cells: s.cells.snapshotRaw()},
	}); err != nil {
		return
	}

	// Clients are not expected to send anything; the read loop only keeps
	// the connection alive and notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
