// Package server exposes the simulation over a websocket bridge:
// periodic world snapshots out, run-control commands back in. The
// simulation itself never runs on server goroutines; commands queue on
// a channel the stepping loop drains between ticks.
package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/chuch3/sparrow/config"
)

// Command is a run-control request from a connected viewer.
type Command int

const (
	CommandPause Command = iota
	CommandResume
	CommandFastForward
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Server broadcasts snapshots to all connected websocket clients and
// collects their commands.
type Server struct {
	cfg config.ServerConfig
	sim config.SimulationConfig

	clients   map[*client]struct{}
	clientsMu sync.Mutex

	snapshots chan Snapshot
	commands  chan Command
}

// New builds a server from the loaded config. Run starts it.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg:       cfg.Server,
		sim:       cfg.Simulation,
		clients:   make(map[*client]struct{}),
		snapshots: make(chan Snapshot, 4),
		commands:  make(chan Command, 16),
	}
}

// Commands returns the channel the stepping loop drains to apply
// viewer requests.
func (s *Server) Commands() <-chan Command { return s.commands }

// Publish queues a snapshot for broadcast. It never blocks the
// stepping loop; if broadcasting falls behind, the oldest queued
// snapshot is dropped.
func (s *Server) Publish(snap Snapshot) {
	for {
		select {
		case s.snapshots <- snap:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}

// Run starts the broadcast loop and serves websocket connections on
// the configured address. It blocks until the listener fails.
func (s *Server) Run() error {
	go s.broadcast()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	slog.Info("snapshot server listening", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, mux)
}

// broadcast fans queued snapshots out to every client, dropping
// clients whose sends fail.
func (s *Server) broadcast() {
	for snap := range s.snapshots {
		s.clientsMu.Lock()
		list := make([]*client, 0, len(s.clients))
		for c := range s.clients {
			list = append(list, c)
		}
		s.clientsMu.Unlock()

		for _, c := range list {
			if err := c.send(snap); err != nil {
				slog.Warn("client send failed", "error", err)
				s.clientsMu.Lock()
				delete(s.clients, c)
				s.clientsMu.Unlock()
				c.conn.Close()
			}
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn}
	s.clientsMu.Lock()
	s.clients[c] = struct{}{}
	s.clientsMu.Unlock()

	_ = c.send(map[string]interface{}{
		"type":              "config",
		"generation_length": s.sim.GenerationLength,
	})

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		cmd, ok := parseCommand(msg)
		if !ok {
			continue
		}
		select {
		case s.commands <- cmd:
		default:
			// A full queue means the loop is busy; the viewer can retry.
		}
	}

	s.clientsMu.Lock()
	delete(s.clients, c)
	s.clientsMu.Unlock()
	conn.Close()
}

// parseCommand maps an incoming message to a Command.
func parseCommand(msg map[string]interface{}) (Command, bool) {
	t, _ := msg["type"].(string)
	switch t {
	case "pause":
		return CommandPause, true
	case "resume":
		return CommandResume, true
	case "fast_forward":
		return CommandFastForward, true
	default:
		return 0, false
	}
}
