// Package server exposes a running match as a read-only websocket feed.
// Spectators receive every protocol message the game emits; nothing they
// send ever reaches the engine.
package server

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub fans match events out to the connected spectator clients.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu       sync.RWMutex
	lastSeen [][]byte // messages replayed to late joiners
	log      *logrus.Logger
}

// NewHub creates a hub. Run must be started on its own goroutine.
func NewHub(logger *logrus.Logger) *Hub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        logger,
	}
}

// Broadcast queues a message for every connected spectator. It satisfies
// game.EventSink.
func (h *Hub) Broadcast(message []byte) {
	h.broadcast <- message
}

// Run processes registrations and broadcasts until Close.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.WithField("clients", len(h.clients)).Debug("spectator joined")
			// Catch the newcomer up on everything so far.
			h.mu.RLock()
			for _, msg := range h.lastSeen {
				client.trySend(msg)
			}
			h.mu.RUnlock()

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.log.WithField("clients", len(h.clients)).Debug("spectator left")

		case message := <-h.broadcast:
			h.mu.Lock()
			h.lastSeen = append(h.lastSeen, message)
			h.mu.Unlock()
			for client := range h.clients {
				if !client.trySend(message) {
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}
