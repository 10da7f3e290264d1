package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"boerenbridge/internal/protocol"
)

const sendBufferSize = 256

// Hub fans game events out to every connected spectator and remembers the
// latest table snapshot for the HTTP API.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	clientMu   sync.RWMutex
	stateMu    sync.RWMutex
	state      json.RawMessage
	logger     *slog.Logger
}

// NewHub creates a new Hub instance. Run must be called to serve clients.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, sendBufferSize),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the Hub's main loop and blocks until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.clientMu.Lock()
		for client := range h.clients {
			delete(h.clients, client)
			close(client.send)
		}
		h.clientMu.Unlock()
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()
			h.logger.Info("spectator connected", slog.String("client", client.ID), slog.String("addr", client.conn.RemoteAddr().String()))

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			h.clientMu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow spectators are dropped rather than stalling the game.
					delete(h.clients, client)
					close(client.send)
					h.logger.Warn("spectator too slow, dropped", slog.String("client", client.ID))
				}
			}
			h.clientMu.Unlock()
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.clientMu.Lock()
	defer h.clientMu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Info("spectator disconnected", slog.String("client", client.ID))
	}
}

// Publish encodes an event and queues it for every spectator. It never
// blocks the game: events are dropped when the queue is full.
func (h *Hub) Publish(eventType string, payload any) {
	raw, err := protocol.EncodePayload(payload)
	if err != nil {
		h.logger.Error("encode event", slog.String("type", eventType), slog.Any("err", err))
		return
	}
	msg, err := json.Marshal(protocol.Message{Type: eventType, Payload: raw})
	if err != nil {
		h.logger.Error("encode event", slog.String("type", eventType), slog.Any("err", err))
		return
	}
	if eventType == protocol.TypeGameState && raw != nil {
		h.stateMu.Lock()
		h.state = raw
		h.stateMu.Unlock()
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("broadcast queue full, event dropped", slog.String("type", eventType))
	}
}

// State returns the latest game_state payload, if any was published.
func (h *Hub) State() (json.RawMessage, bool) {
	h.stateMu.RLock()
	defer h.stateMu.RUnlock()
	return h.state, h.state != nil
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	return len(h.clients)
}
