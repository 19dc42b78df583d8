package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is what subscribers receive when a collection changes.
type Event struct {
	Collection string      `json:"collection"`
	Action     string      `json:"action"` // "created", "updated", "deleted"
	ID         uint        `json:"id"`
	Data       interface{} `json:"data,omitempty"`
}

type Client struct {
	Topic string
	Conn  *websocket.Conn
}

// Hub fans collection-change events out to websocket subscribers, keyed
// by topic (collection name). It replaces per-view database polling for
// the live screens.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.Topic] == nil {
		h.clients[c.Topic] = make(map[*Client]struct{})
	}
	h.clients[c.Topic][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.Topic]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Topic)
		}
	}
	h.mu.Unlock()
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

// Broadcast sends the event to every subscriber of its collection topic.
// Write errors are ignored; a dead connection is cleaned up when its
// reader loop unregisters it.
func (h *Hub) Broadcast(ev Event) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[ev.Collection] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// Subscribers reports how many clients watch a topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}
