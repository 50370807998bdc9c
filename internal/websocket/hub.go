package websocket

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/pkg/logger"
)

const (
	// Pending frames per client before it is considered too slow.
	sendBufferSize = 64

	broadcastBufferSize = 256
)

// Hub fans post events out to every connected feed client.
type Hub struct {
	clients map[*Client]struct{}
	stopped bool

	broadcast chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan []byte, broadcastBufferSize),
	}
}

// Run delivers broadcasts until ctx is cancelled, then closes every client.
// Registrations are refused once Run has returned.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logger.Info("Post feed hub stopped")
			return

		case message := <-h.broadcast:
			h.mu.RLock()
			var slow []*Client
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					slow = append(slow, client)
				}
			}
			h.mu.RUnlock()

			for _, client := range slow {
				logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
					"client_id": client.id,
				})
				h.remove(client)
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	remaining := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}

	logger.Info("Feed client unregistered", map[string]interface{}{
		"client_id":         client.id,
		"remaining_clients": remaining,
	})
}

// Publish queues an event for every client. It never blocks: when the
// broadcast queue is full the event is dropped.
func (h *Hub) Publish(event model.PostEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal post event", err, map[string]interface{}{
			"type":    event.Type,
			"post_id": event.PostID,
		})
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Broadcast channel full, event dropped", map[string]interface{}{
			"type":    event.Type,
			"post_id": event.PostID,
		})
	}
}

// Register adds the client to the feed. When the hub has stopped the
// client's connection is closed and false is returned.
func (h *Hub) Register(client *Client) bool {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		if client.conn != nil {
			client.conn.Close()
		}
		logger.Warn("Feed hub stopped, registration refused", map[string]interface{}{
			"client_id": client.id,
		})
		return false
	}
	h.clients[client] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	logger.Info("Feed client registered", map[string]interface{}{
		"client_id":     client.id,
		"total_clients": total,
	})
	return true
}

// Unregister removes the client and closes its send channel. Safe to call
// more than once and after Run has returned.
func (h *Hub) Unregister(client *Client) {
	h.remove(client)
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
