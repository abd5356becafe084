// Package notify delivers task change events to connected push clients and,
// optionally, to sibling instances and downstream consumers.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/google/uuid"
)

// Mode selects who receives an event.
type Mode string

const (
	// ModeScoped delivers an event only to its audience.
	ModeScoped Mode = "scoped"
	// ModeBroadcast delivers every event to every connected client.
	ModeBroadcast Mode = "broadcast"
)

// ParseMode accepts "scoped" or "broadcast"; empty means scoped.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeScoped:
		return ModeScoped, nil
	case ModeBroadcast:
		return ModeBroadcast, nil
	}
	return "", fmt.Errorf("notify: unknown delivery mode %q", s)
}

// DefaultQueueSize is the per-client outbound buffer used when NewHub is
// given a non-positive size.
const DefaultQueueSize = 64

// Client is one joined push connection. Frames queued for it are read from
// Messages by a single writer, so they go out in the order they were queued.
type Client struct {
	ID     string
	UserID string

	send   chan tasksdk.PushMessage
	closed bool // guarded by Hub.mu
}

// Messages is closed when the client is unregistered.
func (c *Client) Messages() <-chan tasksdk.PushMessage { return c.send }

// Hub is the registry of joined clients keyed by user id.
type Hub struct {
	mode      Mode
	queueSize int

	mu      sync.RWMutex
	clients map[string]map[string]*Client // userID -> connID -> client
}

func NewHub(mode Mode, queueSize int) *Hub {
	if mode == "" {
		mode = ModeScoped
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		mode:      mode,
		queueSize: queueSize,
		clients:   make(map[string]map[string]*Client),
	}
}

func (h *Hub) Mode() Mode { return h.mode }

// Register adds a client for userID.
func (h *Hub) Register(userID string) *Client {
	c := &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		send:   make(chan tasksdk.PushMessage, h.queueSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[userID]
	if !ok {
		conns = make(map[string]*Client)
		h.clients[userID] = conns
	}
	conns[c.ID] = c
	return c
}

// Unregister removes c and closes its queue. Calling it twice is harmless.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)

	if conns, ok := h.clients[c.UserID]; ok {
		delete(conns, c.ID)
		if len(conns) == 0 {
			delete(h.clients, c.UserID)
		}
	}
}

// ClientCount returns the number of joined connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}

// Publish delivers e to the local clients. It never fails.
func (h *Hub) Publish(ctx context.Context, e domain.Event) error {
	h.Deliver(ctx, e.Audience, wire.Record(e).Push())
	return nil
}

// Deliver queues msg for the clients selected by the hub's mode and returns
// how many accepted it. A client whose queue is full misses the frame.
func (h *Hub) Deliver(ctx context.Context, audience []string, msg tasksdk.PushMessage) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	offer := func(c *Client) {
		select {
		case c.send <- msg:
			delivered++
		default:
			slogx.FromContext(ctx).Warn("push queue full, event dropped",
				slog.String("conn_id", c.ID),
				slog.String("user_id", c.UserID),
				slog.String("event", msg.Event),
			)
		}
	}

	if h.mode == ModeBroadcast {
		for _, conns := range h.clients {
			for _, c := range conns {
				offer(c)
			}
		}
		return delivered
	}

	seen := make(map[string]struct{}, len(audience))
	for _, userID := range audience {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		for _, c := range h.clients[userID] {
			offer(c)
		}
	}
	return delivered
}

// Close unregisters every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.clients {
		for _, c := range conns {
			h.removeLocked(c)
		}
	}
}

// sendTo queues msg for a single client.
func (h *Hub) sendTo(c *Client, msg tasksdk.PushMessage) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}
