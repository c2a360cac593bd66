// Package realtime pushes sync notifications to browser clients over
// websockets. Clients are grouped by org and only see their org's events.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"performiq/internal/domain/service"
	"performiq/internal/errors"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	pingInterval = 30 * time.Second
)

// Message is the envelope written to every client.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type client struct {
	orgID uuid.UUID
	send  chan []byte
}

// Hub tracks connected clients and implements service.SyncNotifier.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	done    chan struct{}
	once    sync.Once
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*client]struct{}),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// NotifySync broadcasts event to the clients of its org. Slow clients miss
// the message rather than block the sync.
func (h *Hub) NotifySync(_ context.Context, event *service.SyncEvent) error {
	data, err := json.Marshal(Message{Type: string(event.Type), Data: event})
	if err != nil {
		return errors.WithStack(err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[event.OrgID] {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("Dropping sync notification for slow websocket client", slog.String("orgID", event.OrgID.String()))
		}
	}

	return nil
}

// Serve registers conn under orgID and pumps messages until the client
// disconnects, ctx ends or the hub closes.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, orgID uuid.UUID) error {
	c := &client{orgID: orgID, send: make(chan []byte, sendBuffer)}
	h.add(c)
	defer h.remove(c)

	// Clients never send anything meaningful; CloseRead handles control frames.
	ctx = conn.CloseRead(ctx)

	greeting, err := json.Marshal(Message{Type: "connected"})
	if err != nil {
		return errors.WithStack(err)
	}
	if err := write(ctx, conn, greeting); err != nil {
		return err
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.done:
			return errors.WithStack(conn.Close(websocket.StatusGoingAway, "server shutting down"))
		case msg := <-c.send:
			if err := write(ctx, conn, msg); err != nil {
				return err
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return errors.Wrap(err, "ping websocket client")
			}
		}
	}
}

// ClientCount reports how many clients of orgID are connected.
func (h *Hub) ClientCount(orgID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[orgID])
}

// Close disconnects every client. Safe to call more than once.
func (h *Hub) Close() error {
	h.once.Do(func() { close(h.done) })

	return nil
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.orgID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.orgID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.clients[c.orgID]
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.orgID)
	}
}

func write(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return errors.Wrap(conn.Write(ctx, websocket.MessageText, data), "write websocket message")
}
