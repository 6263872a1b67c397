package events

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const (
	sendBuffer = 256
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Hub pushes events to websocket clients watching a campaign. A client
// that cannot keep up is dropped rather than slowing the publisher.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[domain.Address]map[*client]struct{}
}

type client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	campaign domain.Address
}

var _ port.EventPublisher = (*Hub)(nil)

// NewHub creates a hub accepting browser connections from allowedOrigins.
// With no origins only same-host pages may connect; "*" allows any origin.
func NewHub(logger *slog.Logger, allowedOrigins ...string) *Hub {
	return &Hub{
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
		clients:  map[domain.Address]map[*client]struct{}{},
	}
}

// originChecker returns nil, the upgrader's same-origin check, when
// allowed is empty. Requests without an Origin header are not from a
// browser and always pass.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}

// ServeWS upgrades the request and subscribes the connection to campaign.
// The caller has already checked that the campaign exists.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, campaign domain.Address) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade: %w", err)
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), campaign: campaign}
	h.register(c)
	go c.writePump()
	go c.readPump()
	return nil
}

// Subscribers returns how many clients watch campaign.
func (h *Hub) Subscribers(campaign domain.Address) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[campaign])
}

func (h *Hub) Publish(_ context.Context, e domain.Event) error {
	h.mu.RLock()
	watching := len(h.clients[e.Campaign()])
	h.mu.RUnlock()
	if watching == 0 {
		return nil
	}
	msg, err := encode(e)
	if err != nil {
		return fmt.Errorf("encode %s: %w", e.Type(), err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[e.Campaign()] {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("dropping slow websocket client", slog.String("campaign", c.campaign.String()))
			h.removeLocked(c)
		}
	}
	return nil
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.clients {
		for c := range set {
			h.removeLocked(c)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.campaign]
	if !ok {
		set = map[*client]struct{}{}
		h.clients[c.campaign] = set
	}
	set[c] = struct{}{}
	h.logger.Debug("websocket client registered", slog.String("campaign", c.campaign.String()))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked closes c's send channel exactly once; h.mu must be held.
func (h *Hub) removeLocked(c *client) {
	set := h.clients[c.campaign]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.campaign)
	}
	close(c.send)
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages; it exists to notice disconnects and
// answer pongs.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("websocket read", slog.Any("error", err))
			}
			return
		}
	}
}
