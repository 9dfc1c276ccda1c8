// Package realtime implements the mutation-notification fan-out channel: a
// websocket hub that rebroadcasts named events from any connected client to
// every connected client. It is a best-effort notification layer, not a
// source of truth; disconnected clients miss events and re-fetch over HTTP.
package realtime

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/api/metrics"
)

const clientSendBuffer = 16

// Notice is the frame broadcast to every connected client.
type Notice struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Relay replicates local broadcasts to sibling instances (Redis pub/sub in
// production). A nil relay leaves the hub fully functional on one instance.
type Relay interface {
	Publish(ctx context.Context, n Notice) error
}

// Hub owns the set of connected clients. All membership changes and
// broadcasts flow through its run loop, so no locking is needed.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Notice
	clients    map[*Client]struct{}
	relay      Relay
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Notice, 64),
		clients:    make(map[*Client]struct{}),
		log:        log,
	}
}

// SetRelay attaches the cross-instance relay. Must be called before Run.
func (h *Hub) SetRelay(r Relay) {
	h.relay = r
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// closes every remaining client connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			metrics.ConnectedClients.Inc()
			h.log.Debug().Int("clients", len(h.clients)).Msg("realtime client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case n := <-h.broadcast:
			metrics.BroadcastsTotal.WithLabelValues(n.Event).Inc()
			for c := range h.clients {
				select {
				case c.send <- n:
				default:
					// Full send buffer means the client stopped reading;
					// evict it rather than stall every other viewer.
					h.drop(c)
				}
			}
		}
	}
}

// Broadcast fans a notice out to all locally connected clients, the sender
// included. The call never blocks the caller beyond the channel buffer.
func (h *Hub) Broadcast(n Notice) {
	h.broadcast <- n
}

// Emit broadcasts locally and, when a relay is attached, publishes the
// notice for sibling instances. Relay failures are logged and swallowed:
// the layer is fire-and-forget by contract.
func (h *Hub) Emit(ctx context.Context, n Notice) {
	h.Broadcast(n)
	if h.relay != nil {
		if err := h.relay.Publish(ctx, n); err != nil {
			h.log.Warn().Err(err).Str("event", n.Event).Msg("relay publish failed")
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	metrics.ConnectedClients.Dec()
}
