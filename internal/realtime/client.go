package realtime

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxFrameLength = 512
)

// Client is one websocket connection attached to the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Notice
}

// ServeConn registers the connection with the hub and runs its read and
// write pumps. It returns once the connection is gone.
func ServeConn(hub *Hub, conn *websocket.Conn) {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan Notice, clientSendBuffer),
	}
	hub.register <- c

	go c.writePump()
	c.readPump()
}

// readPump consumes incoming frames. Each text frame carries a bare event
// name; known names are resolved against the catalog and rebroadcast to all
// connected clients, unknown names are dropped.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameLength)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug().Err(err).Msg("realtime client read error")
			}
			return
		}

		event := strings.TrimSpace(string(raw))
		msg, ok := Message(event)
		if !ok {
			c.hub.log.Debug().Str("event", event).Msg("unknown realtime event dropped")
			continue
		}

		c.hub.Emit(context.Background(), Notice{Event: event, Message: msg})
	}
}

// writePump pushes broadcasts to the peer and keeps the connection alive
// with periodic pings. It exits when the hub closes the send channel.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case n, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(n); err != nil {
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
