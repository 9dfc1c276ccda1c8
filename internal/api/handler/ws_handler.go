package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/realtime"
)

// Origins are not restricted: the public site and the dashboard connect from
// arbitrary hosts, matching the API's open CORS policy.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// WSHandler upgrades HTTP requests to websocket connections on the fan-out hub.
type WSHandler struct {
	hub *realtime.Hub
	log zerolog.Logger
}

func NewWSHandler(hub *realtime.Hub, log zerolog.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

// Serve handles GET /ws.
func (h *WSHandler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return err
	}

	go realtime.ServeConn(h.hub, conn)
	return nil
}
