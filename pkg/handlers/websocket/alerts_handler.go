package websocket

import (
	"github.com/digitalshield/shield/pkg/app/alerts"
	httpHandlers "github.com/digitalshield/shield/pkg/handlers/http"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type alertsHandler struct {
	logger *logrus.Logger
	hub    *alerts.Hub
}

func NewAlertsHandler(logger *logrus.Logger, hub *alerts.Hub) Handler {
	return &alertsHandler{
		logger: logger,
		hub:    hub,
	}
}

// Handle bridges a hub subscription to a websocket connection. The
// subscription lives exactly as long as the connection: every exit path
// unsubscribes, and a closed subscription channel ends the connection.
func (h *alertsHandler) Handle(c *websocket.Conn) {
	ownerID, err := connOwnerID(c)
	if err != nil {
		h.logger.WithError(err).Warn("websocket connection rejected: missing identity")
		_ = c.WriteJSON(map[string]string{"error": "a valid X-User-ID header or user_id query parameter is required"})
		_ = c.Close()
		return
	}

	sub := h.hub.Subscribe(ownerID)
	defer sub.Unsubscribe()

	h.logger.WithField("owner_id", ownerID).Debug("alert stream opened")

	// The read loop exists only to observe the peer closing; inbound
	// messages carry no meaning on this endpoint.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case evt, ok := <-sub.C():
			if !ok {
				return
			}
			if err := c.WriteJSON(evt); err != nil {
				h.logger.WithError(err).WithField("owner_id", ownerID).Debug("websocket write failed, closing alert stream")
				return
			}
		case <-done:
			return
		}
	}
}

// connOwnerID resolves the subscriber identity from the upgrade request. The
// header the HTTP API authenticates with wins; the user_id query parameter is
// the fallback for clients that cannot set headers on the upgrade.
func connOwnerID(c *websocket.Conn) (uuid.UUID, error) {
	return resolveOwnerID(c.Headers(httpHandlers.IdentityHeader), c.Query("user_id"))
}

func resolveOwnerID(header, query string) (uuid.UUID, error) {
	if header != "" {
		return uuid.Parse(header)
	}
	return uuid.Parse(query)
}
