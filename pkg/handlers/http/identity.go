package http

import (
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
)

// IdentityHeader carries the submitting identity, set by the authenticating
// layer in front of this service. Authentication itself is out of scope here.
const IdentityHeader = "X-User-ID"

func ownerID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := c.Get(IdentityHeader)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
