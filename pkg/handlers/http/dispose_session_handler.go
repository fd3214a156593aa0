package http

import (
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type disposeSessionHandler struct {
	logger   *logrus.Logger
	pipeline *appAnalysis.Pipeline
}

func NewDisposeSessionHandler(logger *logrus.Logger, pipeline *appAnalysis.Pipeline) Handler {
	return &disposeSessionHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (h *disposeSessionHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	h.pipeline.Dispose(sessionID)

	return c.SendStatus(fiber.StatusNoContent)
}
