package http

import (
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type generateSaferVersionHandler struct {
	logger   *logrus.Logger
	pipeline *appAnalysis.Pipeline
}

func NewGenerateSaferVersionHandler(logger *logrus.Logger, pipeline *appAnalysis.Pipeline) Handler {
	return &generateSaferVersionHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (h *generateSaferVersionHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	safer, err := h.pipeline.GenerateSaferVersion(c.Context(), sessionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saferVersion": safer})
}
