package http

import (
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type saveAnalysisHandler struct {
	logger   *logrus.Logger
	pipeline *appAnalysis.Pipeline
}

func NewSaveAnalysisHandler(logger *logrus.Logger, pipeline *appAnalysis.Pipeline) Handler {
	return &saveAnalysisHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (h *saveAnalysisHandler) Handle(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "you need to be logged in to save history"})
	}

	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	record, err := h.pipeline.Save(c.Context(), sessionID, owner)
	if err != nil {
		h.logger.WithError(err).Error("failed to save analysis record")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
