package http

import (
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type generateAdviceHandler struct {
	logger   *logrus.Logger
	pipeline *appAnalysis.Pipeline
}

func NewGenerateAdviceHandler(logger *logrus.Logger, pipeline *appAnalysis.Pipeline) Handler {
	return &generateAdviceHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (h *generateAdviceHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	advice, err := h.pipeline.GenerateAdvice(c.Context(), sessionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"advice": advice})
}
