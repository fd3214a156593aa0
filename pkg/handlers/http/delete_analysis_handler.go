package http

import (
	"github.com/digitalshield/shield/pkg/domain/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deleteAnalysisHandler struct {
	logger *logrus.Logger
	repo   analysis.Repository
}

func NewDeleteAnalysisHandler(logger *logrus.Logger, repo analysis.Repository) Handler {
	return &deleteAnalysisHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *deleteAnalysisHandler) Handle(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "identity required"})
	}

	recordID, err := uuid.Parse(c.Params("record_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record ID"})
	}

	if err := h.repo.Delete(c.Context(), recordID, owner); err != nil {
		h.logger.WithError(err).WithField("record_id", recordID).Error("failed to delete analysis record")
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
