package http

import (
	"github.com/digitalshield/shield/pkg/domain/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listAnalysesHandler struct {
	logger *logrus.Logger
	repo   analysis.Repository
}

func NewListAnalysesHandler(logger *logrus.Logger, repo analysis.Repository) Handler {
	return &listAnalysesHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listAnalysesHandler) Handle(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "identity required"})
	}

	records, err := h.repo.ListByOwner(c.Context(), owner)
	if err != nil {
		h.logger.WithError(err).Error("failed to list analysis records")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(records)
}
