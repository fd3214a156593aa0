package http

import (
	"github.com/digitalshield/shield/pkg/domain/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// reviewQueueHandler lists records above the moderation threshold. This
// threshold is configured independently from the fixed alerting threshold.
type reviewQueueHandler struct {
	logger    *logrus.Logger
	repo      analysis.Repository
	threshold int
}

func NewReviewQueueHandler(logger *logrus.Logger, repo analysis.Repository, threshold int) Handler {
	return &reviewQueueHandler{
		logger:    logger,
		repo:      repo,
		threshold: threshold,
	}
}

func (h *reviewQueueHandler) Handle(c *fiber.Ctx) error {
	records, err := h.repo.ListFlagged(c.Context(), h.threshold)
	if err != nil {
		h.logger.WithError(err).Error("failed to list flagged analysis records")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"threshold": h.threshold,
		"records":   records,
	})
}
