package http

import (
	"github.com/digitalshield/shield/pkg/domain/tip"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listSafetyTipsHandler struct {
	logger *logrus.Logger
	repo   tip.Repository
}

func NewListSafetyTipsHandler(logger *logrus.Logger, repo tip.Repository) Handler {
	return &listSafetyTipsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listSafetyTipsHandler) Handle(c *fiber.Ctx) error {
	tips, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list safety tips")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tips)
}
