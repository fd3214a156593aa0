package http

import (
	"github.com/digitalshield/shield/pkg/domain/tip"
	"github.com/digitalshield/shield/pkg/handlers/http/request"
	infraCache "github.com/digitalshield/shield/pkg/infra/cache"
	"github.com/digitalshield/shield/pkg/infra/cache/channel"
	"github.com/digitalshield/shield/pkg/infra/cache/event"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createSafetyTipHandler struct {
	logger    *logrus.Logger
	repo      tip.Repository
	publisher infraCache.EventPublisher
}

func NewCreateSafetyTipHandler(
	logger *logrus.Logger,
	repo tip.Repository,
	publisher infraCache.EventPublisher,
) Handler {
	return &createSafetyTipHandler{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
	}
}

func (h *createSafetyTipHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateSafetyTipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity := tip.SafetyTip{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(c.Context(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to create safety tip")
		return errorResponse(c, err)
	}

	ev := event.SafetyTipCreatedEvent{TipID: entity.ID, Title: entity.Title}
	if err := h.publisher.Publish(c.Context(), channel.TipEventsChannel, ev); err != nil {
		h.logger.WithError(err).WithField("tip_id", entity.ID).Error("failed to publish safety tip event")
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
