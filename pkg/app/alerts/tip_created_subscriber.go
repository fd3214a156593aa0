package alerts

import (
	"context"

	"github.com/digitalshield/shield/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type SafetyTipCreatedSubscriber struct {
	logger *logrus.Logger
	hub    *Hub
}

func NewSafetyTipCreatedSubscriber(logger *logrus.Logger, hub *Hub) *SafetyTipCreatedSubscriber {
	return &SafetyTipCreatedSubscriber{logger: logger, hub: hub}
}

func (s *SafetyTipCreatedSubscriber) OnEvent(ctx context.Context, ev event.SafetyTipCreatedEvent) error {
	s.hub.NotifySafetyTipCreated(ev)
	return nil
}
