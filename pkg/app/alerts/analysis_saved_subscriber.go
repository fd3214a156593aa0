package alerts

import (
	"context"

	"github.com/digitalshield/shield/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

// AnalysisSavedSubscriber bridges persisted-analysis insert events from the
// redis listener into the in-process hub.
type AnalysisSavedSubscriber struct {
	logger *logrus.Logger
	hub    *Hub
}

func NewAnalysisSavedSubscriber(logger *logrus.Logger, hub *Hub) *AnalysisSavedSubscriber {
	return &AnalysisSavedSubscriber{logger: logger, hub: hub}
}

func (s *AnalysisSavedSubscriber) OnEvent(ctx context.Context, ev event.AnalysisSavedEvent) error {
	s.hub.NotifyAnalysisSaved(ev)
	return nil
}
