package cache

import (
	"context"

	"github.com/digitalshield/shield/pkg/infra/cache/channel"
	"github.com/digitalshield/shield/pkg/infra/cache/event"
)

//go:generate mockery --name=EventPublisher --dir=. --output=./mocks --filename=event_publisher_mock.go --case=underscore

type EventPublisher interface {
	Publish(ctx context.Context, channel channel.Channel, ev event.Event) error
}
