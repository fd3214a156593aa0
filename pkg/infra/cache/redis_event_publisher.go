package cache

import (
	"context"
	"encoding/json"

	"github.com/digitalshield/shield/pkg/infra/cache/channel"
	"github.com/digitalshield/shield/pkg/infra/cache/event"
)

type redisEventPublisher struct {
	client *Client
}

func NewRedisEventPublisher(client *Client) EventPublisher {
	return &redisEventPublisher{client: client}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ch channel.Channel, ev event.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	envelope := RedisMessage{
		Type:  ev.Type(),
		Event: b,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return p.client.Redis().Publish(ctx, string(ch), data).Err()
}
