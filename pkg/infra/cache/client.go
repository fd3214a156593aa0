package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Client wraps the redis connection used for cross-process event delivery.
type Client struct {
	redis *redis.Client
}

func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{redis: rdb}, nil
}

func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{redis: rdb}
}

func (c *Client) Redis() *redis.Client {
	return c.redis
}

func (c *Client) Close() error {
	return c.redis.Close()
}
