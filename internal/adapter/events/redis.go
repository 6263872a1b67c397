package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher fans events out over Redis pub/sub, so every service
// instance can forward them to its own websocket subscribers. Events go to
// the shared channel and to a per-campaign channel "<channel>:<address>".
type RedisPublisher struct {
	client  redisPublisher
	channel string
}

var _ port.EventPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, e domain.Event) error {
	payload, err := encode(e)
	if err != nil {
		return fmt.Errorf("encode %s: %w", e.Type(), err)
	}
	if err = p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel+":"+e.Campaign().String(), payload).Err()
}
