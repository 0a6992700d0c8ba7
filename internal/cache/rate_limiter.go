package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter keyed per client.
type RateLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

type rateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) RateLimiter {
	return &rateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *rateLimiter) key(clientID string) string {
	return fmt.Sprintf("ratelimit:%s", clientID)
}

func (l *rateLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := l.key(clientID)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in the window sets its expiry.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.limit), nil
}
