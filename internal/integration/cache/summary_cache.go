// Package cache provides Redis-backed caching for derived data.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khazna-app/backend/internal/application/adapter"
)

// redisSummaryCache implements the adapter.SummaryCache interface.
type redisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &redisSummaryCache{client: client}
}

// Get returns the cached summary, or "" when the key is absent.
func (c *redisSummaryCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read summary cache: %w", err)
	}
	return value, nil
}

// Set stores a summary under key for ttl.
func (c *redisSummaryCache) Set(ctx context.Context, key, summary string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, summary, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}
