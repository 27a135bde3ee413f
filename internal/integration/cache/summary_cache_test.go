package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisSummaryCache) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, &redisSummaryCache{client: client}
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:1", "الوضع المالي مستقر", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, err := cache.Get(ctx, "summary:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "الوضع المالي مستقر" {
		t.Errorf("expected cached summary, got %q", value)
	}
}

func TestSummaryCacheMissReturnsEmpty(t *testing.T) {
	_, cache := newTestCache(t)

	value, err := cache.Get(context.Background(), "summary:missing")
	if err != nil {
		t.Fatalf("expected a miss to not error, got %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value on miss, got %q", value)
	}
}

func TestSummaryCacheExpiry(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:ttl", "ملخص قديم", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	server.FastForward(2 * time.Minute)

	value, err := cache.Get(ctx, "summary:ttl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "" {
		t.Errorf("expected expired key to miss, got %q", value)
	}
}
