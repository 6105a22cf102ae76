package cache

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisDayCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisDayCache(client), srv
}

func TestRedisDayCacheStoresRanges(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	_, version, ok := c.GetDays(ctx, "2025-03-01", "2025-03-31")
	if ok {
		t.Fatalf("expected miss on empty cache")
	}
	if version != 0 {
		t.Fatalf("expected initial version 0, got %d", version)
	}

	c.SetDays(ctx, version, "2025-03-01", "2025-03-31", []string{"2025-03-10", "2025-03-11"})
	days, _, ok := c.GetDays(ctx, "2025-03-01", "2025-03-31")
	if !ok {
		t.Fatalf("expected hit")
	}
	if !reflect.DeepEqual(days, []string{"2025-03-10", "2025-03-11"}) {
		t.Errorf("unexpected days %v", days)
	}
	if ttl := srv.TTL(daysKey(0, "2025-03-01", "2025-03-31")); ttl != daysTTL {
		t.Errorf("expected ttl %v, got %v", daysTTL, ttl)
	}
}

func TestRedisDayCacheInvalidateDropsAllRanges(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	c.SetDays(ctx, 0, "2025-03-01", "2025-03-31", []string{"2025-03-10"})
	c.SetDays(ctx, 0, "2025-04-01", "2025-04-30", []string{})
	srv.Set("unrelated", "keep")

	c.Invalidate(ctx)

	if _, _, ok := c.GetDays(ctx, "2025-03-01", "2025-03-31"); ok {
		t.Errorf("expected march range to be dropped")
	}
	if _, _, ok := c.GetDays(ctx, "2025-04-01", "2025-04-30"); ok {
		t.Errorf("expected april range to be dropped")
	}
	if !srv.Exists("unrelated") {
		t.Errorf("expected unrelated key to survive")
	}
}

func TestWriteAfterInvalidateIsNotServed(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	// A reader misses and queries the database while a mutation commits
	// and invalidates; its late write must not become visible.
	_, version, ok := c.GetDays(ctx, "2025-03-01", "2025-03-31")
	if ok {
		t.Fatalf("expected miss")
	}
	c.Invalidate(ctx)
	c.SetDays(ctx, version, "2025-03-01", "2025-03-31", []string{"2025-03-10"})

	if days, _, ok := c.GetDays(ctx, "2025-03-01", "2025-03-31"); ok {
		t.Fatalf("stale listing served after invalidation: %v", days)
	}

	_, current, _ := c.GetDays(ctx, "2025-03-01", "2025-03-31")
	if current != version+1 {
		t.Fatalf("expected version %d, got %d", version+1, current)
	}
	c.SetDays(ctx, current, "2025-03-01", "2025-03-31", []string{"2025-03-11"})
	days, _, ok := c.GetDays(ctx, "2025-03-01", "2025-03-31")
	if !ok || !reflect.DeepEqual(days, []string{"2025-03-11"}) {
		t.Errorf("expected fresh listing, got %v %v", days, ok)
	}
}

func TestSetDaysSkipsUnknownVersion(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	c.SetDays(ctx, -1, "2025-03-01", "2025-03-31", []string{"2025-03-10"})
	if keys := srv.Keys(); len(keys) != 0 {
		t.Errorf("expected nothing written, got %v", keys)
	}
}

func TestInitRedisWithoutAddressKeepsNoop(t *testing.T) {
	previous := Days
	t.Cleanup(func() { Days = previous })
	Days = noopCache{}

	if err := InitRedis(context.Background(), ""); err != nil {
		t.Fatalf("InitRedis: %v", err)
	}
	if _, ok := Days.(noopCache); !ok {
		t.Errorf("expected noop cache, got %T", Days)
	}
}
