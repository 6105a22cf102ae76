package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	daysPrefix = "iskio:dias:"
	versionKey = "iskio:dias_version"
	daysTTL    = 10 * time.Minute
)

// DayCache stores the days-mode availability listing per range. Entries are
// keyed by a version that Invalidate bumps: GetDays returns the version it
// looked under and SetDays writes under that same version, so a listing read
// before an invalidation can never be served after it.
type DayCache interface {
	GetDays(ctx context.Context, desde, hasta string) (days []string, version int64, ok bool)
	SetDays(ctx context.Context, version int64, desde, hasta string, days []string)
	Invalidate(ctx context.Context)
}

// Days is a no-op cache until InitRedis succeeds.
var Days DayCache = noopCache{}

type RedisDayCache struct {
	client *redis.Client
}

func NewRedisDayCache(client *redis.Client) *RedisDayCache {
	return &RedisDayCache{client: client}
}

func InitRedis(ctx context.Context, addr string) error {
	if addr == "" {
		logrus.Warn("REDIS_ADDR not set, availability cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	Days = NewRedisDayCache(client)
	logrus.WithField("addr", addr).Info("Connected to Redis")
	return nil
}

func daysKey(version int64, desde, hasta string) string {
	return fmt.Sprintf("%sv%d:%s:%s", daysPrefix, version, desde, hasta)
}

// GetDays returns version -1 when the version itself cannot be read; such a
// version is never written.
func (r *RedisDayCache) GetDays(ctx context.Context, desde, hasta string) ([]string, int64, bool) {
	version, err := r.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		logrus.WithError(err).Warn("Day cache version read failed")
		return nil, -1, false
	}

	raw, err := r.client.Get(ctx, daysKey(version, desde, hasta)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("Day cache read failed")
		}
		return nil, version, false
	}
	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, version, false
	}
	return days, version, true
}

func (r *RedisDayCache) SetDays(ctx context.Context, version int64, desde, hasta string, days []string) {
	if version < 0 {
		return
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, daysKey(version, desde, hasta), raw, daysTTL).Err(); err != nil {
		logrus.WithError(err).Warn("Day cache write failed")
	}
}

// Invalidate bumps the version, which hides every cached range at once, and
// then drops the old entries. Any slot change may affect all of them.
func (r *RedisDayCache) Invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, versionKey).Err(); err != nil {
		logrus.WithError(err).Warn("Day cache version bump failed")
	}
	iter := r.client.Scan(ctx, 0, daysPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("Day cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).Warn("Day cache invalidation failed")
	}
}

type noopCache struct{}

func (noopCache) GetDays(context.Context, string, string) ([]string, int64, bool) {
	return nil, -1, false
}

func (noopCache) SetDays(context.Context, int64, string, string, []string) {}

func (noopCache) Invalidate(context.Context) {}
