package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsCache stores serialized statistics snapshots with a short TTL.
// A miss is (nil, nil), not an error.
type StatsCache struct{ rdb *redis.Client }

func NewStatsCache(rdb *redis.Client) *StatsCache { return &StatsCache{rdb: rdb} }

func (c *StatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

func (c *StatsCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, val, ttl).Err()
}
