package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"phish_trainer/pkg/api"

	"github.com/go-redis/redis/v8"
)

// StatsCache keeps computed dashboard stats in Redis. A nil Redis client
// turns every call into a miss.
type StatsCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{Redis: rdb, TTL: ttl}
}

func statsKey(userID uint) string {
	return fmt.Sprintf("stats:user:%d", userID)
}

// Get returns (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, userID uint) (*api.UserStats, error) {
	if c == nil || c.Redis == nil {
		return nil, nil
	}
	raw, err := c.Redis.Get(ctx, statsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats api.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, userID uint, stats *api.UserStats) error {
	if c == nil || c.Redis == nil || c.TTL <= 0 {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, statsKey(userID), raw, c.TTL).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, userID uint) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	return c.Redis.Del(ctx, statsKey(userID)).Err()
}
