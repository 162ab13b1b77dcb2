package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"phish_trainer/internal/config"

	"github.com/go-redis/redis/v8"
)

const redisPingTimeout = 3 * time.Second

// InitRedis connects the statistics cache. A disabled cache is a nil client
// and no error; every caller treats nil as "no cache".
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", rdb.Options().Addr, err)
	}

	log.Printf("Redis connection established (stats ttl %s)", cfg.StatsTTL)
	return rdb, nil
}
