package database

import (
	"context"
	"fmt"

	"github.com/gdugdh24/skillswap-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// redisOptions maps the config onto client options shared by sessions,
// bookmark sets and notification publishes.
func redisOptions(cfg *config.RedisConfig) *redis.Options {
	opts := &redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  connectTimeout,
		ReadTimeout:  connectTimeout / 2,
		WriteTimeout: connectTimeout / 2,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
		opts.MinIdleConns = max(1, cfg.PoolSize/5)
	}
	return opts
}

// NewRedisClient connects to the session, bookmark and notification store.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(redisOptions(cfg))

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	return client, nil
}
