package redisstore

import (
	"context"
	"errors"

	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

type kv struct {
	client redis.UniversalClient
	prefix string
}

// NewKV stores values under prefix+key without expiry.
func NewKV(client redis.UniversalClient, prefix string) repository.KV {
	return &kv{client: client, prefix: prefix}
}

func (s *kv) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *kv) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
