package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSubstrate stores each document under its key as a plain Redis
// string. Documents live for the life of the deployment: no TTL.
type RedisSubstrate struct {
	client *redis.Client
}

// NewRedisSubstrate wraps an already-connected client.
func NewRedisSubstrate(client *redis.Client) *RedisSubstrate {
	return &RedisSubstrate{client: client}
}

func (r *RedisSubstrate) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return raw, true, nil
}

func (r *RedisSubstrate) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
