package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Outcomes are stored as "0"/"1" strings so they remain readable with plain
// redis tooling.
const (
	valPassed = "0"
	valBroken = "1"
)

// RedisStore adapts a go-redis client to the Store interface.
type RedisStore struct {
	db redis.UniversalClient
}

// NewRedisStore wraps an existing go-redis client. The caller owns the
// client's lifecycle.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{db: client}
}

// Get returns the cached flag; redis.Nil is reported as a plain miss.
func (s *RedisStore) Get(ctx context.Context, key string) (bool, bool, error) {
	val, err := s.db.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == valBroken, true, nil
}

// Set stores the flag with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, broken bool, ttl time.Duration) error {
	val := valPassed
	if broken {
		val = valBroken
	}
	return s.db.Set(ctx, key, val, ttl).Err()
}

// Delete removes the key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.db.Del(ctx, key).Err()
}
