package translation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed Store shared across server instances and the
// backfill worker. Redis failures degrade to cache misses.
type RedisStore struct {
	client    redis.Cmdable
	logger    *slog.Logger
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore connects to Redis at url and verifies the connection.
func NewRedisStore(ctx context.Context, url, keyPrefix string, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStoreFromClient(client, keyPrefix, ttl, logger), nil
}

// NewRedisStoreFromClient wraps an existing client. Used by tests with a mock
// client.
func NewRedisStoreFromClient(client redis.Cmdable, keyPrefix string, ttl time.Duration, logger *slog.Logger) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{
		client:    client,
		logger:    logger,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.logger.WarnContext(ctx, "redis get failed, treating as miss", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.keyPrefix+key, value, s.ttl).Err()
}
