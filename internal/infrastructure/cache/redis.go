package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/pkg/config"
)

// RedisStore is a Redis-backed key-value store used for the insight cache.
// Failures are logged and swallowed; callers see them as cache misses.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.Config, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, logger: logger}, nil
}

// Get retrieves a value by key.
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := rs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		rs.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, true
}

// Set stores a key-value pair with a TTL.
func (rs *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := rs.client.Set(ctx, key, value, ttl).Err(); err != nil {
		rs.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes the given keys.
func (rs *RedisStore) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := rs.client.Del(ctx, keys...).Err(); err != nil {
		rs.logger.Warn("redis delete failed", zap.Error(err))
	}
}

// Close shuts down the Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
