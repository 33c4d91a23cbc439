package cache

import (
	"context"
	"time"

	"eventmap-api/core/config"
	"eventmap-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort read cache. Misses and backend failures both report
// a miss; the caller falls through to the store.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// New returns a redis-backed cache when an address is configured, otherwise a
// noop cache so the service runs without redis.
func New(cfg config.RedisConfig) Cache {
	if cfg.Addr == "" {
		logger.Info("Cache:Disabled", "reason", "REDIS_ADDR not configured")
		return &noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Cache:PingFailed, continuing without cache", "error", err)
		return &noopCache{}
	}

	logger.Info("Cache:Connected", "addr", cfg.Addr)
	return &redisCache{client: client}
}

type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logger.Warn("Cache:Get:Error", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn("Cache:Set:Error", "key", key, "error", err)
	}
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Warn("Cache:Delete:Error", "key", key, "error", err)
	}
}

type noopCache struct{}

func (n *noopCache) Get(ctx context.Context, key string) (string, bool) { return "", false }

func (n *noopCache) Set(ctx context.Context, key, value string, ttl time.Duration) {}

func (n *noopCache) Delete(ctx context.Context, key string) {}
