package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weatherdash/backend/internal/domain"
)

const redisKeyPrefix = "weather:forecast:"

// RedisCache stores forecasts as JSON in Redis with the TTL as key expiry
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache from a redis:// URL
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis url: %w", err)
	}
	return NewRedisCacheFromClient(redis.NewClient(opts), ttl), nil
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached forecast for key; a missing key is a miss, not an error
func (c *RedisCache) Get(ctx context.Context, key string) (domain.Forecast, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		recordLookup("redis", false)
		return domain.Forecast{}, false, nil
	}
	if err != nil {
		return domain.Forecast{}, false, fmt.Errorf("cache: redis get failed: %w", err)
	}

	var forecast domain.Forecast
	if err := json.Unmarshal(raw, &forecast); err != nil {
		recordLookup("redis", false)
		return domain.Forecast{}, false, fmt.Errorf("cache: failed to decode cached forecast: %w", err)
	}
	recordLookup("redis", true)
	return forecast, true, nil
}

// Set stores forecast under key
func (c *RedisCache) Set(ctx context.Context, key string, forecast domain.Forecast) error {
	raw, err := json.Marshal(forecast)
	if err != nil {
		return fmt.Errorf("cache: failed to encode forecast: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set failed: %w", err)
	}
	return nil
}

// Ping checks Redis connectivity
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
