package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weatherdash/backend/internal/domain"
)

func unreachableRedis() *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewRedisCacheFromClient(client, time.Minute)
}

func TestNewRedisCacheRejectsBadURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-url://", time.Minute); err == nil {
		t.Fatal("expected error for invalid redis url")
	}
}

func TestNewRedisCacheParsesURL(t *testing.T) {
	c, err := NewRedisCache("redis://localhost:6379/2", time.Minute)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	if c.ttl != time.Minute {
		t.Fatalf("unexpected ttl %v", c.ttl)
	}
}

func TestRedisCacheSurfacesConnectionErrors(t *testing.T) {
	c := unreachableRedis()
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k"); err == nil || ok {
		t.Fatalf("expected connection error, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "k", domain.Forecast{}); err == nil {
		t.Fatal("expected connection error on set")
	}
	if err := c.Ping(ctx); err == nil {
		t.Fatal("expected ping error")
	}
}
