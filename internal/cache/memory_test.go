package cache

import (
	"context"
	"testing"
	"time"

	"github.com/weatherdash/backend/internal/domain"
)

func TestKeyRoundsToTwoDecimals(t *testing.T) {
	if got := Key(51.50853, -0.12574); got != "51.51,-0.13" {
		t.Fatalf("unexpected key %q", got)
	}
	if Key(51.5071, -0.1281) != Key(51.5089, -0.1259) {
		t.Fatal("nearby coordinates should share a key")
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	if _, ok, err := c.Get(ctx, "a"); ok || err != nil {
		t.Fatalf("expected miss on empty cache, got ok=%v err=%v", ok, err)
	}

	want := domain.Forecast{Timezone: "Europe/London"}
	if err := c.Set(ctx, "a", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Timezone != want.Timezone {
		t.Fatalf("unexpected cached value %+v", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(10 * time.Minute)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "a", domain.Forecast{})

	now = now.Add(9 * time.Minute)
	if _, ok, _ := c.Get(ctx, "a"); !ok {
		t.Fatal("expected hit before ttl")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Fatal("expected miss after ttl")
	}

	// expired entries are swept on the next write
	_ = c.Set(ctx, "b", domain.Forecast{})
	if c.Len() != 1 {
		t.Fatalf("expected 1 live entry, got %d", c.Len())
	}
}
