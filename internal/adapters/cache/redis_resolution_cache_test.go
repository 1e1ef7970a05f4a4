package cache

import (
	"advocacy-dispatch-service/internal/ports"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func openTestRedis(t *testing.T) *RedisResolutionCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisResolutionCache(client)
}

func TestRedisResolutionCacheRoundTrip(t *testing.T) {
	c := openTestRedis(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "99501")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	want := ports.Resolution{StateAbbrev: "AK", StateName: "Alaska", City: "Anchorage"}
	if err := c.Put(ctx, "99501", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "99501")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisResolutionCacheKeysAreNamespaced(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisResolutionCache(client)
	if err := c.Put(context.Background(), "73301", ports.Resolution{StateAbbrev: "TX", StateName: "Texas", City: "Austin"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if !srv.Exists("resolution:73301") {
		t.Fatal("expected key resolution:73301 in redis")
	}
}
