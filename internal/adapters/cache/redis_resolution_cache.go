package cache

import (
	"advocacy-dispatch-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisResolutionCache stores zip resolutions as JSON values in Redis, for
// deployments that already run Redis and want the cache off the local disk.
// Entries are written without a TTL; zip-to-state mappings effectively never
// change.
type RedisResolutionCache struct {
	Client *redis.Client
}

func NewRedisResolutionCache(client *redis.Client) *RedisResolutionCache {
	return &RedisResolutionCache{Client: client}
}

func key(zip string) string {
	return "resolution:" + zip
}

// Get fetches the cached resolution for a zip.
func (r *RedisResolutionCache) Get(ctx context.Context, zip string) (ports.Resolution, bool, error) {
	if r.Client == nil {
		return ports.Resolution{}, false, errors.New("resolution cache: redis client is nil")
	}

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return ports.Resolution{}, false, nil
	}

	raw, err := r.Client.Get(ctx, key(zip)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.Resolution{}, false, nil
	}
	if err != nil {
		return ports.Resolution{}, false, fmt.Errorf("get resolution cache: redis get zip %q: %w", zip, err)
	}

	var res ports.Resolution
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return ports.Resolution{}, false, fmt.Errorf("get resolution cache: decode zip %q: %w", zip, err)
	}

	return res, true, nil
}

// Put stores a zip -> resolution mapping, replacing any previous entry.
func (r *RedisResolutionCache) Put(ctx context.Context, zip string, res ports.Resolution) error {
	if r.Client == nil {
		return errors.New("resolution cache: redis client is nil")
	}

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return errors.New("insert resolution cache: empty zip key")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("insert resolution cache: encode zip %q: %w", zip, err)
	}

	if err := r.Client.Set(ctx, key(zip), raw, 0).Err(); err != nil {
		return fmt.Errorf("insert resolution cache zip=%q: %w", zip, err)
	}

	return nil
}
