package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// ListCache caches JSON-encoded listing responses under fixed keys.
// Writers call Invalidate after every mutation; entries also age out after
// the TTL, so a missed invalidation self-heals.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache wrapping the given Redis client.
// ttl <= 0 falls back to 5 minutes.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. A missing key is
// (false, nil), not an error.
func (c *ListCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores value under key with the configured TTL.
func (c *ListCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the given keys.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
