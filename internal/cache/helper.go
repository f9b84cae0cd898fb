package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys and TTLs for the entities worth caching. Posts and categories
// are read far more often than written; users are cached for by-id lookups.
const (
	postKeyPrefix     = "post:%d"
	categoryKeyPrefix = "category:%d"
	userKeyPrefix     = "user:%d"

	PostTTL     = 30 * time.Minute
	CategoryTTL = 10 * time.Minute
	UserTTL     = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func CategoryKey(categoryID uint) string {
	return fmt.Sprintf(categoryKeyPrefix, categoryID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which must populate dest),
// then stores the result with ttl. Cache errors fall through to fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes the key from the cache, if a client is configured.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}
