package cache

import (
	"context"
	"time"
)

const blacklistPrefix = "blacklist:"

// BlacklistToken marks a token's jti as revoked until the token would have
// expired anyway. A no-op when Redis is unavailable.
func BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil || jti == "" {
		return nil
	}
	return client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the jti has been revoked. Lookups fail
// open: if Redis is down, the token's own expiry is still enforced.
func IsTokenBlacklisted(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	n, err := client.Exists(ctx, blacklistPrefix+jti).Result()
	return err == nil && n > 0
}
