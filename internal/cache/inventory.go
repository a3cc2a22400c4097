package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	categoryListKey    = "categories:list"
	revokedTokenPrefix = "revoked:%s"
)

const (
	// CategoryListTTL bounds staleness of the cached category list; every
	// category mutation also invalidates it explicitly.
	CategoryListTTL = 10 * time.Minute
)

// CategoryListKey returns the cache key for the full category list.
func CategoryListKey() string {
	return categoryListKey
}

func revokedTokenKey(jti string) string {
	return fmt.Sprintf(revokedTokenPrefix, jti)
}

// Invalidate removes a key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateCategoryList drops the cached category list.
func InvalidateCategoryList(ctx context.Context) {
	Invalidate(ctx, CategoryListKey())
}

// RevokeToken denylists a token's jti until the token would expire anyway.
// Logout is a no-op when Redis is unavailable.
func RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return client.Set(ctx, revokedTokenKey(jti), "1", ttl).Err()
}

// IsTokenRevoked reports whether a token's jti has been denylisted. Redis
// errors fail open: an unreachable cache never locks every user out.
func IsTokenRevoked(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	n, err := client.Exists(ctx, revokedTokenKey(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
