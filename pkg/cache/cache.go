// Package cache stores JSON-encoded values behind a small Store interface
// with a Redis driver and an in-process driver.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is implemented by every cache driver.
type Store interface {
	// Get unmarshals the value stored under key into dest.
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Driver() string
}

// Open builds the store selected by CACHE_DRIVER. A Redis store that fails
// its ping falls back to memory with a warning, so the API keeps serving.
func Open(ctx context.Context) Store {
	if config.CacheDriver() != "redis" {
		return NewMemory()
	}
	store, err := NewRedis(ctx, config.RedisAddr(), config.RedisPassword())
	if err != nil {
		logger.Warn("cache: falling back to memory", "error", err.Error())
		return NewMemory()
	}
	return store
}

// Remember returns the cached value under key, or calls load, caches its
// result for ttl and returns it. Cache failures never fail the call.
func Remember[T any](ctx context.Context, s Store, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var out T
	err := s.Get(ctx, key, &out)
	if err == nil {
		hit(s)
		return out, nil
	}
	miss(s)
	if !errors.Is(err, ErrMiss) {
		logger.WithCtx(ctx).Warn("cache get failed", "key", key, "error", err.Error())
	}

	out, err = load()
	if err != nil {
		return out, err
	}
	if err := s.Set(ctx, key, out, ttl); err != nil {
		logger.WithCtx(ctx).Warn("cache set failed", "key", key, "error", fmt.Sprint(err))
	}
	return out, nil
}

// Forget deletes keys, logging instead of failing.
func Forget(ctx context.Context, s Store, keys ...string) {
	if err := s.Del(ctx, keys...); err != nil {
		logger.WithCtx(ctx).Warn("cache del failed", "keys", keys, "error", err.Error())
	}
}
