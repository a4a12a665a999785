package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when no live entry exists for the key
var ErrCacheMiss = errors.New("cache miss")

// CacheStore is the external cache collaborator. Caching is a performance
// optimization, never a correctness dependency: callers log and swallow
// every error except ErrCacheMiss, which is the normal negative result.
type CacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
