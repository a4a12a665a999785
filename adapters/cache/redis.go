// Package cache implements the CacheStore port. The redis adapter
// serializes values as JSON; a corrupt entry is treated as a miss and
// proactively evicted so the cache heals itself.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"offerforge/internal/errors"
	"offerforge/ports"

	"github.com/redis/go-redis/v9"
)

// Redis implements ports.CacheStore on go-redis
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis builds a cache from a redis URL (redis://host:port/db)
func NewRedis(url, prefix string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	return &Redis{client: redis.NewClient(opts), prefix: prefix}, nil
}

func (r *Redis) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// Get deserializes the stored value into dest. A stored value that no
// longer deserializes is evicted and reported as a miss.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return ports.ErrCacheMiss
	}
	if err != nil {
		return errors.New(errors.CodeCache, "cache get failed")
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[Cache] Evicting corrupt entry for key=%s: %v", key, err)
		if delErr := r.client.Del(ctx, r.key(key)).Err(); delErr != nil {
			log.Printf("[Cache] Failed to evict corrupt entry key=%s: %v", key, delErr)
		}
		return ports.ErrCacheMiss
	}
	return nil
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "serialize cache value")
	}
	if err := r.client.Set(ctx, r.key(key), raw, ttl).Err(); err != nil {
		return errors.New(errors.CodeCache, "cache set failed")
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.New(errors.CodeCache, "cache delete failed")
	}
	return nil
}

// Ping verifies connectivity at startup
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
