package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell/inkwell/api/internal/config"
)

// Cache keys for public blog reads
const (
	KeyPublishedBlogs = "blogs:published"
)

var (
	client *redis.Client
	ttl    time.Duration
	once   sync.Once
)

// BlogKey is the cache key for a single published blog
func BlogKey(id string) string {
	return "blogs:published:" + id
}

// Initialize sets up the Redis client and tests the connection. The cache is
// optional: with no REDIS_HOST configured all operations become no-ops and
// reads go straight to the database.
func Initialize(cfg *config.Config) error {
	var initErr error
	once.Do(func() {
		if cfg.RedisHost == "" {
			return
		}

		seconds, err := strconv.Atoi(cfg.CacheTTL)
		if err != nil || seconds <= 0 {
			seconds = 60
		}
		ttl = time.Duration(seconds) * time.Second

		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("failed to connect to Redis: %w", err)
			client = nil
		}
	})
	return initErr
}

// Enabled reports whether a Redis backend is configured and reachable
func Enabled() bool {
	return client != nil
}

// SetClient sets the Redis client (for testing purposes only)
func SetClient(c *redis.Client, keepAlive time.Duration) {
	client = c
	ttl = keepAlive
}

// Get returns the cached payload for key, if any. Redis errors are treated
// as cache misses.
func Get(ctx context.Context, key string) (string, bool) {
	if client == nil {
		return "", false
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores payload under key with the configured TTL, best effort.
func Set(ctx context.Context, key string, payload string) {
	if client == nil {
		return
	}
	_ = client.Set(ctx, key, payload, ttl).Err()
}

// Invalidate drops the given keys, best effort.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	_ = client.Del(ctx, keys...).Err()
}
