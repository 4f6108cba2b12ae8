// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// CacheKeyPrefix namespaces cache keys
type CacheKeyPrefix string

const (
	PrefixCollection CacheKeyPrefix = "coll"
	PrefixDashboard  CacheKeyPrefix = "dash"
)

// scanBatch is the COUNT hint used while scanning for EvictMatching
const scanBatch = 100

// ErrCacheMiss is returned by Load when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// Cache is a SnapshotCache backed by redis string keys
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// Statically assert that *Cache implements the SnapshotCache interface.
var _ ports.SnapshotCache = (*Cache)(nil)

// NewCache creates a cache on client
func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger.With(slog.String("component", "cache")),
	}
}

func (c *Cache) Load(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return ErrCacheMiss
	case err != nil:
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	c.logger.DebugContext(ctx, "snapshot stored",
		slog.String("key", key),
		slog.Int("bytes", len(raw)),
		slog.Duration("ttl", ttl))
	return nil
}

func (c *Cache) Evict(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *Cache) EvictMatching(ctx context.Context, pattern string) error {
	var matched []string
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		matched = append(matched, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s: %w", pattern, err)
	}
	return c.Evict(ctx, matched...)
}

// LoadOrFetch never fails because of redis: a broken connection reads
// through to fetch. Errors from fetch are returned as they are.
func (c *Cache) LoadOrFetch(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error {
	err := c.Load(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "cache unavailable, reading through",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	value, err := fetch()
	if err != nil {
		return err
	}
	if err := c.Store(ctx, key, value, ttl); err != nil {
		c.logger.WarnContext(ctx, "snapshot not stored",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	// Round trip through JSON so dest sees what a later Load would.
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return json.Unmarshal(raw, dest)
}

func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// BuildKey joins a prefix and parts with ':'
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	return strings.Join(append([]string{string(prefix)}, parts...), ":")
}
