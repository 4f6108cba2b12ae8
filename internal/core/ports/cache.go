// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// SnapshotCache keeps JSON copies of upstream collections and derived
// reports. A ttl of zero keeps an entry until it is evicted.
type SnapshotCache interface {
	Load(ctx context.Context, key string, dest any) error
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Evict(ctx context.Context, keys ...string) error
	// EvictMatching drops every key matching a glob pattern
	EvictMatching(ctx context.Context, pattern string) error

	// LoadOrFetch fills dest from key, or from fetch when the key is absent
	// or the cache cannot be read. A fetched value is stored for ttl.
	LoadOrFetch(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error

	Ping(ctx context.Context) error
}
