package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/test/helpers"
)

func newCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, helpers.TestLogger()), mr
}

func TestCache_StoreAndLoad(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	t.Run("items_round_trip", func(t *testing.T) {
		items := helpers.CreateTestItems(2)
		require.NoError(t, cache.Store(ctx, "coll:items", items, 0))

		var got []domain.Item
		require.NoError(t, cache.Load(ctx, "coll:items", &got))
		require.Len(t, got, 2)
		assert.Equal(t, items[1].ItemID, got[1].ItemID)
		assert.True(t, items[1].StockOnHand.Equal(got[1].StockOnHand))
		assert.Zero(t, mr.TTL("coll:items"))
	})

	t.Run("ttl_expires_entry", func(t *testing.T) {
		require.NoError(t, cache.Store(ctx, "dash:summary", map[string]int{"total": 3}, 2*time.Second))
		assert.Equal(t, 2*time.Second, mr.TTL("dash:summary"))

		mr.FastForward(3 * time.Second)

		var got map[string]int
		assert.ErrorIs(t, cache.Load(ctx, "dash:summary", &got), redis_a.ErrCacheMiss)
	})

	t.Run("corrupt_entry", func(t *testing.T) {
		require.NoError(t, mr.Set("coll:broken", "{not json"))

		var got []domain.Item
		err := cache.Load(ctx, "coll:broken", &got)
		require.Error(t, err)
		assert.False(t, errors.Is(err, redis_a.ErrCacheMiss))
	})
}

func TestCache_Evict(t *testing.T) {
	ctx := context.Background()

	t.Run("named_keys", func(t *testing.T) {
		cache, mr := newCache(t)
		require.NoError(t, mr.Set("coll:items", "[]"))
		require.NoError(t, mr.Set("coll:transfer-orders", "[]"))

		require.NoError(t, cache.Evict(ctx, "coll:items"))
		assert.False(t, mr.Exists("coll:items"))
		assert.True(t, mr.Exists("coll:transfer-orders"))

		assert.NoError(t, cache.Evict(ctx))
	})

	t.Run("matching_pattern", func(t *testing.T) {
		cache, mr := newCache(t)
		for _, key := range []string{"dash:summary", "dash:low-stock", "coll:items"} {
			require.NoError(t, mr.Set(key, "{}"))
		}

		require.NoError(t, cache.EvictMatching(ctx, "dash:*"))
		assert.False(t, mr.Exists("dash:summary"))
		assert.False(t, mr.Exists("dash:low-stock"))
		assert.True(t, mr.Exists("coll:items"))

		assert.NoError(t, cache.EvictMatching(ctx, "nothing:*"))
	})
}

func TestCache_LoadOrFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches_once", func(t *testing.T) {
		cache, _ := newCache(t)
		calls := 0
		fetch := func() (any, error) {
			calls++
			return []string{"a", "b"}, nil
		}

		for i := 0; i < 2; i++ {
			var out []string
			require.NoError(t, cache.LoadOrFetch(ctx, "dash:names", &out, fetch, time.Minute))
			assert.Equal(t, []string{"a", "b"}, out)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("fetch_error_is_not_stored", func(t *testing.T) {
		cache, mr := newCache(t)

		var out []string
		err := cache.LoadOrFetch(ctx, "dash:err", &out, func() (any, error) {
			return nil, domain.ErrRetrieval
		}, time.Minute)
		assert.ErrorIs(t, err, domain.ErrRetrieval)
		assert.False(t, mr.Exists("dash:err"))
	})

	t.Run("reads_through_when_redis_is_down", func(t *testing.T) {
		cache, mr := newCache(t)
		mr.Close()

		var out string
		err := cache.LoadOrFetch(ctx, "dash:down", &out, func() (any, error) {
			return "fresh", nil
		}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "fresh", out)
	})
}

func TestCache_Ping(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	assert.NoError(t, cache.Ping(ctx))
	mr.Close()
	assert.Error(t, cache.Ping(ctx))
}

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   redis_a.CacheKeyPrefix
		parts    []string
		expected string
	}{
		{name: "collection_key", prefix: redis_a.PrefixCollection, parts: []string{"items"}, expected: "coll:items"},
		{name: "dashboard_pattern", prefix: redis_a.PrefixDashboard, parts: []string{"*"}, expected: "dash:*"},
		{name: "no_parts", prefix: redis_a.PrefixCollection, expected: "coll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redis_a.BuildKey(tt.prefix, tt.parts...))
		})
	}
}
