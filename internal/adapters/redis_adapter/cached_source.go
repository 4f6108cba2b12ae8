// internal/adapters/redis_adapter/cached_source.go
package redis_a

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// CachedSource is a read-through cache in front of the upstream source.
// Each collection is stored whole under coll:<collection>.
type CachedSource struct {
	upstream ports.RecordSource
	cache    ports.SnapshotCache
	ttl      time.Duration
	logger   *slog.Logger
}

// Statically assert that *CachedSource implements the source and warmer interfaces.
var (
	_ ports.RecordSource     = (*CachedSource)(nil)
	_ ports.CollectionWarmer = (*CachedSource)(nil)
)

// NewCachedSource wraps upstream with cache. ttl <= 0 keeps entries until
// they are invalidated.
func NewCachedSource(upstream ports.RecordSource, cache ports.SnapshotCache, ttl time.Duration, logger *slog.Logger) *CachedSource {
	if ttl < 0 {
		ttl = 0
	}
	return &CachedSource{
		upstream: upstream,
		cache:    cache,
		ttl:      ttl,
		logger:   logger.With(slog.String("component", "cached_source")),
	}
}

// CollectionKey is the cache key of a collection
func CollectionKey(collection domain.Collection) string {
	return BuildKey(PrefixCollection, string(collection))
}

func readThrough[T any](ctx context.Context, s *CachedSource, collection domain.Collection,
	fetch func(context.Context) ([]T, error)) ([]T, error) {

	var out []T
	err := s.cache.LoadOrFetch(ctx, CollectionKey(collection), &out, func() (interface{}, error) {
		return fetch(ctx)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CachedSource) FetchItems(ctx context.Context) ([]domain.Item, error) {
	return readThrough(ctx, s, domain.CollectionItems, s.upstream.FetchItems)
}

func (s *CachedSource) FetchCompositeItems(ctx context.Context) ([]domain.CompositeItem, error) {
	return readThrough(ctx, s, domain.CollectionCompositeItems, s.upstream.FetchCompositeItems)
}

func (s *CachedSource) FetchTransferOrders(ctx context.Context) ([]domain.TransferOrder, error) {
	return readThrough(ctx, s, domain.CollectionTransferOrders, s.upstream.FetchTransferOrders)
}

func (s *CachedSource) FetchStockByLocation(ctx context.Context) ([]domain.StockLocationRow, error) {
	return readThrough(ctx, s, domain.CollectionStockByLocation, s.upstream.FetchStockByLocation)
}

// Invalidate drops the cached copy of collection
func (s *CachedSource) Invalidate(ctx context.Context, collection domain.Collection) error {
	if err := s.cache.Evict(ctx, CollectionKey(collection)); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", collection, err)
	}
	s.logger.DebugContext(ctx, "collection invalidated", slog.String("collection", string(collection)))
	s.dropReports(ctx)
	return nil
}

// dropReports evicts the dashboard reports derived from the collections.
// Failure only costs a stale report until its ttl runs out.
func (s *CachedSource) dropReports(ctx context.Context) {
	if err := s.cache.EvictMatching(ctx, BuildKey(PrefixDashboard, "*")); err != nil {
		s.logger.WarnContext(ctx, "dashboard reports not evicted", slog.String("error", err.Error()))
	}
}

// Warm fetches collection from upstream and replaces the cached copy.
// A failed fetch leaves the previous copy in place.
func (s *CachedSource) Warm(ctx context.Context, collection domain.Collection) error {
	var (
		value interface{}
		count int
		err   error
	)
	switch collection {
	case domain.CollectionItems:
		var v []domain.Item
		v, err = s.upstream.FetchItems(ctx)
		value, count = v, len(v)
	case domain.CollectionCompositeItems:
		var v []domain.CompositeItem
		v, err = s.upstream.FetchCompositeItems(ctx)
		value, count = v, len(v)
	case domain.CollectionTransferOrders:
		var v []domain.TransferOrder
		v, err = s.upstream.FetchTransferOrders(ctx)
		value, count = v, len(v)
	case domain.CollectionStockByLocation:
		var v []domain.StockLocationRow
		v, err = s.upstream.FetchStockByLocation(ctx)
		value, count = v, len(v)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownCollection, collection)
	}
	if err != nil {
		return err
	}

	if err := s.cache.Store(ctx, CollectionKey(collection), value, s.ttl); err != nil {
		return fmt.Errorf("failed to store %s: %w", collection, err)
	}
	s.dropReports(ctx)

	s.logger.InfoContext(ctx, "collection warmed",
		slog.String("collection", string(collection)),
		slog.Int("records", count))
	return nil
}
