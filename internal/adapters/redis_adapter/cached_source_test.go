package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/test/helpers"
	"github.com/ammerola/meta4-erp/test/mocks"
)

func newCachedSource(t *testing.T, ttl time.Duration) (*redis_a.CachedSource, *mocks.MockRecordSource, *helpers.TestRedis) {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockRecordSource(ctrl)
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, helpers.TestLogger())
	return redis_a.NewCachedSource(upstream, cache, ttl, helpers.TestLogger()), upstream, tr
}

func TestCachedSource_ReadThrough(t *testing.T) {
	ctx := context.Background()

	t.Run("items_fetched_once", func(t *testing.T) {
		source, upstream, _ := newCachedSource(t, time.Minute)
		items := helpers.CreateTestItems(3)
		upstream.EXPECT().FetchItems(gomock.Any()).Return(items, nil).Times(1)

		first, err := source.FetchItems(ctx)
		require.NoError(t, err)
		second, err := source.FetchItems(ctx)
		require.NoError(t, err)

		require.Len(t, second, 3)
		assert.Equal(t, first, second)
		assert.Equal(t, "item-001", second[0].ItemID)
		assert.True(t, items[0].StockOnHand.Equal(second[0].StockOnHand))
	})

	t.Run("keys_per_collection", func(t *testing.T) {
		source, upstream, tr := newCachedSource(t, time.Minute)
		upstream.EXPECT().FetchTransferOrders(gomock.Any()).
			Return([]domain.TransferOrder{helpers.CreateTestTransferOrder()}, nil)
		upstream.EXPECT().FetchStockByLocation(gomock.Any()).
			Return([]domain.StockLocationRow{helpers.CreateTestStockRow("1",
				helpers.Location("l1", "Main Warehouse", 4))}, nil)
		upstream.EXPECT().FetchCompositeItems(gomock.Any()).
			Return([]domain.CompositeItem{helpers.CreateTestCompositeItem()}, nil)

		orders, err := source.FetchTransferOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, "TO-00001", orders[0].TransferOrderNumber)

		rows, err := source.FetchStockByLocation(ctx)
		require.NoError(t, err)
		assert.True(t, rows[0].HasLocation("Main Warehouse"))

		composites, err := source.FetchCompositeItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, "composite-001", composites[0].RecordID())

		for _, c := range []domain.Collection{
			domain.CollectionTransferOrders,
			domain.CollectionStockByLocation,
			domain.CollectionCompositeItems,
		} {
			assert.True(t, tr.Server.Exists(redis_a.CollectionKey(c)), c)
		}
		assert.False(t, tr.Server.Exists(redis_a.CollectionKey(domain.CollectionItems)))
	})

	t.Run("upstream_error_not_cached", func(t *testing.T) {
		source, upstream, tr := newCachedSource(t, time.Minute)
		upstream.EXPECT().FetchItems(gomock.Any()).Return(nil, domain.ErrUnauthorized)

		_, err := source.FetchItems(ctx)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
		assert.False(t, tr.Server.Exists("coll:items"))
	})

	t.Run("entry_expires", func(t *testing.T) {
		source, upstream, tr := newCachedSource(t, time.Minute)
		upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(1), nil).Times(2)

		_, err := source.FetchItems(ctx)
		require.NoError(t, err)
		tr.Server.FastForward(2 * time.Minute)
		_, err = source.FetchItems(ctx)
		require.NoError(t, err)
	})
}

func TestCachedSource_Warmer(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidate_forces_refetch", func(t *testing.T) {
		source, upstream, _ := newCachedSource(t, time.Minute)
		gomock.InOrder(
			upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(2), nil),
			upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(4), nil),
		)

		items, err := source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)

		require.NoError(t, source.Invalidate(ctx, domain.CollectionItems))

		items, err = source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("warm_replaces_copy", func(t *testing.T) {
		source, upstream, tr := newCachedSource(t, 0)
		gomock.InOrder(
			upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(1), nil),
			upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(5), nil),
		)

		_, err := source.FetchItems(ctx)
		require.NoError(t, err)
		require.NoError(t, source.Warm(ctx, domain.CollectionItems))
		assert.Zero(t, tr.Server.TTL("coll:items"))

		items, err := source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("failed_warm_keeps_copy", func(t *testing.T) {
		source, upstream, _ := newCachedSource(t, time.Minute)
		gomock.InOrder(
			upstream.EXPECT().FetchTransferOrders(gomock.Any()).
				Return([]domain.TransferOrder{helpers.CreateTestTransferOrder()}, nil),
			upstream.EXPECT().FetchTransferOrders(gomock.Any()).Return(nil, domain.ErrRetrieval),
		)

		_, err := source.FetchTransferOrders(ctx)
		require.NoError(t, err)

		err = source.Warm(ctx, domain.CollectionTransferOrders)
		assert.True(t, errors.Is(err, domain.ErrRetrieval))

		orders, err := source.FetchTransferOrders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("unknown_collection", func(t *testing.T) {
		source, _, _ := newCachedSource(t, time.Minute)
		err := source.Warm(ctx, domain.Collection("shipments"))
		assert.True(t, errors.Is(err, domain.ErrUnknownCollection))
	})

	t.Run("warm_drops_dashboard_reports", func(t *testing.T) {
		source, upstream, tr := newCachedSource(t, time.Minute)
		upstream.EXPECT().FetchStockByLocation(gomock.Any()).Return(nil, nil)
		require.NoError(t, tr.Server.Set("dash:summary", "{}"))
		require.NoError(t, tr.Server.Set("dash:stock-stats", "{}"))

		require.NoError(t, source.Warm(ctx, domain.CollectionStockByLocation))
		assert.False(t, tr.Server.Exists("dash:summary"))
		assert.False(t, tr.Server.Exists("dash:stock-stats"))
		assert.True(t, tr.Server.Exists("coll:items-with-stock"))
	})
}

func TestCachedSource_CacheFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("redis set coll:items: connection refused")

	t.Run("warm_reports_store_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := mocks.NewMockRecordSource(ctrl)
		cache := mocks.NewMockSnapshotCache(ctrl)
		source := redis_a.NewCachedSource(upstream, cache, time.Minute, helpers.TestLogger())

		upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(2), nil)
		cache.EXPECT().Store(gomock.Any(), "coll:items", gomock.Any(), time.Minute).Return(storeErr)

		err := source.Warm(ctx, domain.CollectionItems)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("invalidate_ignores_report_eviction_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockSnapshotCache(ctrl)
		source := redis_a.NewCachedSource(mocks.NewMockRecordSource(ctrl), cache, time.Minute, helpers.TestLogger())

		gomock.InOrder(
			cache.EXPECT().Evict(gomock.Any(), "coll:transfer-orders").Return(nil),
			cache.EXPECT().EvictMatching(gomock.Any(), "dash:*").Return(errors.New("scan failed")),
		)

		assert.NoError(t, source.Invalidate(ctx, domain.CollectionTransferOrders))
	})
}
