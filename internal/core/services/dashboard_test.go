// internal/core/services/dashboard_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/services"
	"github.com/ammerola/meta4-erp/test/helpers"
	"github.com/ammerola/meta4-erp/test/mocks"
)

func newDashboard(t *testing.T) (*services.DashboardService, *mocks.MockRecordSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	return services.NewDashboardService(source, helpers.TestLogger()), source
}

func withStock(id string, stock, rate int64) domain.Item {
	return helpers.CreateTestItem(func(i *domain.Item) {
		i.ItemID = id
		i.Name = "Item " + id
		i.StockOnHand = decimal.NewFromInt(stock)
		i.Rate = decimal.NewFromInt(rate)
	})
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("counts_and_stock_value", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchItems(gomock.Any()).Return([]domain.Item{
			withStock("a", 20, 5),
			withStock("b", 8, 10),
			withStock("c", 0, 99),
			withStock("d", -2, 50),
		}, nil)
		source.EXPECT().FetchCompositeItems(gomock.Any()).Return([]domain.CompositeItem{
			helpers.CreateTestCompositeItem(),
		}, nil)

		summary, err := svc.Summary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 4, summary.TotalItems)
		assert.Equal(t, 1, summary.TotalComposites)
		// b=8 and the composite at 4 are low; c at 0 and d below zero are out
		assert.Equal(t, 2, summary.LowStockCount)
		assert.Equal(t, 2, summary.OutOfStockCount)
		// 20*5 + 8*10, composites carry no stock value
		assert.True(t, decimal.NewFromInt(180).Equal(summary.StockValue), summary.StockValue.String())
		assert.Len(t, summary.RecentItems, 5)
	})

	t.Run("recent_items_newest_first_and_capped", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(15), nil)
		source.EXPECT().FetchCompositeItems(gomock.Any()).Return(nil, nil)

		summary, err := svc.Summary(ctx)
		require.NoError(t, err)

		require.Len(t, summary.RecentItems, services.RecentItemsLimit)
		assert.Equal(t, "item-015", summary.RecentItems[0].ID)
		assert.Equal(t, "item-006", summary.RecentItems[9].ID)
	})

	t.Run("source_error", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchItems(gomock.Any()).Return(nil, domain.ErrRetrieval).AnyTimes()
		source.EXPECT().FetchCompositeItems(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := svc.Summary(ctx)
		assert.True(t, errors.Is(err, domain.ErrRetrieval))
	})
}

func TestDashboardService_LowStock(t *testing.T) {
	svc, source := newDashboard(t)
	source.EXPECT().FetchItems(gomock.Any()).Return([]domain.Item{
		withStock("plenty", 40, 1),
		withStock("low", 9, 1),
		withStock("critical", 3, 1),
		withStock("out", 0, 1),
	}, nil)
	source.EXPECT().FetchCompositeItems(gomock.Any()).Return(nil, nil)

	report, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalCount)
	assert.Equal(t, 1, report.OutOfStock)
	assert.Equal(t, 1, report.CriticalCount)
	require.Len(t, report.Items, 3)
	assert.Equal(t, "out", report.Items[0].ID)
	assert.Equal(t, "critical", report.Items[1].ID)
	assert.Equal(t, "low", report.Items[2].ID)
}

func TestDashboardService_TransferStats(t *testing.T) {
	svc, source := newDashboard(t)
	source.EXPECT().FetchTransferOrders(gomock.Any()).Return([]domain.TransferOrder{
		helpers.CreateTestTransferOrder(),
		helpers.CreateTestTransferOrder(func(o *domain.TransferOrder) {
			o.TransferOrderID = "to-002"
			o.Status = "In_Transit"
			o.QuantityTransfer = decimal.NewFromInt(5)
			o.ToLocationName = "Sanding Station"
		}),
		helpers.CreateTestTransferOrder(func(o *domain.TransferOrder) {
			o.TransferOrderID = "to-003"
			o.Status = "Transferred"
		}),
	}, nil)

	stats, err := svc.TransferStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.True(t, decimal.NewFromInt(25).Equal(stats.TotalQuantity))
	assert.Equal(t, 2, stats.TransferredCount)
	assert.Equal(t, []string{"Downtown Store", "Main Warehouse", "Sanding Station"}, stats.Locations)
	assert.Equal(t, 3, stats.UniqueLocations)
	assert.Equal(t, 1, stats.UniqueFromLocations)
	assert.Equal(t, 2, stats.UniqueToLocations)
}

func stockRows() []domain.StockLocationRow {
	return []domain.StockLocationRow{
		helpers.CreateTestStockRow("1",
			helpers.Location("loc-1", "Main Warehouse", 10),
			helpers.Location("loc-2", "Downtown Store", 2)),
		helpers.CreateTestStockRow("2",
			helpers.Location("loc-1", "Main Warehouse", 5)),
		helpers.CreateTestStockRow("3",
			helpers.Location("loc-3", "Coating Station", 30)),
	}
}

func TestDashboardService_StockStats(t *testing.T) {
	ctx := context.Background()

	t.Run("totals", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchStockByLocation(gomock.Any()).Return(stockRows(), nil)

		stats, err := svc.StockStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalItems)
		assert.True(t, decimal.NewFromInt(47).Equal(stats.TotalStock))
		assert.Equal(t, 3, stats.UniqueLocations)
		assert.Equal(t, 1, stats.MultiLocation)
	})

	t.Run("locations_counted_by_name", func(t *testing.T) {
		svc, source := newDashboard(t)
		rows := append(stockRows(), helpers.CreateTestStockRow("4",
			helpers.Location("loc-9", "Main Warehouse", 1)))
		source.EXPECT().FetchStockByLocation(gomock.Any()).Return(rows, nil)

		stats, err := svc.StockStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.UniqueLocations)
	})
}

func TestDashboardService_Locations(t *testing.T) {
	ctx := context.Background()

	t.Run("largest_stock_first", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchStockByLocation(gomock.Any()).Return(stockRows(), nil)

		locations, err := svc.Locations(ctx, "")
		require.NoError(t, err)

		require.Len(t, locations, 3)
		assert.Equal(t, "Coating Station", locations[0].LocationName)
		assert.Equal(t, domain.LocationWorkstation, locations[0].LocationType)
		assert.Equal(t, "Main Warehouse", locations[1].LocationName)
		assert.Equal(t, 2, locations[1].TotalItems)
		assert.True(t, decimal.NewFromInt(15).Equal(locations[1].TotalStock))
		assert.Equal(t, domain.LocationStore, locations[2].LocationType)
		assert.Nil(t, locations[0].Items)
	})

	t.Run("search_by_name", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchStockByLocation(gomock.Any()).Return(stockRows(), nil)

		locations, err := svc.Locations(ctx, "  STORE ")
		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, "loc-2", locations[0].LocationID)
	})

	t.Run("detail_with_item_search", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchStockByLocation(gomock.Any()).Return(stockRows(), nil)

		loc, err := svc.Location(ctx, "loc-1", "sku-2")
		require.NoError(t, err)
		assert.Equal(t, 2, loc.TotalItems)
		require.Len(t, loc.Items, 1)
		assert.Equal(t, "2", loc.Items[0].ItemID)
	})

	t.Run("detail_not_found", func(t *testing.T) {
		svc, source := newDashboard(t)
		source.EXPECT().FetchStockByLocation(gomock.Any()).Return(stockRows(), nil)

		_, err := svc.Location(ctx, "loc-9", "")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
