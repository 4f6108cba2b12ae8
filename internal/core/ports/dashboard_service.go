// internal/core/ports/dashboard_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// DashboardService computes the dashboard statistics and reports
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
	LowStock(ctx context.Context) (*LowStockReport, error)
	TransferStats(ctx context.Context) (*TransferStats, error)
	StockStats(ctx context.Context) (*StockStats, error)
	Locations(ctx context.Context, search string) ([]domain.LocationSummary, error)
	Location(ctx context.Context, locationID, search string) (*domain.LocationSummary, error)
}

// RecentItem is one row of the recently modified list
type RecentItem struct {
	ID               string             `json:"id"`
	Kind             domain.RecordKind  `json:"kind"`
	Name             string             `json:"name"`
	SKU              string             `json:"sku"`
	StockOnHand      decimal.Decimal    `json:"stock_on_hand"`
	StockStatus      domain.StockStatus `json:"stock_status"`
	LastModifiedTime string             `json:"last_modified_time"`
}

// DashboardSummary holds the headline inventory numbers
type DashboardSummary struct {
	TotalItems      int             `json:"total_items"`
	TotalComposites int             `json:"total_composites"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	StockValue      decimal.Decimal `json:"stock_value"`
	RecentItems     []RecentItem    `json:"recent_items"`
}

// LowStockReport lists items and composites needing restock
type LowStockReport struct {
	Items         []RecentItem `json:"items"`
	TotalCount    int          `json:"total_count"`
	OutOfStock    int          `json:"out_of_stock"`
	CriticalCount int          `json:"critical_count"`
}

// TransferStats summarises transfer orders
type TransferStats struct {
	TotalOrders         int             `json:"total_orders"`
	TotalQuantity       decimal.Decimal `json:"total_quantity"`
	UniqueFromLocations int             `json:"unique_from_locations"`
	UniqueToLocations   int             `json:"unique_to_locations"`
	UniqueLocations     int             `json:"unique_locations"`
	TransferredCount    int             `json:"transferred_count"`
	Locations           []string        `json:"locations"`
}

// StockStats summarises the stock by location rows
type StockStats struct {
	TotalItems      int             `json:"total_items"`
	TotalStock      decimal.Decimal `json:"total_stock"`
	UniqueLocations int             `json:"unique_locations"`
	MultiLocation   int             `json:"multi_location"`
}
