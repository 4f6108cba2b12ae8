// internal/adapters/memory/source.go
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// Source is an in-memory RecordSource. A collection can be made to fail
// with Fail to exercise retrieval errors.
type Source struct {
	mu         sync.RWMutex
	items      []domain.Item
	composites []domain.CompositeItem
	orders     []domain.TransferOrder
	stock      []domain.StockLocationRow
	failures   map[domain.Collection]error
}

// Statically assert that *Source implements the RecordSource interface.
var _ ports.RecordSource = (*Source)(nil)

// Collections is the full data set a Source serves
type Collections struct {
	Items          []domain.Item
	CompositeItems []domain.CompositeItem
	TransferOrders []domain.TransferOrder
	StockRows      []domain.StockLocationRow
}

// NewSource creates a source serving data
func NewSource(data Collections) *Source {
	s := &Source{failures: make(map[domain.Collection]error)}
	s.Replace(data)
	return s
}

// NewSeededSource creates a source with a small demo data set
func NewSeededSource() *Source {
	return NewSource(SeedCollections())
}

// Replace swaps the served data
func (s *Source) Replace(data Collections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Item(nil), data.Items...)
	s.composites = append([]domain.CompositeItem(nil), data.CompositeItems...)
	s.orders = append([]domain.TransferOrder(nil), data.TransferOrders...)
	s.stock = append([]domain.StockLocationRow(nil), data.StockRows...)
}

// Fail makes fetches of collection return err. A nil err clears it.
func (s *Source) Fail(collection domain.Collection, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, collection)
		return
	}
	s.failures[collection] = err
}

func fetch[T any](ctx context.Context, s *Source, collection domain.Collection, data []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}
	if err := s.failures[collection]; err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}
	return append([]T(nil), data...), nil
}

func (s *Source) FetchItems(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fetch(ctx, s, domain.CollectionItems, s.items)
}

func (s *Source) FetchCompositeItems(ctx context.Context) ([]domain.CompositeItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fetch(ctx, s, domain.CollectionCompositeItems, s.composites)
}

func (s *Source) FetchTransferOrders(ctx context.Context) ([]domain.TransferOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fetch(ctx, s, domain.CollectionTransferOrders, s.orders)
}

func (s *Source) FetchStockByLocation(ctx context.Context) ([]domain.StockLocationRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fetch(ctx, s, domain.CollectionStockByLocation, s.stock)
}

// Ping fails only while the items collection is failing
func (s *Source) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := fetch(ctx, s, domain.CollectionItems, []domain.Item(nil))
	return err
}

func product(name, sku string, stock, rate int64, modified string) domain.Product {
	return domain.Product{
		Name:             name,
		SKU:              sku,
		Unit:             "pcs",
		Status:           "active",
		Rate:             decimal.NewFromInt(rate),
		StockOnHand:      decimal.NewFromInt(stock),
		AvailableStock:   decimal.NewFromInt(stock),
		CreatedTime:      "2024-01-02T09:00:00+0000",
		LastModifiedTime: modified,
	}
}

func location(id, name string, primary bool, stock int64) domain.ItemLocation {
	return domain.ItemLocation{
		LocationID:             id,
		LocationName:           name,
		IsPrimary:              primary,
		LocationStockOnHand:    decimal.NewFromInt(stock),
		LocationAvailableStock: decimal.NewFromInt(stock),
	}
}

// SeedCollections returns the demo data set served in memory mode
func SeedCollections() Collections {
	items := []domain.Item{
		{ItemID: "1001", Product: product("Aluminium Sheet 2mm", "ALU-2MM", 140, 5400, "2024-06-03T10:15:00+0000")},
		{ItemID: "1002", Product: product("Steel Rod 12mm", "STL-12", 8, 3200, "2024-06-04T08:00:00+0000")},
		{ItemID: "1003", Product: product("Welding Wire Spool", "WLD-SP", 0, 12500, "2024-05-28T16:40:00+0000")},
		{ItemID: "1004", Product: product("LED Panel 60x60", "LED-6060", 36, 18000, "2024-06-01T12:05:00+0000")},
		{ItemID: "1005", Product: product("Cable Tray 2m", "CBT-2M", 4, 7600, "2024-06-05T14:30:00+0000")},
		{ItemID: "1006", Product: product("Signage Vinyl Roll", "VNL-RL", 22, 26000, "2024-05-30T09:20:00+0000")},
	}
	composites := []domain.CompositeItem{
		{CompositeItemID: "2001", AssemblyType: "assembly", Product: product("Branch Signage Kit", "KIT-SGN", 3, 185000, "2024-06-02T11:00:00+0000")},
		{CompositeItemID: "2002", AssemblyType: "assembly", Product: product("Solar Mount Set", "KIT-SOL", 15, 94000, "2024-05-25T15:45:00+0000")},
	}
	orders := []domain.TransferOrder{
		{
			TransferOrderID:     "3001",
			TransferOrderNumber: "TO-00001",
			Date:                "2024-06-01",
			Description:         "Sheets for signage line",
			QuantityTransfer:    decimal.NewFromInt(40),
			QuantityTransferred: decimal.NewFromInt(40),
			FromLocationID:      "l1",
			FromLocationName:    "Main Warehouse",
			ToLocationID:        "l2",
			ToLocationName:      "Printing Station",
			Status:              "transferred",
			CreatedByName:       "Moyin Oyelohunnu",
			CreatedTime:         "2024-06-01T08:00:00+0000",
		},
		{
			TransferOrderID:     "3002",
			TransferOrderNumber: "TO-00002",
			Date:                "2024-06-04",
			Description:         "Rods for welding",
			QuantityTransfer:    decimal.NewFromInt(12),
			FromLocationID:      "l1",
			FromLocationName:    "Main Warehouse",
			ToLocationID:        "l3",
			ToLocationName:      "Welding Station",
			Status:              "in_transit",
			CreatedByName:       "Jane Smith",
			CreatedTime:         "2024-06-04T07:30:00+0000",
		},
	}
	stock := []domain.StockLocationRow{
		{
			ItemID:         "1001",
			Name:           "Aluminium Sheet 2mm",
			SKU:            "ALU-2MM",
			Unit:           "pcs",
			StockOnHand:    decimal.NewFromInt(140),
			AvailableStock: decimal.NewFromInt(140),
			Locations:      []domain.ItemLocation{location("l1", "Main Warehouse", true, 100), location("l2", "Printing Station", false, 40)},
		},
		{
			ItemID:         "1002",
			Name:           "Steel Rod 12mm",
			SKU:            "STL-12",
			Unit:           "pcs",
			StockOnHand:    decimal.NewFromInt(8),
			AvailableStock: decimal.NewFromInt(8),
			Locations:      []domain.ItemLocation{location("l3", "Welding Station", true, 8)},
		},
		{
			ItemID:         "1004",
			Name:           "LED Panel 60x60",
			SKU:            "LED-6060",
			Unit:           "pcs",
			StockOnHand:    decimal.NewFromInt(36),
			AvailableStock: decimal.NewFromInt(36),
			Locations:      []domain.ItemLocation{location("l1", "Main Warehouse", true, 30), location("l4", "Lekki Store", false, 6)},
		},
	}
	return Collections{Items: items, CompositeItems: composites, TransferOrders: orders, StockRows: stock}
}
