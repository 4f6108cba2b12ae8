// internal/core/services/dashboard.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ammerola/meta4-erp/internal/core/catalog"
	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// RecentItemsLimit is the length of the recently modified list
const RecentItemsLimit = 10

// DashboardService computes dashboard numbers from the record source
type DashboardService struct {
	source ports.RecordSource
	logger *slog.Logger
}

// Statically assert that *DashboardService implements the DashboardService interface.
var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(source ports.RecordSource, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		source: source,
		logger: logger.With(slog.String("service", "dashboard")),
	}
}

func (s *DashboardService) inventory(ctx context.Context) ([]domain.Item, []domain.CompositeItem, error) {
	items, composites, err := fetchInventory(ctx, s.source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	items, _ = validateRecords(items, s.logger)
	composites, _ = validateRecords(composites, s.logger)
	return items, composites, nil
}

// Summary returns totals, stock counts, stock value and the recently modified
// records. Stock value covers plain items only.
func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	items, composites, err := s.inventory(ctx)
	if err != nil {
		return nil, err
	}

	all := domain.MergeInventory(items, composites)
	summary := &ports.DashboardSummary{
		TotalItems:      len(items),
		TotalComposites: len(composites),
		StockValue:      decimal.Zero,
	}

	for _, r := range all {
		switch r.StockStatus() {
		case domain.StatusLowStock:
			summary.LowStockCount++
		case domain.StatusOutOfStock:
			summary.OutOfStockCount++
		}
	}
	for _, it := range items {
		summary.StockValue = summary.StockValue.Add(it.StockValue())
	}

	recent, err := listview.Sort(all, catalog.Inventory(), listview.SortState{
		Key:       domain.KeyLastModifiedTime,
		Direction: listview.DirectionDesc,
	})
	if err != nil {
		return nil, err
	}
	summary.RecentItems = toRecentItems(recent[:min(RecentItemsLimit, len(recent))])

	s.logger.DebugContext(ctx, "computed dashboard summary",
		slog.Int("items", summary.TotalItems),
		slog.Int("composites", summary.TotalComposites))

	return summary, nil
}

// LowStock lists records at or below the low stock threshold, lowest stock first
func (s *DashboardService) LowStock(ctx context.Context) (*ports.LowStockReport, error) {
	items, composites, err := s.inventory(ctx)
	if err != nil {
		return nil, err
	}

	records, err := listview.Sort(catalog.LowStockRecords(items, composites), catalog.Inventory(), listview.SortState{
		Key:       domain.KeyStockOnHand,
		Direction: listview.DirectionAsc,
	})
	if err != nil {
		return nil, err
	}

	report := &ports.LowStockReport{
		Items:      toRecentItems(records),
		TotalCount: len(records),
	}
	for _, r := range records {
		switch {
		case r.StockStatus() == domain.StatusOutOfStock:
			report.OutOfStock++
		case domain.IsCriticalLow(r.StockLevel()):
			report.CriticalCount++
		}
	}
	return report, nil
}

// TransferStats summarises the transfer orders
func (s *DashboardService) TransferStats(ctx context.Context) (*ports.TransferStats, error) {
	orders, err := s.source.FetchTransferOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfer orders: %w", err)
	}
	orders, _ = validateRecords(orders, s.logger)

	locations := domain.TransferLocations(orders)
	stats := &ports.TransferStats{
		TotalOrders:     len(orders),
		TotalQuantity:   decimal.Zero,
		UniqueLocations: len(locations),
		Locations:       locations,
	}
	from := make(map[string]struct{})
	to := make(map[string]struct{})
	for _, o := range orders {
		from[o.FromLocationName] = struct{}{}
		to[o.ToLocationName] = struct{}{}
		stats.TotalQuantity = stats.TotalQuantity.Add(o.QuantityTransfer)
		if strings.EqualFold(o.Status, domain.TransferStatusTransferred) {
			stats.TransferredCount++
		}
	}
	stats.UniqueFromLocations, stats.UniqueToLocations = len(from), len(to)
	return stats, nil
}

// StockStats summarises the stock by location rows. Locations are counted
// by name.
func (s *DashboardService) StockStats(ctx context.Context) (*ports.StockStats, error) {
	rows, err := s.stockRows(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.StockStats{
		TotalItems: len(rows),
		TotalStock: decimal.Zero,
	}
	seen := make(map[string]struct{})
	for _, row := range rows {
		stats.TotalStock = stats.TotalStock.Add(row.StockOnHand)
		if len(row.Locations) > 1 {
			stats.MultiLocation++
		}
		for _, loc := range row.Locations {
			seen[loc.LocationName] = struct{}{}
		}
	}
	stats.UniqueLocations = len(seen)
	return stats, nil
}

// Locations aggregates stock rows per location, largest total stock first.
// search narrows by location name.
func (s *DashboardService) Locations(ctx context.Context, search string) ([]domain.LocationSummary, error) {
	rows, err := s.stockRows(ctx)
	if err != nil {
		return nil, err
	}

	summaries := summarizeLocations(rows)
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.LocationSummary, 0, len(summaries))
	for _, sum := range summaries {
		if term != "" && !listview.MatchesSearch([]string{sum.LocationName}, term) {
			continue
		}
		sum.Items = nil
		out = append(out, sum)
	}
	return out, nil
}

// Location returns one location with its items. search narrows items by name or SKU.
func (s *DashboardService) Location(ctx context.Context, locationID, search string) (*domain.LocationSummary, error) {
	rows, err := s.stockRows(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	for _, sum := range summarizeLocations(rows) {
		if sum.LocationID != locationID {
			continue
		}
		if term != "" {
			sum.Items = slices.DeleteFunc(sum.Items, func(it domain.LocationItem) bool {
				return !listview.MatchesSearch([]string{it.Name, it.SKU}, term)
			})
		}
		return &sum, nil
	}
	return nil, fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
}

func (s *DashboardService) stockRows(ctx context.Context) ([]domain.StockLocationRow, error) {
	rows, err := s.source.FetchStockByLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock by location: %w", err)
	}
	rows, _ = validateRecords(rows, s.logger)
	return rows, nil
}

func locationKey(loc domain.ItemLocation) string {
	if loc.LocationID != "" {
		return loc.LocationID
	}
	return loc.LocationName
}

// summarizeLocations groups rows by location. Each row counts once per
// location it is stocked at, with that location's stock on hand.
func summarizeLocations(rows []domain.StockLocationRow) []domain.LocationSummary {
	index := make(map[string]int)
	var out []domain.LocationSummary

	for _, row := range rows {
		for _, loc := range row.Locations {
			key := locationKey(loc)
			i, ok := index[key]
			if !ok {
				i = len(out)
				index[key] = i
				out = append(out, domain.LocationSummary{
					LocationID:   loc.LocationID,
					LocationName: loc.LocationName,
					LocationType: domain.LocationTypeForName(loc.LocationName),
					IsPrimary:    loc.IsPrimary,
					TotalStock:   decimal.Zero,
				})
			}

			sum := &out[i]
			sum.TotalItems++
			sum.TotalStock = sum.TotalStock.Add(loc.LocationStockOnHand)
			sum.Items = append(sum.Items, domain.LocationItem{
				ItemID:         row.ItemID,
				Name:           row.Name,
				SKU:            row.SKU,
				StockOnHand:    loc.LocationStockOnHand,
				AvailableStock: loc.LocationAvailableStock,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b domain.LocationSummary) int {
		return b.TotalStock.Cmp(a.TotalStock)
	})
	return out
}

func toRecentItems(records []domain.InventoryRecord) []ports.RecentItem {
	out := make([]ports.RecentItem, 0, len(records))
	for _, r := range records {
		p := r.Details()
		out = append(out, ports.RecentItem{
			ID:               r.RecordID(),
			Kind:             r.RecordKind(),
			Name:             p.Name,
			SKU:              p.SKU,
			StockOnHand:      p.StockOnHand,
			StockStatus:      r.StockStatus(),
			LastModifiedTime: p.LastModifiedTime,
		})
	}
	return out
}
