// internal/core/domain/stock.go
package domain

import "github.com/shopspring/decimal"

// StockStatus is the stock bucket derived from stock on hand
type StockStatus string

const (
	StatusInStock    StockStatus = "in-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
)

var (
	// LowStockThreshold is the inclusive upper bound of low stock
	LowStockThreshold = decimal.NewFromInt(10)
	// CriticalStockThreshold is the inclusive upper bound of critically low stock
	CriticalStockThreshold = decimal.NewFromInt(5)
)

// StatusForStock buckets a stock level: out-of-stock at or below zero,
// low-stock up to and including the threshold, in-stock above it.
func StatusForStock(stock decimal.Decimal) StockStatus {
	switch {
	case !stock.IsPositive():
		return StatusOutOfStock
	case stock.LessThanOrEqual(LowStockThreshold):
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsCriticalLow reports 0 < stock <= 5
func IsCriticalLow(stock decimal.Decimal) bool {
	return stock.IsPositive() && stock.LessThanOrEqual(CriticalStockThreshold)
}

// NeedsRestock reports stock <= 10, out-of-stock included
func NeedsRestock(stock decimal.Decimal) bool {
	return stock.LessThanOrEqual(LowStockThreshold)
}

// StockStatuses lists the buckets in display order
func StockStatuses() []StockStatus {
	return []StockStatus{StatusInStock, StatusLowStock, StatusOutOfStock}
}
