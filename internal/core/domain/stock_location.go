// internal/core/domain/stock_location.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// KeyLocations sorts stock rows by the number of locations holding the item
const KeyLocations SortKey = "locations"

// ItemLocation is the stock an item holds at one location
type ItemLocation struct {
	LocationID             string          `json:"location_id"`
	LocationName           string          `json:"location_name"`
	IsPrimary              bool            `json:"is_primary"`
	LocationStockOnHand    decimal.Decimal `json:"location_stock_on_hand"`
	LocationAvailableStock decimal.Decimal `json:"location_available_stock"`
}

// StockLocationRow is an item with its per-location stock breakdown
type StockLocationRow struct {
	ItemID         string          `json:"item_id" validate:"required"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Unit           string          `json:"unit"`
	StockOnHand    decimal.Decimal `json:"stock_on_hand"`
	AvailableStock decimal.Decimal `json:"available_stock"`
	Locations      []ItemLocation  `json:"locations"`
}

func (s StockLocationRow) RecordID() string       { return s.ItemID }
func (s StockLocationRow) RecordKind() RecordKind { return KindStockLocation }

// SearchFields matches on name, SKU and every location name
func (s StockLocationRow) SearchFields() []string {
	fields := make([]string, 0, 2+len(s.Locations))
	fields = append(fields, s.Name, s.SKU)
	for _, loc := range s.Locations {
		fields = append(fields, loc.LocationName)
	}
	return fields
}

func (s StockLocationRow) Field(key SortKey) (FieldValue, bool) {
	switch key {
	case KeyName:
		return StringValue(s.Name), true
	case KeySKU:
		return StringValue(s.SKU), true
	case KeyStockOnHand:
		return NumberValue(s.StockOnHand), true
	case KeyAvailableStock:
		return NumberValue(s.AvailableStock), true
	case KeyLocations:
		return IntValue(int64(len(s.Locations))), true
	}
	return FieldValue{}, false
}

// HasLocation reports whether the item is stocked at the named location
func (s StockLocationRow) HasLocation(name string) bool {
	for _, loc := range s.Locations {
		if loc.LocationName == name {
			return true
		}
	}
	return false
}

// LocationType classifies a location as a store or a workstation
type LocationType string

const (
	LocationStore       LocationType = "store"
	LocationWorkstation LocationType = "workstation"
)

var workstationKeywords = []string{"station", "sanding", "coating", "printing", "assembly"}

// LocationTypeForName classifies by keyword in the location name
func LocationTypeForName(name string) LocationType {
	lower := strings.ToLower(name)
	for _, kw := range workstationKeywords {
		if strings.Contains(lower, kw) {
			return LocationWorkstation
		}
	}
	return LocationStore
}

// LocationItem is one item row inside a location summary
type LocationItem struct {
	ItemID         string          `json:"item_id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	StockOnHand    decimal.Decimal `json:"stock_on_hand"`
	AvailableStock decimal.Decimal `json:"available_stock"`
}

// LocationSummary aggregates stock rows by location
type LocationSummary struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	LocationType LocationType    `json:"location_type"`
	IsPrimary    bool            `json:"is_primary"`
	TotalItems   int             `json:"total_items"`
	TotalStock   decimal.Decimal `json:"total_stock"`
	Items        []LocationItem  `json:"items,omitempty"`
}
