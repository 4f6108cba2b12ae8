// internal/core/domain/item.go
package domain

import (
	"github.com/shopspring/decimal"
)

// Sort keys shared by items and composite items
const (
	KeyName             SortKey = "name"
	KeySKU              SortKey = "sku"
	KeyStockOnHand      SortKey = "stock_on_hand"
	KeyAvailableStock   SortKey = "available_stock"
	KeyRate             SortKey = "rate"
	KeyStatus           SortKey = "status"
	KeyLastModifiedTime SortKey = "last_modified_time"
	KeyCreatedTime      SortKey = "created_time"
)

// Product holds the attributes items and composite items share
type Product struct {
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Unit             string          `json:"unit"`
	Status           string          `json:"status"`
	Description      string          `json:"description"`
	Brand            string          `json:"brand,omitempty"`
	Manufacturer     string          `json:"manufacturer,omitempty"`
	ItemType         string          `json:"item_type,omitempty"`
	ProductType      string          `json:"product_type,omitempty"`
	Rate             decimal.Decimal `json:"rate"`
	PurchaseRate     decimal.Decimal `json:"purchase_rate"`
	StockOnHand      decimal.Decimal `json:"stock_on_hand"`
	AvailableStock   decimal.Decimal `json:"available_stock"`
	ReorderLevel     string          `json:"reorder_level,omitempty"`
	CreatedTime      string          `json:"created_time"`
	LastModifiedTime string          `json:"last_modified_time"`
}

// StockLevel returns stock on hand
func (p Product) StockLevel() decimal.Decimal {
	return p.StockOnHand
}

// StockStatus derives the stock bucket from stock on hand
func (p Product) StockStatus() StockStatus {
	return StatusForStock(p.StockOnHand)
}

// StockValue is stock times rate, zero when nothing is on hand
func (p Product) StockValue() decimal.Decimal {
	if !p.StockOnHand.IsPositive() {
		return decimal.Zero
	}
	return p.StockOnHand.Mul(p.Rate)
}

// Details returns the shared product attributes
func (p Product) Details() Product {
	return p
}

// DisplayName returns the product name
func (p Product) DisplayName() string {
	return p.Name
}

// SearchFields matches on name and SKU
func (p Product) SearchFields() []string {
	return []string{p.Name, p.SKU}
}

func (p Product) field(key SortKey) (FieldValue, bool) {
	switch key {
	case KeyName:
		return StringValue(p.Name), true
	case KeySKU:
		return StringValue(p.SKU), true
	case KeyStockOnHand:
		return NumberValue(p.StockOnHand), true
	case KeyAvailableStock:
		return NumberValue(p.AvailableStock), true
	case KeyRate:
		return NumberValue(p.Rate), true
	case KeyStatus:
		return StringValue(p.Status), true
	case KeyLastModifiedTime:
		return TimestampValue(p.LastModifiedTime), true
	case KeyCreatedTime:
		return TimestampValue(p.CreatedTime), true
	}
	return FieldValue{}, false
}

// Item is a single inventory item
type Item struct {
	ItemID string `json:"item_id" validate:"required"`
	Product
}

func (i Item) RecordID() string       { return i.ItemID }
func (i Item) RecordKind() RecordKind { return KindItem }

func (i Item) Field(key SortKey) (FieldValue, bool) {
	return i.field(key)
}

// CompositeItem is an assembled product. It carries the same attributes
// as Item under a different identifier field.
type CompositeItem struct {
	CompositeItemID string `json:"composite_item_id" validate:"required"`
	AssemblyType    string `json:"assembly_type,omitempty"`
	Product
}

func (c CompositeItem) RecordID() string       { return c.CompositeItemID }
func (c CompositeItem) RecordKind() RecordKind { return KindCompositeItem }

func (c CompositeItem) Field(key SortKey) (FieldValue, bool) {
	return c.field(key)
}

// InventoryRecord is an item or a composite item
type InventoryRecord interface {
	Record
	Details() Product
	DisplayName() string
	StockLevel() decimal.Decimal
	StockStatus() StockStatus
	StockValue() decimal.Decimal
}

var (
	_ InventoryRecord = Item{}
	_ InventoryRecord = CompositeItem{}
)

// MergeInventory concatenates items and composite items, items first
func MergeInventory(items []Item, composites []CompositeItem) []InventoryRecord {
	all := make([]InventoryRecord, 0, len(items)+len(composites))
	for _, item := range items {
		all = append(all, item)
	}
	for _, composite := range composites {
		all = append(all, composite)
	}
	return all
}
