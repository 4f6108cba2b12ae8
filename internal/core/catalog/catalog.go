// internal/core/catalog/catalog.go
package catalog

import (
	"slices"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
)

// View names
const (
	ViewItems          = "items"
	ViewCompositeItems = "composite-items"
	ViewLowStock       = "low-stock"
	ViewTransferOrders = "transfer-orders"
	ViewStockLocations = "stock-locations"
	ViewProjects       = "projects"
	ViewWorkstations   = "workstations"
)

// LocationPrefix tags the dynamic per-location categories
const LocationPrefix = "location:"

// Views lists every view name
func Views() []string {
	return []string{
		ViewItems,
		ViewCompositeItems,
		ViewLowStock,
		ViewTransferOrders,
		ViewStockLocations,
		ViewProjects,
		ViewWorkstations,
	}
}

// IsView reports whether name is a known view
func IsView(name string) bool {
	return slices.Contains(Views(), name)
}

var byName = listview.SortState{Key: domain.KeyName, Direction: listview.DirectionAsc}

// stocked records carry a derived stock status
type stocked interface {
	domain.Record
	StockStatus() domain.StockStatus
}

func stockCategories[R stocked]() []listview.Category[R] {
	labels := map[domain.StockStatus]string{
		domain.StatusInStock:    "In Stock",
		domain.StatusLowStock:   "Low Stock",
		domain.StatusOutOfStock: "Out of Stock",
	}

	categories := make([]listview.Category[R], 0, len(labels))
	for _, status := range domain.StockStatuses() {
		categories = append(categories, listview.Category[R]{
			Name:  string(status),
			Label: labels[status],
			Match: func(r R) bool { return r.StockStatus() == status },
		})
	}
	return categories
}

func inventoryFields() map[domain.SortKey]domain.FieldKind {
	return map[domain.SortKey]domain.FieldKind{
		domain.KeyName:             domain.KindString,
		domain.KeySKU:              domain.KindString,
		domain.KeyStockOnHand:      domain.KindNumber,
		domain.KeyAvailableStock:   domain.KindNumber,
		domain.KeyRate:             domain.KindNumber,
		domain.KeyStatus:           domain.KindString,
		domain.KeyLastModifiedTime: domain.KindTime,
		domain.KeyCreatedTime:      domain.KindTime,
	}
}

func inventoryColumns[R domain.InventoryRecord]() []listview.Column[R] {
	return []listview.Column[R]{
		{Header: "Name", Width: 32, Value: func(r R) string { return r.Details().Name }},
		{Header: "SKU", Width: 16, Value: func(r R) string { return r.Details().SKU }},
		{Header: "Unit", Width: 8, Value: func(r R) string { return r.Details().Unit }},
		{Header: "Stock On Hand", Width: 14, Value: func(r R) string { return r.StockLevel().String() }},
		{Header: "Available Stock", Width: 14, Value: func(r R) string { return r.Details().AvailableStock.String() }},
		{Header: "Rate", Width: 12, Value: func(r R) string { return r.Details().Rate.StringFixed(2) }},
		{Header: "Status", Width: 10, Value: func(r R) string { return r.Details().Status }},
		{Header: "Stock Status", Width: 14, Value: func(r R) string { return string(r.StockStatus()) }},
		{Header: "Last Modified", Width: 22, Value: func(r R) string { return r.Details().LastModifiedTime }},
	}
}

func inventorySchema[R domain.InventoryRecord](view string) listview.Schema[R] {
	return listview.Schema[R]{
		View:            view,
		Fields:          inventoryFields(),
		Categories:      stockCategories[R](),
		Columns:         inventoryColumns[R](),
		DefaultSort:     byName,
		DefaultPageSize: listview.DefaultPageSize,
	}
}

// Items is the schema of the items table
func Items() listview.Schema[domain.Item] {
	return inventorySchema[domain.Item](ViewItems)
}

// CompositeItems is the schema of the composite items table
func CompositeItems() listview.Schema[domain.CompositeItem] {
	return inventorySchema[domain.CompositeItem](ViewCompositeItems)
}

// Inventory is the schema over items and composites together
func Inventory() listview.Schema[domain.InventoryRecord] {
	return inventorySchema[domain.InventoryRecord]("inventory")
}

// LowStock is the schema of the restock table over items and composites
func LowStock() listview.Schema[domain.InventoryRecord] {
	schema := Inventory()
	schema.View = ViewLowStock
	schema.Columns = append([]listview.Column[domain.InventoryRecord]{
		{Header: "Type", Width: 14, Value: func(r domain.InventoryRecord) string { return string(r.RecordKind()) }},
	}, schema.Columns...)
	return schema
}

// LowStockRecords merges items and composites needing restock, items first
func LowStockRecords(items []domain.Item, composites []domain.CompositeItem) []domain.InventoryRecord {
	all := domain.MergeInventory(items, composites)
	out := make([]domain.InventoryRecord, 0, len(all))
	for _, r := range all {
		if domain.NeedsRestock(r.StockLevel()) {
			out = append(out, r)
		}
	}
	return out
}
