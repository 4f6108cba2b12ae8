// internal/core/listview/helpers_test.go
package listview_test

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
)

func testSchema() listview.Schema[domain.Item] {
	byStatus := func(status domain.StockStatus) func(domain.Item) bool {
		return func(i domain.Item) bool { return i.StockStatus() == status }
	}

	return listview.Schema[domain.Item]{
		View: "items",
		Fields: map[domain.SortKey]domain.FieldKind{
			domain.KeyName:             domain.KindString,
			domain.KeyStockOnHand:      domain.KindNumber,
			domain.KeyStatus:           domain.KindString,
			domain.KeyLastModifiedTime: domain.KindTime,
		},
		Categories: []listview.Category[domain.Item]{
			{Name: "in-stock", Label: "In Stock", Match: byStatus(domain.StatusInStock)},
			{Name: "low-stock", Label: "Low Stock", Match: byStatus(domain.StatusLowStock)},
			{Name: "out-of-stock", Label: "Out of Stock", Match: byStatus(domain.StatusOutOfStock)},
		},
		Dynamic: &listview.DynamicCategory[domain.Item]{
			Prefix: "brand:",
			Label:  "Brand",
			Match:  func(i domain.Item, brand string) bool { return i.Brand == brand },
			Options: func(items []domain.Item) []string {
				var brands []string
				for _, i := range items {
					if i.Brand != "" && !slices.Contains(brands, i.Brand) {
						brands = append(brands, i.Brand)
					}
				}
				slices.Sort(brands)
				return brands
			},
		},
		DefaultSort:     listview.SortState{Direction: listview.DirectionNone},
		DefaultPageSize: 10,
	}
}

func newItem(id, name string, stock int64) domain.Item {
	return domain.Item{
		ItemID: id,
		Product: domain.Product{
			Name:        name,
			SKU:         "SKU-" + id,
			StockOnHand: decimal.NewFromInt(stock),
			Rate:        decimal.NewFromInt(100),
		},
	}
}

// numberedItems builds n items with names in reverse order of their ids
func numberedItems(n int) []domain.Item {
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, newItem(
			fmt.Sprintf("item-%03d", i),
			fmt.Sprintf("Part %03d", n-i),
			int64(i%20),
		))
	}
	return items
}

func ids[R domain.Record](records []R) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.RecordID())
	}
	return out
}
