// internal/core/catalog/transfers.go
package catalog

import (
	"slices"
	"strings"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
)

// TransferOrders is the schema of the transfer orders table. Orders match a
// location category when they move stock from or to it.
func TransferOrders() listview.Schema[domain.TransferOrder] {
	return listview.Schema[domain.TransferOrder]{
		View: ViewTransferOrders,
		Fields: map[domain.SortKey]domain.FieldKind{
			domain.KeyTransferOrderNumber: domain.KindString,
			domain.KeyDate:                domain.KindTime,
			domain.KeyQuantityTransfer:    domain.KindNumber,
			domain.KeyFromLocationName:    domain.KindString,
			domain.KeyToLocationName:      domain.KindString,
			domain.KeyStatus:              domain.KindString,
			domain.KeyCreatedByName:       domain.KindString,
			domain.KeyLastModifiedTime:    domain.KindTime,
		},
		Dynamic: &listview.DynamicCategory[domain.TransferOrder]{
			Prefix:  LocationPrefix,
			Label:   "Location",
			Match:   domain.TransferOrder.InvolvesLocation,
			Options: domain.TransferLocations,
		},
		Columns: []listview.Column[domain.TransferOrder]{
			{Header: "Transfer Order #", Width: 18, Value: func(t domain.TransferOrder) string { return t.TransferOrderNumber }},
			{Header: "Date", Width: 14, Value: func(t domain.TransferOrder) string { return t.Date }},
			{Header: "Description", Width: 32, Value: func(t domain.TransferOrder) string { return t.Description }},
			{Header: "From", Width: 22, Value: func(t domain.TransferOrder) string { return t.FromLocationName }},
			{Header: "To", Width: 22, Value: func(t domain.TransferOrder) string { return t.ToLocationName }},
			{Header: "Quantity", Width: 10, Value: func(t domain.TransferOrder) string { return t.QuantityTransfer.String() }},
			{Header: "Transferred", Width: 12, Value: func(t domain.TransferOrder) string { return t.QuantityTransferred.String() }},
			{Header: "Status", Width: 12, Value: func(t domain.TransferOrder) string { return t.Status }},
			{Header: "Created By", Width: 20, Value: func(t domain.TransferOrder) string { return t.CreatedByName }},
		},
		DefaultSort:     listview.SortState{Key: domain.KeyDate, Direction: listview.DirectionDesc},
		DefaultPageSize: listview.DefaultPageSize,
	}
}

// StockLocations is the schema of the stock by location table
func StockLocations() listview.Schema[domain.StockLocationRow] {
	return listview.Schema[domain.StockLocationRow]{
		View: ViewStockLocations,
		Fields: map[domain.SortKey]domain.FieldKind{
			domain.KeyName:           domain.KindString,
			domain.KeySKU:            domain.KindString,
			domain.KeyStockOnHand:    domain.KindNumber,
			domain.KeyAvailableStock: domain.KindNumber,
			domain.KeyLocations:      domain.KindNumber,
		},
		Dynamic: &listview.DynamicCategory[domain.StockLocationRow]{
			Prefix:  LocationPrefix,
			Label:   "Location",
			Match:   domain.StockLocationRow.HasLocation,
			Options: StockLocationNames,
		},
		Columns: []listview.Column[domain.StockLocationRow]{
			{Header: "Name", Width: 32, Value: func(r domain.StockLocationRow) string { return r.Name }},
			{Header: "SKU", Width: 16, Value: func(r domain.StockLocationRow) string { return r.SKU }},
			{Header: "Unit", Width: 8, Value: func(r domain.StockLocationRow) string { return r.Unit }},
			{Header: "Stock On Hand", Width: 14, Value: func(r domain.StockLocationRow) string { return r.StockOnHand.String() }},
			{Header: "Available Stock", Width: 14, Value: func(r domain.StockLocationRow) string { return r.AvailableStock.String() }},
			{Header: "Locations", Width: 40, Value: locationList},
		},
		DefaultSort:     byName,
		DefaultPageSize: listview.DefaultPageSize,
	}
}

// StockLocationNames returns the sorted unique location names across rows
func StockLocationNames(rows []domain.StockLocationRow) []string {
	var names []string
	for _, row := range rows {
		for _, loc := range row.Locations {
			if loc.LocationName != "" && !slices.Contains(names, loc.LocationName) {
				names = append(names, loc.LocationName)
			}
		}
	}
	slices.Sort(names)
	return names
}

func locationList(r domain.StockLocationRow) string {
	parts := make([]string, 0, len(r.Locations))
	for _, loc := range r.Locations {
		parts = append(parts, loc.LocationName+" ("+loc.LocationStockOnHand.String()+")")
	}
	return strings.Join(parts, "; ")
}
