// internal/core/domain/transfer_order.go
package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

const (
	KeyTransferOrderNumber SortKey = "transfer_order_number"
	KeyDate                SortKey = "date"
	KeyQuantityTransfer    SortKey = "quantity_transfer"
	KeyFromLocationName    SortKey = "from_location_name"
	KeyToLocationName      SortKey = "to_location_name"
	KeyCreatedByName       SortKey = "created_by_name"
)

// TransferStatusTransferred marks a completed transfer
const TransferStatusTransferred = "transferred"

// TransferOrder moves stock from one location to another
type TransferOrder struct {
	TransferOrderID     string          `json:"transfer_order_id" validate:"required"`
	TransferOrderNumber string          `json:"transfer_order_number"`
	Date                string          `json:"date"`
	Description         string          `json:"description"`
	QuantityTransfer    decimal.Decimal `json:"quantity_transfer"`
	QuantityTransferred decimal.Decimal `json:"quantity_transferred"`
	FromLocationID      string          `json:"from_location_id"`
	FromLocationName    string          `json:"from_location_name"`
	ToLocationID        string          `json:"to_location_id"`
	ToLocationName      string          `json:"to_location_name"`
	Status              string          `json:"status"`
	CreatedByID         string          `json:"created_by_id"`
	CreatedByName       string          `json:"created_by_name"`
	CreatedTime         string          `json:"created_time"`
	LastModifiedTime    string          `json:"last_modified_time"`
}

func (t TransferOrder) RecordID() string       { return t.TransferOrderID }
func (t TransferOrder) RecordKind() RecordKind { return KindTransferOrder }

func (t TransferOrder) SearchFields() []string {
	return []string{
		t.TransferOrderNumber,
		t.Description,
		t.FromLocationName,
		t.ToLocationName,
		t.CreatedByName,
	}
}

func (t TransferOrder) Field(key SortKey) (FieldValue, bool) {
	switch key {
	case KeyTransferOrderNumber:
		return StringValue(t.TransferOrderNumber), true
	case KeyDate:
		return TimestampValue(t.Date), true
	case KeyQuantityTransfer:
		return NumberValue(t.QuantityTransfer), true
	case KeyFromLocationName:
		return StringValue(t.FromLocationName), true
	case KeyToLocationName:
		return StringValue(t.ToLocationName), true
	case KeyStatus:
		return StringValue(t.Status), true
	case KeyCreatedByName:
		return StringValue(t.CreatedByName), true
	case KeyLastModifiedTime:
		return TimestampValue(t.LastModifiedTime), true
	}
	return FieldValue{}, false
}

// InvolvesLocation reports whether the order moves stock from or to name
func (t TransferOrder) InvolvesLocation(name string) bool {
	return t.FromLocationName == name || t.ToLocationName == name
}

// TransferLocations returns the sorted, de-duplicated from and to location names
func TransferLocations(orders []TransferOrder) []string {
	seen := make(map[string]struct{}, len(orders)*2)
	names := make([]string, 0, len(orders)*2)
	for _, o := range orders {
		for _, name := range []string{o.FromLocationName, o.ToLocationName} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
