// internal/core/domain/record.go
package domain

// RecordKind tags the concrete variant behind a Record
type RecordKind string

const (
	KindItem          RecordKind = "item"
	KindCompositeItem RecordKind = "composite_item"
	KindTransferOrder RecordKind = "transfer_order"
	KindStockLocation RecordKind = "stock_location"
	KindProject       RecordKind = "project"
	KindWorkstation   RecordKind = "workstation"
)

// Record is the accessor contract every list row implements.
// Implementations must not mutate themselves from these methods.
type Record interface {
	// RecordID returns the identifier unique within one collection
	RecordID() string
	RecordKind() RecordKind
	// SearchFields returns the text attributes free-text search looks at
	SearchFields() []string
	// Field resolves a sort/filter key. ok is false for unknown keys.
	Field(key SortKey) (value FieldValue, ok bool)
}

// Collection identifies one upstream record collection
type Collection string

const (
	CollectionItems           Collection = "items"
	CollectionCompositeItems  Collection = "composite-items"
	CollectionTransferOrders  Collection = "transfer-orders"
	CollectionStockByLocation Collection = "items-with-stock"
)

// Collections lists every upstream collection
func Collections() []Collection {
	return []Collection{
		CollectionItems,
		CollectionCompositeItems,
		CollectionTransferOrders,
		CollectionStockByLocation,
	}
}

// ParseCollection validates a collection name
func ParseCollection(name string) (Collection, error) {
	for _, c := range Collections() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", ErrUnknownCollection
}
