// internal/core/listview/resolver.go
package listview

import (
	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// Resolve returns the record's value for key coerced to kind.
// A missing key, a nil record or a value of another kind resolves to the
// kind's zero value so one malformed record cannot abort a sort.
func Resolve[R domain.Record](record R, key domain.SortKey, kind domain.FieldKind) domain.FieldValue {
	if any(record) == nil {
		return domain.ZeroValue(kind)
	}

	value, ok := record.Field(key)
	if !ok || value.Kind != kind {
		return domain.ZeroValue(kind)
	}
	return value
}
