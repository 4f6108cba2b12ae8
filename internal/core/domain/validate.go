// internal/core/domain/validate.go
package domain

import (
	"fmt"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Rejection describes a record dropped from a collection
type Rejection struct {
	Index  int        `json:"index"`
	ID     string     `json:"id,omitempty"`
	Kind   RecordKind `json:"kind"`
	Reason string     `json:"reason"`
}

// ValidateRecords returns the records that carry a usable identifier.
// A record failing struct validation or repeating an earlier identifier is
// dropped and reported; relative order of the kept records is unchanged.
func ValidateRecords[R Record](records []R) ([]R, []Rejection) {
	kept := make([]R, 0, len(records))
	var rejected []Rejection
	seen := make(map[string]int, len(records))

	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			rejected = append(rejected, Rejection{
				Index:  i,
				ID:     record.RecordID(),
				Kind:   record.RecordKind(),
				Reason: err.Error(),
			})
			continue
		}

		id := record.RecordID()
		if first, dup := seen[id]; dup {
			rejected = append(rejected, Rejection{
				Index:  i,
				ID:     id,
				Kind:   record.RecordKind(),
				Reason: fmt.Sprintf("duplicate identifier, first seen at index %d", first),
			})
			continue
		}

		seen[id] = i
		kept = append(kept, record)
	}

	return kept, rejected
}
