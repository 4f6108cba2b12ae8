// internal/core/listview/filter.go
package listview

import (
	"strings"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// Filter keeps the records matching both the search text and the category.
// Input order is preserved and the input slice is never modified.
func Filter[R domain.Record](records []R, schema Schema[R], search, category string) ([]R, error) {
	match, err := schema.Predicate(category)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]R, 0, len(records))
	for _, r := range records {
		if any(r) == nil {
			continue
		}
		if term != "" && !MatchesSearch(r.SearchFields(), term) {
			continue
		}
		if match != nil && !match(r) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// MatchesSearch reports whether any field contains term as a
// case-insensitive substring. term must already be lower-cased.
func MatchesSearch(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
