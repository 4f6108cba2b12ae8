// internal/core/listview/schema.go
package listview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// CategoryAll matches every record
const CategoryAll = "all"

// Category is a named status bucket with its predicate
type Category[R domain.Record] struct {
	Name  string
	Label string
	Match func(R) bool
}

// DynamicCategory resolves parameterised categories such as "location:<name>".
// Options lists the values currently present in a collection.
type DynamicCategory[R domain.Record] struct {
	Prefix  string
	Label   string
	Match   func(record R, value string) bool
	Options func(records []R) []string
}

// Column is one exported column of a view
type Column[R domain.Record] struct {
	Header string
	Width  float64
	Value  func(R) string
}

// Schema configures the pipeline for one record type
type Schema[R domain.Record] struct {
	View            string
	Fields          map[domain.SortKey]domain.FieldKind
	Categories      []Category[R]
	Dynamic         *DynamicCategory[R]
	Columns         []Column[R]
	DefaultSort     SortState
	DefaultPageSize int
}

// FieldKind returns the declared kind of a sort key
func (s Schema[R]) FieldKind(key domain.SortKey) (domain.FieldKind, bool) {
	kind, ok := s.Fields[key]
	return kind, ok
}

// SortKeys returns the sortable keys in lexical order
func (s Schema[R]) SortKeys() []domain.SortKey {
	keys := make([]domain.SortKey, 0, len(s.Fields))
	for key := range s.Fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// CategoryNames returns "all" followed by the static categories
func (s Schema[R]) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories)+1)
	names = append(names, CategoryAll)
	for _, c := range s.Categories {
		names = append(names, c.Name)
	}
	return names
}

// CategoryOptions returns the dynamic category tags available for records
func (s Schema[R]) CategoryOptions(records []R) []string {
	if s.Dynamic == nil || s.Dynamic.Options == nil {
		return nil
	}
	values := s.Dynamic.Options(records)
	tags := make([]string, 0, len(values))
	for _, v := range values {
		tags = append(tags, s.Dynamic.Prefix+v)
	}
	return tags
}

// Predicate resolves a category tag. The empty tag and "all" match everything.
func (s Schema[R]) Predicate(category string) (func(R) bool, error) {
	if category == "" || category == CategoryAll {
		return nil, nil
	}

	for _, c := range s.Categories {
		if c.Name == category {
			return c.Match, nil
		}
	}

	if s.Dynamic != nil && strings.HasPrefix(category, s.Dynamic.Prefix) {
		value := strings.TrimPrefix(category, s.Dynamic.Prefix)
		if value != "" {
			match := s.Dynamic.Match
			return func(r R) bool { return match(r, value) }, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
}

// DefaultState is the controller state on mount
func (s Schema[R]) DefaultState() State {
	size := s.DefaultPageSize
	if size == 0 {
		size = DefaultPageSize
	}
	return State{
		Category: CategoryAll,
		Sort:     s.DefaultSort,
		PageSize: size,
		Page:     1,
	}
}

// ValidateState checks a state against the schema
func (s Schema[R]) ValidateState(state State) error {
	if _, err := s.Predicate(state.Category); err != nil {
		return err
	}
	if err := s.validateSort(state.Sort); err != nil {
		return err
	}
	if !ValidPageSize(state.PageSize) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPageSize, state.PageSize)
	}
	if state.Page < 1 {
		return fmt.Errorf("%w: %d", domain.ErrPageOutOfRange, state.Page)
	}
	return nil
}

func (s Schema[R]) validateSort(sort SortState) error {
	if sort.Direction == "" {
		sort.Direction = DirectionNone
	}
	if !sort.Direction.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDirection, sort.Direction)
	}
	if sort.Key == "" {
		if sort.Direction != DirectionNone {
			return fmt.Errorf("%w: direction without key", domain.ErrUnknownSortKey)
		}
		return nil
	}
	if _, ok := s.Fields[sort.Key]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSortKey, sort.Key)
	}
	return nil
}
