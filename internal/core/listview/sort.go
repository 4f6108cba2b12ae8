// internal/core/listview/sort.go
package listview

import (
	"fmt"
	"slices"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// Direction is the active sort direction
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// Valid reports whether d is one of the three directions
func (d Direction) Valid() bool {
	switch d {
	case DirectionNone, DirectionAsc, DirectionDesc:
		return true
	}
	return false
}

// ParseDirection accepts asc, desc, none and the empty string (none)
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return DirectionNone, nil
	}
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDirection, s)
	}
	return d, nil
}

// SortState is the active key and direction
type SortState struct {
	Key       domain.SortKey `json:"key,omitempty"`
	Direction Direction      `json:"direction"`
}

// Toggle returns the state after selecting key. A new key starts ascending;
// the active key cycles ascending, descending, none.
func (s SortState) Toggle(key domain.SortKey) SortState {
	if s.Key != key {
		return SortState{Key: key, Direction: DirectionAsc}
	}

	switch s.Direction {
	case DirectionAsc:
		return SortState{Key: key, Direction: DirectionDesc}
	case DirectionDesc:
		return SortState{Key: key, Direction: DirectionNone}
	default:
		return SortState{Key: key, Direction: DirectionAsc}
	}
}

// Active reports whether the state orders records
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != DirectionNone
}

// Sort returns a sorted copy of records. Ties keep their input order in
// both directions: descending negates the comparator inside the same
// stable sort rather than reversing the ascending result.
func Sort[R domain.Record](records []R, schema Schema[R], state SortState) ([]R, error) {
	out := slices.Clone(records)
	if !state.Active() {
		return out, nil
	}

	kind, ok := schema.FieldKind(state.Key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSortKey, state.Key)
	}

	sign := 1
	if state.Direction == DirectionDesc {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b R) int {
		return sign * Resolve(a, state.Key, kind).Compare(Resolve(b, state.Key, kind))
	})
	return out, nil
}
