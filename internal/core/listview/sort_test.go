// internal/core/listview/sort_test.go
package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
)

func TestSortState_Toggle(t *testing.T) {
	t.Run("same_key_cycles", func(t *testing.T) {
		state := listview.SortState{Direction: listview.DirectionNone}
		want := []listview.Direction{
			listview.DirectionAsc,
			listview.DirectionDesc,
			listview.DirectionNone,
			listview.DirectionAsc,
			listview.DirectionDesc,
		}

		for i, dir := range want {
			state = state.Toggle(domain.KeyName)
			assert.Equal(t, domain.KeyName, state.Key)
			assert.Equal(t, dir, state.Direction, "toggle %d", i+1)
		}
	})

	t.Run("new_key_lands_on_ascending", func(t *testing.T) {
		for _, dir := range []listview.Direction{listview.DirectionAsc, listview.DirectionDesc, listview.DirectionNone} {
			state := listview.SortState{Key: domain.KeyName, Direction: dir}
			got := state.Toggle(domain.KeyStockOnHand)
			assert.Equal(t, listview.SortState{Key: domain.KeyStockOnHand, Direction: listview.DirectionAsc}, got)
		}
	})
}

func TestSort_Stability(t *testing.T) {
	records := []domain.Item{
		newItem("a", "Alpha", 5),
		newItem("b", "Bravo", 3),
		newItem("c", "Charlie", 5),
		newItem("d", "Delta", 3),
		newItem("e", "Echo", 5),
	}

	tests := []struct {
		name string
		dir  listview.Direction
		want []string
	}{
		{name: "ascending_keeps_tie_order", dir: listview.DirectionAsc, want: []string{"b", "d", "a", "c", "e"}},
		{name: "descending_keeps_tie_order", dir: listview.DirectionDesc, want: []string{"a", "c", "e", "b", "d"}},
		{name: "none_is_identity", dir: listview.DirectionNone, want: []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listview.Sort(records, testSchema(), listview.SortState{Key: domain.KeyStockOnHand, Direction: tt.dir})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort_Kinds(t *testing.T) {
	records := []domain.Item{
		newItem("1", "bolt", 2),
		newItem("2", "Anchor", 100),
		newItem("3", "chain", 30),
	}
	records[0].LastModifiedTime = "2025-03-01T10:00:00+0100"
	records[1].LastModifiedTime = "garbage"
	records[2].LastModifiedTime = "2025-01-15T08:00:00+0100"

	tests := []struct {
		name  string
		state listview.SortState
		want  []string
	}{
		{name: "string_case_insensitive", state: listview.SortState{Key: domain.KeyName, Direction: listview.DirectionAsc}, want: []string{"2", "1", "3"}},
		{name: "number_not_lexical", state: listview.SortState{Key: domain.KeyStockOnHand, Direction: listview.DirectionAsc}, want: []string{"1", "3", "2"}},
		{name: "time_unparsable_first", state: listview.SortState{Key: domain.KeyLastModifiedTime, Direction: listview.DirectionAsc}, want: []string{"2", "3", "1"}},
		{name: "time_descending", state: listview.SortState{Key: domain.KeyLastModifiedTime, Direction: listview.DirectionDesc}, want: []string{"1", "3", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listview.Sort(records, testSchema(), tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := numberedItems(30)
	before := ids(records)

	_, err := listview.Sort(records, testSchema(), listview.SortState{Key: domain.KeyName, Direction: listview.DirectionAsc})
	require.NoError(t, err)

	assert.Equal(t, before, ids(records))
}

func TestSort_UnknownKey(t *testing.T) {
	_, err := listview.Sort(numberedItems(3), testSchema(), listview.SortState{Key: "weight", Direction: listview.DirectionAsc})
	assert.ErrorIs(t, err, domain.ErrUnknownSortKey)
}

// Selecting name three times returns the original order, not reverse-alphabetical.
func TestSort_ThirdToggleRestoresOriginalOrder(t *testing.T) {
	records := []domain.Item{
		newItem("1", "Gasket", 1),
		newItem("2", "Anchor", 1),
		newItem("3", "Washer", 1),
		newItem("4", "Bolt", 1),
	}
	schema := testSchema()
	state := listview.SortState{Direction: listview.DirectionNone}

	state = state.Toggle(domain.KeyName)
	asc, err := listview.Sort(records, schema, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(asc))

	state = state.Toggle(domain.KeyName)
	desc, err := listview.Sort(records, schema, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(desc))

	state = state.Toggle(domain.KeyName)
	none, err := listview.Sort(records, schema, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(none))
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]listview.Direction{
		"":     listview.DirectionNone,
		"none": listview.DirectionNone,
		"asc":  listview.DirectionAsc,
		"desc": listview.DirectionDesc,
	} {
		got, err := listview.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := listview.ParseDirection("up")
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}
