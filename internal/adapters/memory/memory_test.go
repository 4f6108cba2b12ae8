package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/meta4-erp/internal/adapters/memory"
	"github.com/ammerola/meta4-erp/internal/core/domain"
)

func TestSource(t *testing.T) {
	ctx := context.Background()

	t.Run("serves_seed", func(t *testing.T) {
		source := memory.NewSeededSource()

		items, err := source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 6)

		composites, err := source.FetchCompositeItems(ctx)
		require.NoError(t, err)
		assert.Len(t, composites, 2)

		orders, err := source.FetchTransferOrders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		rows, err := source.FetchStockByLocation(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.True(t, rows[0].HasLocation("Printing Station"))
	})

	t.Run("returns_copies", func(t *testing.T) {
		source := memory.NewSeededSource()
		items, err := source.FetchItems(ctx)
		require.NoError(t, err)
		items[0].Name = "changed"

		again, err := source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Aluminium Sheet 2mm", again[0].Name)
	})

	t.Run("injected_failure", func(t *testing.T) {
		source := memory.NewSource(memory.Collections{})
		source.Fail(domain.CollectionTransferOrders, errors.New("upstream down"))

		_, err := source.FetchTransferOrders(ctx)
		assert.True(t, errors.Is(err, domain.ErrRetrieval))

		items, err := source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		source.Fail(domain.CollectionTransferOrders, nil)
		_, err = source.FetchTransferOrders(ctx)
		assert.NoError(t, err)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := memory.NewSeededSource().FetchItems(cctx)
		assert.True(t, errors.Is(err, domain.ErrRetrieval))
	})
}

func TestProjectStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededProjectStore()

	t.Run("lists_seed", func(t *testing.T) {
		projects, err := store.ListProjects(ctx)
		require.NoError(t, err)
		assert.Len(t, projects, 6)

		workstations, err := store.ListWorkstations(ctx)
		require.NoError(t, err)
		assert.Len(t, workstations, 6)
	})

	t.Run("get_project", func(t *testing.T) {
		project, err := store.GetProject(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "Warehouse Automation", project.Name)
		assert.Equal(t, domain.ProjectOnHold, project.Status)

		project.Workstations[0].Name = "changed"
		again, err := store.GetProject(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "Robotics", again.Workstations[0].Name)
	})

	t.Run("get_workstation", func(t *testing.T) {
		ws, err := store.GetWorkstation(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, "Fabrication Station", ws.Name)
		assert.Equal(t, domain.WorkstationPaused, ws.Status)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := store.GetProject(ctx, "99")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = store.GetWorkstation(ctx, "99")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
