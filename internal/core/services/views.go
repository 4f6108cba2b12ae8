// internal/core/services/views.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ammerola/meta4-erp/internal/core/catalog"
	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// viewBinding hides the record type of a view from the manager
type viewBinding interface {
	Name() string
	Collections() []domain.Collection
	InitialState(params ports.ListParams) (listview.State, error)
	Mount(parent context.Context, id string, state listview.State,
		invalidate func(ctx context.Context) error, logger *slog.Logger) session
	List(ctx context.Context, state listview.State, logger *slog.Logger) (*ports.Snapshot, error)
	Export(ctx context.Context, state listview.State, logger *slog.Logger) (*ports.ExportTable, error)
}

// viewDef binds a schema to the fetch that loads its records
type viewDef[R domain.Record] struct {
	name        string
	schema      listview.Schema[R]
	collections []domain.Collection
	load        func(ctx context.Context) ([]R, error)
}

var _ viewBinding = (*viewDef[domain.Item])(nil)

func (v *viewDef[R]) Name() string                     { return v.name }
func (v *viewDef[R]) Collections() []domain.Collection { return v.collections }

// InitialState overlays params on the view's default state
func (v *viewDef[R]) InitialState(params ports.ListParams) (listview.State, error) {
	state := v.schema.DefaultState()

	if params.Search != "" {
		state.Search = params.Search
	}
	if params.Category != "" {
		state.Category = params.Category
	}
	switch {
	case params.SortKey != "":
		dir := params.Direction
		if dir == "" {
			dir = listview.DirectionAsc
		}
		state.Sort = listview.SortState{Key: params.SortKey, Direction: dir}
	case params.Direction == listview.DirectionNone:
		state.Sort = listview.SortState{Direction: listview.DirectionNone}
	case params.Direction != "":
		state.Sort.Direction = params.Direction
	}
	if params.PageSize > 0 {
		state.PageSize = params.PageSize
	}
	if params.Page > 0 {
		state.Page = params.Page
	}

	if err := v.schema.ValidateState(state); err != nil {
		return listview.State{}, err
	}
	return state, nil
}

func (v *viewDef[R]) Mount(parent context.Context, id string, state listview.State,
	invalidate func(ctx context.Context) error, logger *slog.Logger) session {
	return mountSession(parent, id, v, state, invalidate, logger)
}

// List loads the records and renders one window without a session
func (v *viewDef[R]) List(ctx context.Context, state listview.State, logger *slog.Logger) (*ports.Snapshot, error) {
	records, err := v.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", v.name, err)
	}
	records, rejected := validateRecords(records, logger)

	view, err := listview.ComputePage(v.schema, records, state)
	if err != nil {
		return nil, err
	}

	snap := &ports.Snapshot{
		View:     v.name,
		Status:   ports.StatusLoaded,
		Rejected: rejected,
	}
	fillSnapshot(snap, v.schema, view)
	return snap, nil
}

// Export renders every matching record through the view's columns
func (v *viewDef[R]) Export(ctx context.Context, state listview.State, logger *slog.Logger) (*ports.ExportTable, error) {
	records, err := v.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", v.name, err)
	}
	records, _ = validateRecords(records, logger)

	matched, err := listview.Matches(v.schema, records, state)
	if err != nil {
		return nil, err
	}

	table := &ports.ExportTable{
		View:    v.name,
		Headers: make([]string, 0, len(v.schema.Columns)),
		Widths:  make([]float64, 0, len(v.schema.Columns)),
		Rows:    make([][]string, 0, len(matched)),
	}
	for _, col := range v.schema.Columns {
		table.Headers = append(table.Headers, col.Header)
		table.Widths = append(table.Widths, col.Width)
	}
	for _, r := range matched {
		row := make([]string, 0, len(v.schema.Columns))
		for _, col := range v.schema.Columns {
			row = append(row, col.Value(r))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// buildViews wires every catalog view to its record source
func buildViews(source ports.RecordSource, projects ports.ProjectStore) map[string]viewBinding {
	views := []viewBinding{
		&viewDef[domain.Item]{
			name:        catalog.ViewItems,
			schema:      catalog.Items(),
			collections: []domain.Collection{domain.CollectionItems},
			load:        source.FetchItems,
		},
		&viewDef[domain.CompositeItem]{
			name:        catalog.ViewCompositeItems,
			schema:      catalog.CompositeItems(),
			collections: []domain.Collection{domain.CollectionCompositeItems},
			load:        source.FetchCompositeItems,
		},
		&viewDef[domain.InventoryRecord]{
			name:        catalog.ViewLowStock,
			schema:      catalog.LowStock(),
			collections: []domain.Collection{domain.CollectionItems, domain.CollectionCompositeItems},
			load: func(ctx context.Context) ([]domain.InventoryRecord, error) {
				items, composites, err := fetchInventory(ctx, source)
				if err != nil {
					return nil, err
				}
				return catalog.LowStockRecords(items, composites), nil
			},
		},
		&viewDef[domain.TransferOrder]{
			name:        catalog.ViewTransferOrders,
			schema:      catalog.TransferOrders(),
			collections: []domain.Collection{domain.CollectionTransferOrders},
			load:        source.FetchTransferOrders,
		},
		&viewDef[domain.StockLocationRow]{
			name:        catalog.ViewStockLocations,
			schema:      catalog.StockLocations(),
			collections: []domain.Collection{domain.CollectionStockByLocation},
			load:        source.FetchStockByLocation,
		},
		&viewDef[domain.Project]{
			name:   catalog.ViewProjects,
			schema: catalog.Projects(),
			load:   projects.ListProjects,
		},
		&viewDef[domain.Workstation]{
			name:   catalog.ViewWorkstations,
			schema: catalog.Workstations(),
			load:   projects.ListWorkstations,
		},
	}

	out := make(map[string]viewBinding, len(views))
	for _, v := range views {
		out[v.Name()] = v
	}
	return out
}

// fetchInventory loads items and composite items concurrently
func fetchInventory(ctx context.Context, source ports.RecordSource) ([]domain.Item, []domain.CompositeItem, error) {
	var (
		items      []domain.Item
		composites []domain.CompositeItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = source.FetchItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		composites, err = source.FetchCompositeItems(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return items, composites, nil
}
