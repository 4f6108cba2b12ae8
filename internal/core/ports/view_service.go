// internal/core/ports/view_service.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
)

// ViewService mounts list views and drives their controllers.
// Note: the DTOs live here to avoid circular dependencies.
type ViewService interface {
	Mount(ctx context.Context, view string, params ListParams) (*Snapshot, error)
	Snapshot(ctx context.Context, sessionID string) (*Snapshot, error)
	Dispatch(ctx context.Context, sessionID string, event listview.Event) (*Snapshot, error)
	Refresh(ctx context.Context, sessionID string) (*Snapshot, error)
	Unmount(ctx context.Context, sessionID string) error

	// List runs the pipeline once without keeping a session
	List(ctx context.Context, view string, params ListParams) (*Snapshot, error)
	// Export returns every matching row of a view, unpaginated
	Export(ctx context.Context, view string, params ListParams) (*ExportTable, error)
}

// ListParams is an initial or one-shot view state. Zero values take the
// view's defaults.
type ListParams struct {
	Search    string
	Category  string
	SortKey   domain.SortKey
	Direction listview.Direction
	Page      int
	PageSize  int
}

// LoadStatus is the state of a view's record collection
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusLoaded  LoadStatus = "loaded"
	StatusFailed  LoadStatus = "failed"
)

// PageInfo describes the rendered window
type PageInfo struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	From        int  `json:"from"`
	To          int  `json:"to"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Snapshot is the rendered state of one view
type Snapshot struct {
	SessionID    string               `json:"session_id,omitempty"`
	View         string               `json:"view"`
	Status       LoadStatus           `json:"status"`
	Refreshing   bool                 `json:"refreshing"`
	Error        string               `json:"error,omitempty"`
	State        listview.State       `json:"state"`
	Records      []domain.Record      `json:"records"`
	TotalMatched int                  `json:"total_matched"`
	TotalRecords int                  `json:"total_records"`
	Pagination   PageInfo             `json:"pagination"`
	Empty        listview.EmptyReason `json:"empty,omitempty"`
	Categories   []string             `json:"categories"`
	SortKeys     []domain.SortKey     `json:"sort_keys"`
	Rejected     int                  `json:"rejected,omitempty"`
	LoadedAt     *time.Time           `json:"loaded_at,omitempty"`
}

// ExportTable is a view flattened to strings for spreadsheet export
type ExportTable struct {
	View    string
	Headers []string
	Widths  []float64
	Rows    [][]string
}
