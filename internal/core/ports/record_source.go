// internal/core/ports/record_source.go
package ports

import (
	"context"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// RecordSource is the read-only fetch-by-collection port. It is implemented
// by the upstream API client, the redis read-through cache and the in-memory stub.
// Every failure wraps domain.ErrRetrieval or domain.ErrUnauthorized.
type RecordSource interface {
	FetchItems(ctx context.Context) ([]domain.Item, error)
	FetchCompositeItems(ctx context.Context) ([]domain.CompositeItem, error)
	FetchTransferOrders(ctx context.Context) ([]domain.TransferOrder, error)
	FetchStockByLocation(ctx context.Context) ([]domain.StockLocationRow, error)
}

// CollectionWarmer controls cached copies of upstream collections
type CollectionWarmer interface {
	// Invalidate drops the cached copy so the next fetch goes upstream
	Invalidate(ctx context.Context, collection domain.Collection) error
	// Warm refetches the collection and stores it
	Warm(ctx context.Context, collection domain.Collection) error
}

// ProjectStore serves the production projects and workstations
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListWorkstations(ctx context.Context) ([]domain.Workstation, error)
	GetWorkstation(ctx context.Context, id string) (*domain.Workstation, error)
}
