// internal/handlers/dashboard.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// DashboardHandler handles dashboard and report endpoints
type DashboardHandler struct {
	service  ports.DashboardService
	cache    ports.SnapshotCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler. A nil cache serves
// every request from the service.
func NewDashboardHandler(service ports.DashboardService, cache ports.SnapshotCache, cacheTTL time.Duration, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With(slog.String("handler", "dashboard")),
	}
}

// cached serves key from the cache, loading it with load on a miss
func cached[T any](ctx context.Context, h *DashboardHandler, key string, load func(context.Context) (*T, error)) (*T, error) {
	if h.cache == nil || h.cacheTTL <= 0 {
		return load(ctx)
	}

	var out T
	err := h.cache.LoadOrFetch(ctx, redis_a.BuildKey(redis_a.PrefixDashboard, key), &out, func() (interface{}, error) {
		return load(ctx)
	}, h.cacheTTL)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSummary handles GET /api/v1/dashboard
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := cached(ctx, h, "summary", h.service.Summary)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, summary)
}

// GetLowStock handles GET /api/v1/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := cached(ctx, h, "low-stock", h.service.LowStock)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, report)
}

// GetTransferStats handles GET /api/v1/transfer-orders/stats
func (h *DashboardHandler) GetTransferStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := cached(ctx, h, "transfer-stats", h.service.TransferStats)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, stats)
}

// GetStockStats handles GET /api/v1/stock/stats
func (h *DashboardHandler) GetStockStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := cached(ctx, h, "stock-stats", h.service.StockStats)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, stats)
}

// ListLocations handles GET /api/v1/locations?search=
func (h *DashboardHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locations, err := h.service.Locations(ctx, r.URL.Query().Get("search"))
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, locations)
}

// GetLocation handles GET /api/v1/locations/{id}?search=
func (h *DashboardHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	location, err := h.service.Location(ctx, r.PathValue("id"), r.URL.Query().Get("search"))
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, location)
}
