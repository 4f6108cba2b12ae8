// internal/handlers/views.go
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/pkg/logger"
)

// ViewHandler serves mounted view sessions and one-shot lists
type ViewHandler struct {
	views        ports.ViewService
	mountTimeout time.Duration
	logger       *slog.Logger
}

// NewViewHandler creates a new view handler. Mount waits up to
// mountTimeout for the first load before answering with a loading snapshot.
func NewViewHandler(views ports.ViewService, mountTimeout time.Duration, logger *slog.Logger) *ViewHandler {
	if mountTimeout <= 0 {
		mountTimeout = 10 * time.Second
	}
	return &ViewHandler{
		views:        views,
		mountTimeout: mountTimeout,
		logger:       logger.With(slog.String("handler", "views")),
	}
}

// MountRequest is the optional initial state of a mounted view
type MountRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Sort     string `json:"sort"`
	Order    string `json:"order"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

func (m MountRequest) params() (ports.ListParams, error) {
	dir, err := parseOrder(m.Order)
	if err != nil {
		return ports.ListParams{}, err
	}
	return ports.ListParams{
		Search:    m.Search,
		Category:  m.Category,
		SortKey:   domain.SortKey(m.Sort),
		Direction: dir,
		Page:      m.Page,
		PageSize:  m.PageSize,
	}, nil
}

// Mount handles POST /api/v1/views/{view}
func (h *ViewHandler) Mount(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	ctx := logger.WithValue(r.Context(), logger.ContextKeyView, view)

	var req MountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	params, err := req.params()
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}

	mountCtx, cancel := context.WithTimeout(ctx, h.mountTimeout)
	defer cancel()

	snap, err := h.views.Mount(mountCtx, view, params)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+snap.SessionID)
	respondJSON(w, h.logger, http.StatusCreated, snap)
}

// Snapshot handles GET /api/v1/sessions/{id}
func (h *ViewHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r)

	snap, err := h.views.Snapshot(ctx, r.PathValue("id"))
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, snap)
}

// Dispatch handles POST /api/v1/sessions/{id}/events
func (h *ViewHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r)

	var event listview.Event
	if err := decodeJSON(r, &event); err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	if event.Type == "" {
		respondDomainError(ctx, w, h.logger, fmt.Errorf("%w: missing event type", domain.ErrInvalidEvent))
		return
	}

	snap, err := h.views.Dispatch(ctx, r.PathValue("id"), event)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, snap)
}

// Refresh handles POST /api/v1/sessions/{id}/refresh. A failed refetch is
// reported inside the snapshot, which keeps the previous records.
func (h *ViewHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r)

	snap, err := h.views.Refresh(ctx, r.PathValue("id"))
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, snap)
}

// Unmount handles DELETE /api/v1/sessions/{id}
func (h *ViewHandler) Unmount(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r)

	if err := h.views.Unmount(ctx, r.PathValue("id")); err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/v1/lists/{view}
func (h *ViewHandler) List(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	ctx := logger.WithValue(r.Context(), logger.ContextKeyView, view)

	params, err := parseListParams(r)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}

	snap, err := h.views.List(ctx, view, params)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, snap)
}

func (h *ViewHandler) sessionContext(r *http.Request) context.Context {
	return logger.WithValue(r.Context(), logger.ContextKeySessionID, r.PathValue("id"))
}

// parseListParams reads search, category, sort, order, page and page_size
func parseListParams(r *http.Request) (ports.ListParams, error) {
	q := r.URL.Query()

	dir, err := parseOrder(q.Get("order"))
	if err != nil {
		return ports.ListParams{}, err
	}

	params := ports.ListParams{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		SortKey:   domain.SortKey(q.Get("sort")),
		Direction: dir,
	}

	if params.Page, err = intParam(q.Get("page")); err != nil {
		return ports.ListParams{}, fmt.Errorf("%w: page: %v", domain.ErrInvalidRequest, err)
	}
	if params.PageSize, err = intParam(q.Get("page_size")); err != nil {
		return ports.ListParams{}, fmt.Errorf("%w: page_size: %v", domain.ErrInvalidRequest, err)
	}
	return params, nil
}

// parseOrder keeps an absent order empty so the view default applies
func parseOrder(s string) (listview.Direction, error) {
	if s == "" {
		return "", nil
	}
	return listview.ParseDirection(s)
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive: %d", n)
	}
	return n, nil
}
