// internal/handlers/views_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/handlers"
	"github.com/ammerola/meta4-erp/test/helpers"
	"github.com/ammerola/meta4-erp/test/mocks"
)

// snapshotBody is the part of a snapshot the tests read back
type snapshotBody struct {
	SessionID string           `json:"session_id"`
	View      string           `json:"view"`
	Status    ports.LoadStatus `json:"status"`
	State     listview.State   `json:"state"`
	Error     string           `json:"error"`
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func newViewMux(t *testing.T, setup func(*mocks.MockViewService)) *http.ServeMux {
	t.Helper()
	ctrl := gomock.NewController(t)
	views := mocks.NewMockViewService(ctrl)
	setup(views)

	mux := http.NewServeMux()
	handlers.Routes{
		Views: handlers.NewViewHandler(views, time.Second, helpers.TestLogger()),
	}.Register(mux)
	return mux
}

func TestViewHandler_Mount(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		setupMocks     func(*mocks.MockViewService)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "mounts_with_initial_state",
			path: "/api/v1/views/items",
			body: `{"search":"walnut","sort":"name","order":"desc","page_size":25}`,
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Mount(gomock.Any(), "items", ports.ListParams{
						Search:    "walnut",
						SortKey:   domain.KeyName,
						Direction: listview.DirectionDesc,
						PageSize:  25,
					}).
					Return(&ports.Snapshot{SessionID: "s-1", View: "items", Status: ports.StatusLoaded}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "/api/v1/sessions/s-1", w.Header().Get("Location"))
				var snap snapshotBody
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
				assert.Equal(t, "s-1", snap.SessionID)
				assert.Equal(t, ports.StatusLoaded, snap.Status)
			},
		},
		{
			name: "empty_body_uses_defaults",
			path: "/api/v1/views/transfer-orders",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Mount(gomock.Any(), "transfer-orders", ports.ListParams{}).
					Return(&ports.Snapshot{SessionID: "s-2", Status: ports.StatusLoading}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid_order",
			path:           "/api/v1/views/items",
			body:           `{"order":"sideways"}`,
			setupMocks:     func(m *mocks.MockViewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown_field",
			path:           "/api/v1/views/items",
			body:           `{"colour":"red"}`,
			setupMocks:     func(m *mocks.MockViewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_view",
			path: "/api/v1/views/widgets",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Mount(gomock.Any(), "widgets", gomock.Any()).
					Return(nil, fmt.Errorf("%w: widgets", domain.ErrUnknownView))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "too_many_sessions",
			path: "/api/v1/views/items",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Mount(gomock.Any(), "items", gomock.Any()).
					Return(nil, domain.ErrTooManySessions)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "mount_has_deadline",
			path: "/api/v1/views/items",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Mount(gomock.Any(), "items", gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ string, _ ports.ListParams) (*ports.Snapshot, error) {
						if _, ok := ctx.Deadline(); !ok {
							return nil, fmt.Errorf("mount without deadline")
						}
						return &ports.Snapshot{SessionID: "s-3", Status: ports.StatusLoading}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newViewMux(t, tt.setupMocks)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}

func TestViewHandler_Dispatch(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockViewService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "forwards_event",
			body: `{"type":"toggle_sort","key":"stock_on_hand"}`,
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Dispatch(gomock.Any(), "s-1", listview.ToggleSort(domain.KeyStockOnHand)).
					Return(&ports.Snapshot{SessionID: "s-1", Status: ports.StatusLoaded}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "go_to_page",
			body: `{"type":"go_to_page","page":3}`,
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Dispatch(gomock.Any(), "s-1", listview.GoToPage(3)).
					Return(&ports.Snapshot{SessionID: "s-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_type",
			body:           `{"text":"walnut"}`,
			setupMocks:     func(m *mocks.MockViewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid event: missing event type",
		},
		{
			name: "page_out_of_range",
			body: `{"type":"go_to_page","page":99}`,
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Dispatch(gomock.Any(), "s-1", gomock.Any()).
					Return(nil, fmt.Errorf("%w: 99 of 4", domain.ErrPageOutOfRange))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "page out of range: 99 of 4",
		},
		{
			name: "session_closed",
			body: `{"type":"next_page"}`,
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					Dispatch(gomock.Any(), "s-1", gomock.Any()).
					Return(nil, domain.ErrSessionClosed)
			},
			expectedStatus: http.StatusGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newViewMux(t, tt.setupMocks)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s-1/events", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body.Bytes()))
			}
		})
	}
}

func TestViewHandler_Session(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		mux := newViewMux(t, func(m *mocks.MockViewService) {
			m.EXPECT().Snapshot(gomock.Any(), "s-1").
				Return(&ports.Snapshot{SessionID: "s-1", View: "projects"}, nil)
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var snap snapshotBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, "projects", snap.View)
	})

	t.Run("snapshot_not_found", func(t *testing.T) {
		mux := newViewMux(t, func(m *mocks.MockViewService) {
			m.EXPECT().Snapshot(gomock.Any(), "gone").
				Return(nil, fmt.Errorf("session gone: %w", domain.ErrNotFound))
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/gone", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("refresh_reports_failure_in_snapshot", func(t *testing.T) {
		mux := newViewMux(t, func(m *mocks.MockViewService) {
			m.EXPECT().Refresh(gomock.Any(), "s-1").
				Return(&ports.Snapshot{SessionID: "s-1", Status: ports.StatusLoaded, Error: "Unable to load records"}, nil)
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s-1/refresh", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var snap snapshotBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, "Unable to load records", snap.Error)
		assert.Equal(t, ports.StatusLoaded, snap.Status)
	})

	t.Run("unmount", func(t *testing.T) {
		mux := newViewMux(t, func(m *mocks.MockViewService) {
			m.EXPECT().Unmount(gomock.Any(), "s-1").Return(nil)
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/s-1", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, w.Body.Len())
	})
}

func TestViewHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockViewService)
		expectedStatus int
	}{
		{
			name:  "parses_query",
			query: "?search=oak&category=low_stock&sort=rate&order=asc&page=2&page_size=10",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					List(gomock.Any(), "items", ports.ListParams{
						Search:    "oak",
						Category:  "low_stock",
						SortKey:   domain.KeyRate,
						Direction: listview.DirectionAsc,
						Page:      2,
						PageSize:  10,
					}).
					Return(&ports.Snapshot{View: "items", Status: ports.StatusLoaded}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "page_not_a_number",
			query:          "?page=two",
			setupMocks:     func(m *mocks.MockViewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "page_size_zero",
			query:          "?page_size=0",
			setupMocks:     func(m *mocks.MockViewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "unknown_sort_key",
			query: "?sort=colour",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					List(gomock.Any(), "items", gomock.Any()).
					Return(nil, fmt.Errorf("%w: colour", domain.ErrUnknownSortKey))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "upstream_failure",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					List(gomock.Any(), "items", gomock.Any()).
					Return(nil, fmt.Errorf("%w: items: status 500", domain.ErrRetrieval))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "upstream_unauthorized",
			setupMocks: func(m *mocks.MockViewService) {
				m.EXPECT().
					List(gomock.Any(), "items", gomock.Any()).
					Return(nil, domain.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newViewMux(t, tt.setupMocks)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/lists/items"+tt.query, nil))
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
