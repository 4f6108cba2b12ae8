// internal/handlers/dashboard_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/handlers"
	"github.com/ammerola/meta4-erp/test/helpers"
	"github.com/ammerola/meta4-erp/test/mocks"
)

func TestDashboardHandler_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboardService(ctrl)
	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, helpers.TestLogger())

	service.EXPECT().Summary(gomock.Any()).
		Return(&ports.DashboardSummary{
			TotalItems:    6,
			LowStockCount: 2,
			StockValue:    decimal.NewFromInt(1250),
		}, nil).
		Times(1)

	mux := http.NewServeMux()
	handlers.Routes{
		Dashboard: handlers.NewDashboardHandler(service, cache, time.Minute, helpers.TestLogger()),
	}.Register(mux)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var summary ports.DashboardSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 6, summary.TotalItems)
		assert.True(t, summary.StockValue.Equal(decimal.NewFromInt(1250)))
	}

	assert.True(t, testRedis.Server.Exists(redis_a.BuildKey(redis_a.PrefixDashboard, "summary")))
}

func TestDashboardHandler_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockDashboardService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "low_stock",
			path: "/api/v1/dashboard/low-stock",
			setupMocks: func(m *mocks.MockDashboardService) {
				m.EXPECT().LowStock(gomock.Any()).
					Return(&ports.LowStockReport{TotalCount: 3, OutOfStock: 1, CriticalCount: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var report ports.LowStockReport
				require.NoError(t, json.Unmarshal(body, &report))
				assert.Equal(t, 3, report.TotalCount)
				assert.Equal(t, 2, report.CriticalCount)
			},
		},
		{
			name: "transfer_stats",
			path: "/api/v1/transfer-orders/stats",
			setupMocks: func(m *mocks.MockDashboardService) {
				m.EXPECT().TransferStats(gomock.Any()).
					Return(&ports.TransferStats{TotalOrders: 2, Locations: []string{"A", "B"}}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var stats ports.TransferStats
				require.NoError(t, json.Unmarshal(body, &stats))
				assert.Equal(t, []string{"A", "B"}, stats.Locations)
			},
		},
		{
			name: "stock_stats_upstream_down",
			path: "/api/v1/stock/stats",
			setupMocks: func(m *mocks.MockDashboardService) {
				m.EXPECT().StockStats(gomock.Any()).
					Return(nil, fmt.Errorf("%w: items-with-stock", domain.ErrRetrieval))
			},
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body []byte) {
				assert.Equal(t, "Unable to load records", decodeError(t, body))
			},
		},
		{
			name: "locations_with_search",
			path: "/api/v1/locations?search=sanding",
			setupMocks: func(m *mocks.MockDashboardService) {
				m.EXPECT().Locations(gomock.Any(), "sanding").
					Return([]domain.LocationSummary{{LocationID: "l2", LocationName: "Sanding Station"}}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var locations []domain.LocationSummary
				require.NoError(t, json.Unmarshal(body, &locations))
				require.Len(t, locations, 1)
				assert.Equal(t, "Sanding Station", locations[0].LocationName)
			},
		},
		{
			name: "location_not_found",
			path: "/api/v1/locations/nowhere",
			setupMocks: func(m *mocks.MockDashboardService) {
				m.EXPECT().Location(gomock.Any(), "nowhere", "").
					Return(nil, fmt.Errorf("location nowhere: %w", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboardService(ctrl)
			tt.setupMocks(service)

			mux := http.NewServeMux()
			handlers.Routes{
				Dashboard: handlers.NewDashboardHandler(service, nil, 0, helpers.TestLogger()),
			}.Register(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}
