// internal/handlers/export_test.go
package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/handlers"
	"github.com/ammerola/meta4-erp/test/helpers"
	"github.com/ammerola/meta4-erp/test/mocks"
)

func TestExportHandler_ExportExcel(t *testing.T) {
	t.Run("writes_workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		views := mocks.NewMockViewService(ctrl)
		views.EXPECT().
			Export(gomock.Any(), "items", ports.ListParams{Category: "low_stock"}).
			Return(&ports.ExportTable{
				View:    "items",
				Headers: []string{"Name", "SKU", "Stock"},
				Widths:  []float64{30, 15, 0},
				Rows: [][]string{
					{"Walnut Bowl", "WB-1", "4"},
					{"Oak Board", "OB-2", "0"},
				},
			}, nil)

		mux := http.NewServeMux()
		handlers.Routes{Export: handlers.NewExportHandler(views, helpers.TestLogger())}.Register(mux)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/export/items?category=low_stock", nil))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		disposition := w.Header().Get("Content-Disposition")
		assert.True(t, strings.HasPrefix(disposition, `attachment; filename="items_export_`), disposition)
		assert.True(t, strings.HasSuffix(disposition, `.xlsx"`), disposition)
		assert.Equal(t, fmt.Sprint(w.Body.Len()), w.Header().Get("Content-Length"))

		file, err := xlsx.OpenBinary(w.Body.Bytes())
		require.NoError(t, err)
		require.Len(t, file.Sheets, 1)
		sheet := file.Sheets[0]
		assert.Equal(t, "items", sheet.Name)
		assert.Equal(t, 3, sheet.MaxRow)

		header, err := sheet.Cell(0, 0)
		require.NoError(t, err)
		assert.Equal(t, "Name", header.Value)
		assert.True(t, header.GetStyle().Font.Bold)

		cell, err := sheet.Cell(2, 1)
		require.NoError(t, err)
		assert.Equal(t, "OB-2", cell.Value)
	})

	t.Run("bad_query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		views := mocks.NewMockViewService(ctrl)
		handler := handlers.NewExportHandler(views, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/export/items?order=up", nil)
		req.SetPathValue("view", "items")
		w := httptest.NewRecorder()
		handler.ExportExcel(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown_view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		views := mocks.NewMockViewService(ctrl)
		views.EXPECT().Export(gomock.Any(), "widgets", gomock.Any()).
			Return(nil, domain.ErrUnknownView)
		handler := handlers.NewExportHandler(views, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/export/widgets", nil)
		req.SetPathValue("view", "widgets")
		w := httptest.NewRecorder()
		handler.ExportExcel(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "unknown view", decodeError(t, w.Body.Bytes()))
	})
}
