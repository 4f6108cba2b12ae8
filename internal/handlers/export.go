// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/pkg/logger"
)

// ExportHandler streams a view's matching rows as a spreadsheet
type ExportHandler struct {
	views  ports.ViewService
	now    func() time.Time
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(views ports.ViewService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		views:  views,
		now:    time.Now,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export/{view}. It takes the same query
// parameters as the list endpoint; pagination is ignored.
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	ctx := logger.WithValue(r.Context(), logger.ContextKeyView, view)

	params, err := parseListParams(r)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}

	table, err := h.views.Export(ctx, view, params)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err)
		return
	}

	data, err := generateExcelFile(table)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file", slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("%s_export_%s.xlsx", table.View, h.now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "export completed",
		slog.Int("rows", len(table.Rows)),
		slog.String("filename", filename))
}

// generateExcelFile renders table into an in-memory workbook with a bold
// header row
func generateExcelFile(table *ports.ExportTable) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(sheetName(table.View))
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range table.Headers {
		cell := header.AddCell()
		cell.Value = title
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, values := range table.Rows {
		row := sheet.AddRow()
		for _, value := range values {
			row.AddCell().Value = value
		}
	}

	for i, width := range table.Widths {
		if width <= 0 {
			width = 15
		}
		sheet.SetColWidth(i+1, i+1, width)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName fits the 31 character worksheet name limit
func sheetName(view string) string {
	if view == "" {
		return "Export"
	}
	if len(view) > 31 {
		return view[:31]
	}
	return view
}
