package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	log "github.com/sirupsen/logrus"
)

var reportColumns = []string{
	"Customer", "Phone", "Location", "Date", "Type", "Vehicle", "Status",
	"Drilling Depth", "Drilling Rate", "Casing Depth", "Casing Rate",
	"Casing Type", "Casing 10\" Depth", "Casing 10\" Rate", "Total Cost",
	"Created By", "Last Edited By",
}

// Export handles GET /api/requests/export. It streams the caller's
// current filter view as an xlsx workbook, one row per request.
func (h *RequestHandler) Export(w http.ResponseWriter, r *http.Request) {
	view, err := h.listView(r)
	if err != nil {
		log.WithError(err).Error("failed to build report view")
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Service Requests"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}

	for row, req := range view {
		values := []interface{}{
			req.CustomerName, req.Phone, req.Location, req.Date, req.Type,
			req.Vehicle, string(req.Status),
			req.DrillingDepth, req.DrillingRate, req.CasingDepth, req.CasingRate,
			req.CasingType, req.Casing10Depth, req.Casing10Rate, req.TotalCost,
			req.CreatedBy, req.LastEditedBy,
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	filename := fmt.Sprintf("service-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		log.WithError(err).Error("failed to write report")
	}
}
