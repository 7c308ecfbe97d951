package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProducts writes the catalog as an XLSX workbook, one row per
// product with the computed margin, so shopkeepers can take the list to
// their accountant.
func (h *CatalogHandler) ExportProducts(c *gin.Context) {
	products := h.store.Snapshot()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Name", "Name (Hindi)", "Type", "Quantity", "Unit", "Market Price", "Supplier Price", "Margin %", "Created At"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to build export")
			return
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to build export")
			return
		}
	}

	for row, p := range products {
		supplierPrice := ""
		if p.SupplierPrice != nil {
			supplierPrice = strconv.FormatFloat(*p.SupplierPrice, 'f', -1, 64)
		}
		marginCell := "N/A"
		if margin, ok := metrics.MarginPercent(p); ok {
			marginCell = fmt.Sprintf("%d%%", margin)
		}
		values := []interface{}{
			p.ID, p.Name, p.NameHindi, p.Type, p.Quantity, p.Unit,
			p.Price, supplierPrice, marginCell, p.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "failed to build export")
				return
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				respondError(c, http.StatusInternalServerError, "failed to build export")
				return
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.logger.Error("failed to write export workbook", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to build export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="smartbiz-products.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
