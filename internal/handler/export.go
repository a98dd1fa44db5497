package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/models"
	"github.com/AngeloApolinario/philmarresort/internal/store"
	"github.com/AngeloApolinario/philmarresort/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler lets the operator download the full booking ledger.
type ExportHandler struct {
	Bookings *store.Bookings
}

func NewExportHandler(bookings *store.Bookings) *ExportHandler {
	return &ExportHandler{Bookings: bookings}
}

var exportHeaders = []string{
	"ID", "Guest", "Room", "Check-in", "Check-out", "Nights", "Guests",
	"Price/Night", "Total Price", "Status", "Created",
}

func exportRow(b *models.Booking) []string {
	return []string{
		strconv.FormatUint(uint64(b.ID), 10),
		b.Name,
		b.Room,
		util.FormatDate(b.Checkin),
		util.FormatDate(b.Checkout),
		strconv.Itoa(b.Nights()),
		strconv.Itoa(b.Guests),
		strconv.FormatInt(b.PricePerNight, 10),
		strconv.FormatInt(b.TotalPrice, 10),
		b.Status,
		b.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// CSV streams all bookings as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		h.renderError(c, "Failed to export bookings.")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"bookings_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range bookings {
		writer.Write(exportRow(&bookings[i]))
	}
}

// XLSX streams all bookings as a spreadsheet attachment.
func (h *ExportHandler) XLSX(c *gin.Context) {
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		h.renderError(c, "Failed to export bookings.")
		return
	}

	f := excelize.NewFile()
	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		h.renderError(c, "Failed to export bookings.")
		return
	}
	f.SetActiveSheet(index)

	for i, head := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, head)
	}
	for idx := range bookings {
		row := exportRow(&bookings[idx])
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, idx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	f.SetColWidth(sheetName, "A", "K", 14)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"bookings_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		h.renderError(c, "Failed to export bookings.")
	}
}

func (h *ExportHandler) renderError(c *gin.Context, msg string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Error | Philmar Resort",
		"message": msg,
	})
}
