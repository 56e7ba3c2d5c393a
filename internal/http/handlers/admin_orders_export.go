package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/sankaL/loku-caters-sub000/internal/store"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

// AdminOrderExportCSV streams every order as a spreadsheet-friendly CSV,
// newest first, honoring the same status filter as the list endpoint.
func (h *Handler) AdminOrderExportCSV(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	orders, err := store.ListOrders(r.Context(), h.DB, status)
	if err != nil {
		h.Logger.Error("list orders for export", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export orders")
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write([]string{
		"id", "name", "email", "phone_number", "item_name", "quantity",
		"pickup_location", "pickup_time_slot", "payment_method", "paid",
		"total_price", "status", "created_at",
	})
	for _, o := range orders {
		method := ""
		if o.PaymentMethod != nil {
			method = *o.PaymentMethod
		}
		_ = cw.Write([]string{
			o.ID, o.Name, o.Email, o.PhoneNumber, o.ItemName,
			strconv.Itoa(o.Quantity), o.PickupLocation, o.PickupTimeSlot,
			method, strconv.FormatBool(o.Paid),
			strconv.FormatFloat(o.TotalPrice, 'f', 2, 64), o.Status,
			o.CreatedAt.Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Logger.Error("write export csv", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export orders")
		return
	}

	filename := fmt.Sprintf("orders_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// AdminOrderPickupSheetPDF renders the pickup-day handout: orders grouped by
// location, then time slot, cancelled and no-show orders left out.
func (h *Handler) AdminOrderPickupSheetPDF(w http.ResponseWriter, r *http.Request) {
	orders, err := store.ListOrders(r.Context(), h.DB, "")
	if err != nil {
		h.Logger.Error("list orders for pickup sheet", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate pickup sheet")
		return
	}

	grouped := map[string]map[string][]store.Order{}
	for _, o := range orders {
		if o.Status == "cancelled" || o.Status == "no_show" {
			continue
		}
		if grouped[o.PickupLocation] == nil {
			grouped[o.PickupLocation] = map[string][]store.Order{}
		}
		grouped[o.PickupLocation][o.PickupTimeSlot] = append(grouped[o.PickupLocation][o.PickupTimeSlot], o)
	}

	locations := make([]string, 0, len(grouped))
	for loc := range grouped {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Pickup Sheet", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, h.analyticsNow().Format("Monday, January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	for _, loc := range locations {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, loc, "B", 1, "L", false, 0, "")

		slots := make([]string, 0, len(grouped[loc]))
		for slot := range grouped[loc] {
			slots = append(slots, slot)
		}
		sort.Strings(slots)

		for _, slot := range slots {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 6, slot, "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			for _, o := range grouped[loc][slot] {
				line := fmt.Sprintf("%s  -  %dx %s  -  %s %.2f  -  %s",
					o.Name, o.Quantity, o.ItemName, h.Config.Currency, o.TotalPrice, o.Status)
				if o.PhoneNumber != "" {
					line += "  -  " + o.PhoneNumber
				}
				pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
			}
			pdf.Ln(1)
		}
		pdf.Ln(2)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		h.Logger.Error("render pickup sheet pdf", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate pickup sheet")
		return
	}

	filename := fmt.Sprintf("pickup_sheet_%s.pdf", sanitizeFilename(time.Now().Format("2006-01-02")))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Bytes())
}

func sanitizeFilename(value string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	clean := re.ReplaceAllString(value, "_")
	return strings.Trim(clean, "_")
}
