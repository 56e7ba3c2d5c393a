package handlers

import (
	"net/http"
	"strings"

	"github.com/sankaL/loku-caters-sub000/internal/analytics"
	"github.com/sankaL/loku-caters-sub000/internal/store"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

// AdminDashboard loads the full order snapshot once and derives every
// dashboard number from it in memory.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	rangeParam := strings.TrimSpace(r.URL.Query().Get("range"))
	if rangeParam == "" {
		rangeParam = string(analytics.Range7d)
	}
	rng, err := analytics.ParseRange(rangeParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "range must be one of 7d, 30d, 1y")
		return
	}

	orders, err := store.Snapshot(r.Context(), h.DB)
	if err != nil {
		h.Logger.Error("load dashboard snapshot", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}

	asOf := h.analyticsNow()
	revenueBuckets, topItems := analytics.RevenueOverTime(orders, rng, asOf, 5)

	response.Success(w, map[string]any{
		"as_of":            asOf.Format("2006-01-02"),
		"range":            string(rng),
		"revenue":          analytics.Revenue(orders, asOf),
		"kpis":             analytics.KPIs(orders, asOf),
		"orders_over_time": analytics.OrdersOverTime(orders, rng, asOf),
		"revenue_over_time": map[string]any{
			"buckets":   revenueBuckets,
			"top_items": topItems,
		},
		"locations":          analytics.LocationBreakdown(orders),
		"time_slots":         analytics.TimeSlotBreakdown(orders),
		"items":              analytics.ItemRevenueBreakdown(orders),
		"payment_methods":    analytics.PaymentMethodBreakdown(orders),
		"statuses":           analytics.StatusBreakdown(orders),
		"items_per_location": analytics.ItemsPerLocation(orders),
		"top_customers":      analytics.TopCustomers(orders, 5),
		"open_orders":        analytics.OpenOrders(orders),
	})
}
