package handlers

import (
	"net/http"
	"strings"

	"github.com/sankaL/loku-caters-sub000/internal/analytics"
	"github.com/sankaL/loku-caters-sub000/internal/store"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

// AdminEventAnalytics is the per-event slice of the dashboard: only orders
// placed against the given event feed the aggregations.
func (h *Handler) AdminEventAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID := readPathString(r, "eventID")

	rangeParam := strings.TrimSpace(r.URL.Query().Get("range"))
	if rangeParam == "" {
		rangeParam = string(analytics.Range30d)
	}
	rng, err := analytics.ParseRange(rangeParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "range must be one of 7d, 30d, 1y")
		return
	}

	var exists bool
	if err := h.DB.QueryRow(ctx, `select exists(select 1 from events where id = $1)`, eventID).Scan(&exists); err != nil {
		h.Logger.Error("check event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load event analytics")
		return
	}
	if !exists {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Event not found")
		return
	}

	orders, err := store.SnapshotForEvent(ctx, h.DB, eventID)
	if err != nil {
		h.Logger.Error("load event snapshot", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load event analytics")
		return
	}

	asOf := h.analyticsNow()
	revenueBuckets, topItems := analytics.RevenueOverTime(orders, rng, asOf, 5)

	response.Success(w, map[string]any{
		"event_id": eventID,
		"range":    string(rng),
		"revenue_over_time": map[string]any{
			"buckets":   revenueBuckets,
			"top_items": topItems,
		},
		"statuses":           analytics.StatusBreakdown(orders),
		"payment_methods":    analytics.PaymentMethodBreakdown(orders),
		"items_per_location": analytics.ItemsPerLocation(orders),
	})
}
