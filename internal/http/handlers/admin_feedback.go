package handlers

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

var feedbackReasonOrder = []string{
	"price_too_high",
	"location_not_convenient",
	"dietary_needs",
	"not_available",
	"different_menu",
	"prefer_delivery",
	"not_interested",
	"other",
}

var feedbackReasonLabels = map[string]string{
	"price_too_high":          "Price too high",
	"location_not_convenient": "Pickup location not convenient",
	"dietary_needs":           "Food does not meet dietary needs",
	"not_available":           "Not available on the event date",
	"different_menu":          "Prefer a different menu item",
	"prefer_delivery":         "Prefer delivery over pickup",
	"not_interested":          "Not interested at this time",
	"other":                   "Other",
}

func feedbackReasonLabel(reason string) string {
	if label, ok := feedbackReasonLabels[reason]; ok {
		return label
	}
	return reason
}

type feedbackRow struct {
	ID           string    `json:"id"`
	FeedbackType string    `json:"feedback_type"`
	OrderID      *string   `json:"order_id"`
	Name         *string   `json:"name"`
	Contact      *string   `json:"contact"`
	Reason       *string   `json:"reason"`
	ReasonLabel  *string   `json:"reason_label"`
	OtherDetails *string   `json:"other_details"`
	Message      *string   `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

type feedbackReasonMetric struct {
	Reason string `json:"reason"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Pct    int    `json:"pct"`
}

// AdminFeedbackList returns feedback rows matching the filters plus reason
// metrics computed over ALL feedback, so the metric cards stay stable while
// the list is filtered. Percentages are of non-customer feedback.
func (h *Handler) AdminFeedbackList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reasonFilter := strings.TrimSpace(r.URL.Query().Get("reason"))
	typeFilter := strings.TrimSpace(r.URL.Query().Get("feedback_type"))

	query := `
		select id, feedback_type, order_id, name, contact, reason, other_details, message, created_at
		from feedback
		where ($1 = '' or reason = $1)
		  and ($2 = '' or feedback_type = $2)
		order by created_at desc
	`
	rows, err := h.DB.Query(ctx, query, reasonFilter, typeFilter)
	if err != nil {
		h.Logger.Error("list feedback", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load feedback")
		return
	}
	defer rows.Close()

	items := []feedbackRow{}
	for rows.Next() {
		var row feedbackRow
		if err := rows.Scan(&row.ID, &row.FeedbackType, &row.OrderID, &row.Name, &row.Contact,
			&row.Reason, &row.OtherDetails, &row.Message, &row.CreatedAt); err != nil {
			h.Logger.Error("scan feedback", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load feedback")
			return
		}
		if row.Reason != nil {
			label := feedbackReasonLabel(*row.Reason)
			row.ReasonLabel = &label
		}
		items = append(items, row)
	}

	var total, customerCount int
	reasonCounts := map[string]int{}
	metricRows, err := h.DB.Query(ctx, `select feedback_type, reason from feedback`)
	if err != nil {
		h.Logger.Error("load feedback metrics", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load feedback")
		return
	}
	defer metricRows.Close()
	for metricRows.Next() {
		var feedbackType string
		var reason *string
		if err := metricRows.Scan(&feedbackType, &reason); err != nil {
			h.Logger.Error("scan feedback metric", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load feedback")
			return
		}
		total++
		if feedbackType == "customer" {
			customerCount++
		}
		if reason != nil && *reason != "" {
			reasonCounts[*reason]++
		}
	}

	nonCustomerCount := total - customerCount
	metrics := make([]feedbackReasonMetric, 0, len(feedbackReasonOrder))
	for _, reason := range feedbackReasonOrder {
		count := reasonCounts[reason]
		pct := 0
		if nonCustomerCount > 0 {
			pct = int(math.Round(float64(count) / float64(nonCustomerCount) * 100))
		}
		metrics = append(metrics, feedbackReasonMetric{
			Reason: reason,
			Label:  feedbackReasonLabel(reason),
			Count:  count,
			Pct:    pct,
		})
	}

	response.Success(w, map[string]any{
		"total":              total,
		"customer_count":     customerCount,
		"non_customer_count": nonCustomerCount,
		"metrics":            metrics,
		"items":              items,
	})
}
