package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sankaL/loku-caters-sub000/internal/analytics"
	"github.com/sankaL/loku-caters-sub000/internal/queue"
	"github.com/sankaL/loku-caters-sub000/internal/store"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

// AdminOrderConfirm moves a pending order to confirmed and enqueues the
// confirmation email. Confirming twice is a conflict.
func (h *Handler) AdminOrderConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := readPathString(r, "orderID")

	order, found, err := store.GetOrder(ctx, h.DB, orderID)
	if err != nil {
		h.Logger.Error("load order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm order")
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	if order.Status == analytics.StatusConfirmed {
		response.Error(w, http.StatusConflict, "ALREADY_CONFIRMED", "Order already confirmed")
		return
	}

	if _, err := h.DB.Exec(ctx,
		`update orders set status = $1 where id = $2`,
		analytics.StatusConfirmed, orderID,
	); err != nil {
		h.Logger.Error("confirm order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm order")
		return
	}

	h.Logger.Info("order confirmed",
		zap.String("orderId", orderID),
		zap.String("admin", adminEmail(ctx)),
	)

	emailQueued := true
	if err := queue.EnqueueEmail(ctx, h.Queue, queue.EmailKindConfirmation, orderID); err != nil {
		emailQueued = false
		h.Logger.Warn("enqueue confirmation email", zapError(err))
	}

	response.Success(w, map[string]any{
		"order_id":     orderID,
		"status":       analytics.StatusConfirmed,
		"email_queued": emailQueued,
	})
}

type bulkRemindRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// AdminOrderBulkRemind moves confirmed orders to reminded and enqueues a
// pickup reminder for each. Orders in any other status are skipped rather
// than failed.
func (h *Handler) AdminOrderBulkRemind(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body bulkRemindRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	reminded := 0
	failed := 0
	for _, orderID := range body.OrderIDs {
		tag, err := h.DB.Exec(ctx,
			`update orders set status = $1 where id = $2 and status = $3`,
			analytics.StatusReminded, orderID, analytics.StatusConfirmed,
		)
		if err != nil {
			h.Logger.Error("bulk remind update", zapError(err))
			failed++
			continue
		}
		if tag.RowsAffected() == 0 {
			continue
		}

		if err := queue.EnqueueEmail(ctx, h.Queue, queue.EmailKindReminder, orderID); err != nil {
			h.Logger.Warn("enqueue reminder email", zapError(err))
			failed++
		}
		reminded++
	}

	h.Logger.Info("bulk reminder sent",
		zap.Int("reminded", reminded),
		zap.String("admin", adminEmail(ctx)),
	)

	response.Success(w, map[string]any{
		"reminded":      reminded,
		"failed_emails": failed,
	})
}
