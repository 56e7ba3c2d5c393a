package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sankaL/loku-caters-sub000/internal/analytics"
	"github.com/sankaL/loku-caters-sub000/internal/store"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

var validOrderStatuses = map[string]struct{}{
	analytics.StatusPending:   {},
	analytics.StatusConfirmed: {},
	analytics.StatusReminded:  {},
	analytics.StatusPaid:      {},
	analytics.StatusPickedUp:  {},
	analytics.StatusNoShow:    {},
	analytics.StatusCancelled: {},
}

func (h *Handler) AdminOrderList(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" {
		if _, ok := validOrderStatuses[status]; !ok {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter")
			return
		}
	}

	orders, err := store.ListOrders(r.Context(), h.DB, status)
	if err != nil {
		h.Logger.Error("list orders", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load orders")
		return
	}
	response.Success(w, orders)
}

func (h *Handler) AdminOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID := readPathString(r, "orderID")

	order, found, err := store.GetOrder(r.Context(), h.DB, orderID)
	if err != nil {
		h.Logger.Error("load order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(w, order)
}

type adminOrderCreateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	ItemID         string `json:"item_id"`
	Quantity       int    `json:"quantity"`
	PickupLocation string `json:"pickup_location"`
	PickupTimeSlot string `json:"pickup_time_slot"`
}

// AdminOrderCreate records an order taken over the phone or in person. The
// pickup location and time slot are validated against the locations table.
func (h *Handler) AdminOrderCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body adminOrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if body.Quantity < 1 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be at least 1")
		return
	}

	var itemName string
	var price, discounted *float64
	err := h.DB.QueryRow(ctx,
		`select name, price, discounted_price from items where id = $1`,
		body.ItemID,
	).Scan(&itemName, &price, &discounted)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item_id")
		return
	}

	pickupLocation := strings.TrimSpace(body.PickupLocation)
	pickupTimeSlot := strings.TrimSpace(body.PickupTimeSlot)

	var locationName string
	var timeSlots []string
	err = h.DB.QueryRow(ctx,
		`select name, time_slots from locations where name = $1 or id = $1`,
		pickupLocation,
	).Scan(&locationName, &timeSlots)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pickup_location")
		return
	}

	slotOK := false
	for _, slot := range timeSlots {
		if slot == pickupTimeSlot {
			slotOK = true
			break
		}
	}
	if !slotOK {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pickup_time_slot for location")
		return
	}

	effectivePrice := 0.0
	if price != nil {
		effectivePrice = *price
	}
	if discounted != nil {
		effectivePrice = *discounted
	}
	totalPrice := math.Round(float64(body.Quantity)*effectivePrice*100) / 100

	event, found, err := h.loadActiveEvent(ctx)
	if err != nil {
		h.Logger.Error("load active event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, "no_active_event", "No event is currently accepting orders")
		return
	}

	orderID := uuid.NewString()
	_, err = h.DB.Exec(ctx, `
		insert into orders (id, event_id, name, email, phone_number, item_id, item_name,
			quantity, pickup_location, pickup_time_slot, total_price, status)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending')
	`,
		orderID, event.ID, strings.TrimSpace(body.Name), strings.TrimSpace(body.Email),
		strings.TrimSpace(body.PhoneNumber), body.ItemID, itemName, body.Quantity,
		locationName, pickupTimeSlot, totalPrice,
	)
	if err != nil {
		h.Logger.Error("insert order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}

	order, _, err := store.GetOrder(ctx, h.DB, orderID)
	if err != nil {
		h.Logger.Error("reload order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}
	response.Created(w, order)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) AdminOrderUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := readPathString(r, "orderID")

	var body statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if _, ok := validOrderStatuses[body.Status]; !ok {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status")
		return
	}

	tag, err := h.DB.Exec(r.Context(),
		`update orders set status = $1 where id = $2`,
		body.Status, orderID,
	)
	if err != nil {
		h.Logger.Error("update order status", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(w, map[string]any{"status": body.Status})
}

type paymentUpdateRequest struct {
	Paid          bool    `json:"paid"`
	PaymentMethod *string `json:"payment_method"`
}

// AdminOrderUpdatePayment marks an order paid with its method, or clears
// payment again. A paid order must carry a method from the closed set.
func (h *Handler) AdminOrderUpdatePayment(w http.ResponseWriter, r *http.Request) {
	orderID := readPathString(r, "orderID")

	var body paymentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if body.Paid {
		if body.PaymentMethod == nil {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "payment_method is required when paid")
			return
		}
		switch *body.PaymentMethod {
		case "cash", "etransfer", "other":
		default:
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "payment_method must be cash, etransfer, or other")
			return
		}
	} else {
		body.PaymentMethod = nil
	}

	tag, err := h.DB.Exec(r.Context(),
		`update orders set paid = $1, payment_method = $2 where id = $3`,
		body.Paid, body.PaymentMethod, orderID,
	)
	if err != nil {
		h.Logger.Error("update order payment", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(w, map[string]any{"paid": body.Paid, "payment_method": body.PaymentMethod})
}

func (h *Handler) AdminOrderDelete(w http.ResponseWriter, r *http.Request) {
	orderID := readPathString(r, "orderID")

	tag, err := h.DB.Exec(r.Context(), `delete from orders where id = $1`, orderID)
	if err != nil {
		h.Logger.Error("delete order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete order")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(w, map[string]any{"deleted": orderID})
}
