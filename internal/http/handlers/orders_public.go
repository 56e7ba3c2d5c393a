package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type publicOrderRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	ItemID         string `json:"item_id"`
	Quantity       int    `json:"quantity"`
	PickupLocation string `json:"pickup_location"`
	PickupTimeSlot string `json:"pickup_time_slot"`
}

type activeEvent struct {
	ID               string
	EventDate        string
	EtransferEnabled bool
	EtransferEmail   *string
}

func (h *Handler) loadActiveEvent(ctx context.Context) (activeEvent, bool, error) {
	var ev activeEvent
	query := `
		select id, to_char(event_date, 'YYYY-MM-DD'), etransfer_enabled, etransfer_email
		from events
		where is_active
		limit 1
	`
	err := h.DB.QueryRow(ctx, query).Scan(&ev.ID, &ev.EventDate, &ev.EtransferEnabled, &ev.EtransferEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activeEvent{}, false, nil
		}
		return activeEvent{}, false, err
	}
	return ev, true, nil
}

// PublicOrderCreate places a storefront pre-order against the active event.
// The item price is snapshotted at order time, discounted price winning over
// the regular one.
func (h *Handler) PublicOrderCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body publicOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	if body.Name == "" || body.Email == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name and email are required")
		return
	}
	if body.Quantity < 1 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be at least 1")
		return
	}

	event, found, err := h.loadActiveEvent(ctx)
	if err != nil {
		h.Logger.Error("load active event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place order")
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, "no_active_event", "No event is currently accepting orders")
		return
	}

	var itemName string
	var price, discounted *float64
	err = h.DB.QueryRow(ctx,
		`select name, price, discounted_price from items where id = $1`,
		body.ItemID,
	).Scan(&itemName, &price, &discounted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown item: "+body.ItemID)
			return
		}
		h.Logger.Error("load item", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place order")
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

	orderID := uuid.NewString()
	_, err = h.DB.Exec(ctx, `
		insert into orders (id, event_id, name, email, phone_number, item_id, item_name,
			quantity, pickup_location, pickup_time_slot, total_price, status)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending')
	`,
		orderID, event.ID, body.Name, body.Email, strings.TrimSpace(body.PhoneNumber),
		body.ItemID, itemName, body.Quantity,
		strings.TrimSpace(body.PickupLocation), strings.TrimSpace(body.PickupTimeSlot),
		totalPrice,
	)
	if err != nil {
		h.Logger.Error("insert order", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place order")
		return
	}

	etransferEmail := ""
	if event.EtransferEnabled && event.EtransferEmail != nil {
		etransferEmail = *event.EtransferEmail
	}

	response.Created(w, map[string]any{
		"order_id": orderID,
		"message":  "Your pre-order has been placed! We will send a confirmation email once we verify your order.",
		"order": map[string]any{
			"event_id":          event.ID,
			"name":              body.Name,
			"email":             body.Email,
			"phone_number":      body.PhoneNumber,
			"item_id":           body.ItemID,
			"item_name":         itemName,
			"quantity":          body.Quantity,
			"pickup_location":   body.PickupLocation,
			"pickup_time_slot":  body.PickupTimeSlot,
			"total_price":       totalPrice,
			"price_per_item":    effectivePrice,
			"currency":          h.Config.Currency,
			"event_date":        event.EventDate,
			"etransfer_enabled": event.EtransferEnabled && etransferEmail != "",
			"etransfer_email":   etransferEmail,
		},
	})
}
