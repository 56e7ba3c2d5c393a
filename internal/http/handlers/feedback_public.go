package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type feedbackRequest struct {
	FeedbackType string  `json:"feedback_type"`
	OrderID      *string `json:"order_id"`
	Name         *string `json:"name"`
	Contact      *string `json:"contact"`
	Reason       *string `json:"reason"`
	OtherDetails *string `json:"other_details"`
	Message      *string `json:"message"`
}

// PublicFeedbackCreate captures feedback from customers and from visitors who
// chose not to order.
func (h *Handler) PublicFeedbackCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	feedbackType := strings.TrimSpace(body.FeedbackType)
	if feedbackType != "customer" && feedbackType != "non_customer" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "feedback_type must be customer or non_customer")
		return
	}

	feedbackID := uuid.NewString()
	_, err := h.DB.Exec(ctx, `
		insert into feedback (id, feedback_type, order_id, name, contact, reason, other_details, message)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
	`, feedbackID, feedbackType, body.OrderID, body.Name, body.Contact, body.Reason, body.OtherDetails, body.Message)
	if err != nil {
		h.Logger.Error("insert feedback", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save feedback")
		return
	}

	response.Created(w, map[string]any{"feedback_id": feedbackID})
}
