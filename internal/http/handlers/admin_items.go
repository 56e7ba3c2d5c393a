package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type itemUpsertRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price"`
}

func (h *Handler) AdminItemList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.Query(r.Context(), `
		select id, name, description, price, discounted_price, sort_order
		from items
		order by sort_order
	`)
	if err != nil {
		h.Logger.Error("list items", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load items")
		return
	}
	defer rows.Close()

	items := []configItem{}
	for rows.Next() {
		var it configItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.DiscountedPrice, &it.SortOrder); err != nil {
			h.Logger.Error("scan item", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load items")
			return
		}
		items = append(items, it)
	}
	response.Success(w, items)
}

// AdminItemCreate appends the item to the menu: new items always take the
// next sort position.
func (h *Handler) AdminItemCreate(w http.ResponseWriter, r *http.Request) {
	var body itemUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	itemID := uuid.NewString()
	var sortOrder int
	err := h.DB.QueryRow(r.Context(), `
		insert into items (id, name, description, price, discounted_price, sort_order)
		values ($1, $2, $3, $4, $5, coalesce((select max(sort_order) + 1 from items), 0))
		returning sort_order
	`, itemID, strings.TrimSpace(body.Name), body.Description, body.Price, body.DiscountedPrice).Scan(&sortOrder)
	if err != nil {
		h.Logger.Error("insert item", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create item")
		return
	}

	response.Created(w, configItem{
		ID:              itemID,
		Name:            strings.TrimSpace(body.Name),
		Description:     body.Description,
		Price:           body.Price,
		DiscountedPrice: body.DiscountedPrice,
		SortOrder:       sortOrder,
	})
}

func (h *Handler) AdminItemUpdate(w http.ResponseWriter, r *http.Request) {
	itemID := readPathString(r, "itemID")

	var body itemUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var updated configItem
	err := h.DB.QueryRow(r.Context(), `
		update items
		set name = $1, description = $2, price = $3, discounted_price = $4
		where id = $5
		returning id, name, description, price, discounted_price, sort_order
	`, strings.TrimSpace(body.Name), body.Description, body.Price, body.DiscountedPrice, itemID).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.Price,
		&updated.DiscountedPrice, &updated.SortOrder,
	)
	if err != nil {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Item not found")
		return
	}
	response.Success(w, updated)
}

func (h *Handler) AdminItemDelete(w http.ResponseWriter, r *http.Request) {
	itemID := readPathString(r, "itemID")

	tag, err := h.DB.Exec(r.Context(), `delete from items where id = $1`, itemID)
	if err != nil {
		h.Logger.Error("delete item", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete item")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Item not found")
		return
	}
	response.Success(w, map[string]any{"deleted": itemID})
}
