package handlers

import (
	"net/http"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type configItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price"`
	SortOrder       int      `json:"sort_order"`
}

type configLocation struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	TimeSlots []string `json:"time_slots"`
	SortOrder int      `json:"sort_order"`
}

// EventConfig is the public storefront bootstrap payload: the active event
// plus the items and locations it offers.
func (h *Handler) EventConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		eventID       string
		eventName     string
		eventDate     string
		heroHeader    string
		heroSubheader string
		promoDetails  *string
	)
	err := h.DB.QueryRow(ctx, `
		select id, name, to_char(event_date, 'YYYY-MM-DD'), hero_header, hero_subheader, promo_details
		from events
		where is_active
		limit 1
	`).Scan(&eventID, &eventName, &eventDate, &heroHeader, &heroSubheader, &promoDetails)
	if err != nil {
		response.Error(w, http.StatusNotFound, "no_active_event", "No event is currently active")
		return
	}

	items := []configItem{}
	rows, err := h.DB.Query(ctx, `
		select i.id, i.name, i.description, i.price, i.discounted_price, i.sort_order
		from items i
		join events e on e.is_active and i.id = any(
			select jsonb_array_elements_text(e.item_ids)
		)
		order by i.sort_order
	`)
	if err != nil {
		h.Logger.Error("load event items", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load configuration")
		return
	}
	defer rows.Close()
	for rows.Next() {
		var it configItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.DiscountedPrice, &it.SortOrder); err != nil {
			h.Logger.Error("scan event item", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load configuration")
			return
		}
		items = append(items, it)
	}

	locations := []configLocation{}
	locRows, err := h.DB.Query(ctx, `
		select l.id, l.name, l.address, l.time_slots, l.sort_order
		from locations l
		join events e on e.is_active and l.id = any(
			select jsonb_array_elements_text(e.location_ids)
		)
		order by l.sort_order
	`)
	if err != nil {
		h.Logger.Error("load event locations", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load configuration")
		return
	}
	defer locRows.Close()
	for locRows.Next() {
		var loc configLocation
		if err := locRows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.TimeSlots, &loc.SortOrder); err != nil {
			h.Logger.Error("scan event location", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load configuration")
			return
		}
		locations = append(locations, loc)
	}

	response.Success(w, map[string]any{
		"event": map[string]any{
			"id":             eventID,
			"name":           eventName,
			"event_date":     eventDate,
			"hero_header":    heroHeader,
			"hero_subheader": heroSubheader,
			"promo_details":  promoDetails,
		},
		"items":     items,
		"locations": locations,
		"currency":  h.Config.Currency,
	})
}
