package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type locationUpsertRequest struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	TimeSlots []string `json:"time_slots"`
}

func (h *Handler) AdminLocationList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.Query(r.Context(), `
		select id, name, address, time_slots, sort_order
		from locations
		order by sort_order
	`)
	if err != nil {
		h.Logger.Error("list locations", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load locations")
		return
	}
	defer rows.Close()

	locations := []configLocation{}
	for rows.Next() {
		var loc configLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.TimeSlots, &loc.SortOrder); err != nil {
			h.Logger.Error("scan location", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load locations")
			return
		}
		locations = append(locations, loc)
	}
	response.Success(w, locations)
}

func (h *Handler) AdminLocationCreate(w http.ResponseWriter, r *http.Request) {
	var body locationUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}
	if body.TimeSlots == nil {
		body.TimeSlots = []string{}
	}

	locationID := uuid.NewString()
	var sortOrder int
	err := h.DB.QueryRow(r.Context(), `
		insert into locations (id, name, address, time_slots, sort_order)
		values ($1, $2, $3, $4, coalesce((select max(sort_order) + 1 from locations), 0))
		returning sort_order
	`, locationID, strings.TrimSpace(body.Name), body.Address, body.TimeSlots).Scan(&sortOrder)
	if err != nil {
		h.Logger.Error("insert location", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create location")
		return
	}

	response.Created(w, configLocation{
		ID:        locationID,
		Name:      strings.TrimSpace(body.Name),
		Address:   body.Address,
		TimeSlots: body.TimeSlots,
		SortOrder: sortOrder,
	})
}

func (h *Handler) AdminLocationUpdate(w http.ResponseWriter, r *http.Request) {
	locationID := readPathString(r, "locationID")

	var body locationUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if body.TimeSlots == nil {
		body.TimeSlots = []string{}
	}

	var updated configLocation
	err := h.DB.QueryRow(r.Context(), `
		update locations
		set name = $1, address = $2, time_slots = $3
		where id = $4
		returning id, name, address, time_slots, sort_order
	`, strings.TrimSpace(body.Name), body.Address, body.TimeSlots, locationID).Scan(
		&updated.ID, &updated.Name, &updated.Address, &updated.TimeSlots, &updated.SortOrder,
	)
	if err != nil {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Location not found")
		return
	}
	response.Success(w, updated)
}

func (h *Handler) AdminLocationDelete(w http.ResponseWriter, r *http.Request) {
	locationID := readPathString(r, "locationID")

	tag, err := h.DB.Exec(r.Context(), `delete from locations where id = $1`, locationID)
	if err != nil {
		h.Logger.Error("delete location", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete location")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Location not found")
		return
	}
	response.Success(w, map[string]any{"deleted": locationID})
}
