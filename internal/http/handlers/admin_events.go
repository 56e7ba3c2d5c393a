package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type eventPayload struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	EventDate        string     `json:"event_date"`
	HeroHeader       string     `json:"hero_header"`
	HeroSubheader    string     `json:"hero_subheader"`
	PromoDetails     *string    `json:"promo_details"`
	IsActive         bool       `json:"is_active"`
	ItemIDs          []string   `json:"item_ids"`
	LocationIDs      []string   `json:"location_ids"`
	EtransferEnabled bool       `json:"etransfer_enabled"`
	EtransferEmail   *string    `json:"etransfer_email"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

type eventUpsertRequest struct {
	Name             string   `json:"name"`
	EventDate        string   `json:"event_date"`
	HeroHeader       string   `json:"hero_header"`
	HeroSubheader    string   `json:"hero_subheader"`
	PromoDetails     *string  `json:"promo_details"`
	ItemIDs          []string `json:"item_ids"`
	LocationIDs      []string `json:"location_ids"`
	EtransferEnabled bool     `json:"etransfer_enabled"`
	EtransferEmail   *string  `json:"etransfer_email"`
}

const eventColumns = `
	id, name, to_char(event_date, 'YYYY-MM-DD'), hero_header, hero_subheader,
	promo_details, is_active, item_ids, location_ids, etransfer_enabled,
	etransfer_email, updated_at
`

func scanEvent(row pgx.Row) (eventPayload, error) {
	var ev eventPayload
	err := row.Scan(
		&ev.ID, &ev.Name, &ev.EventDate, &ev.HeroHeader, &ev.HeroSubheader,
		&ev.PromoDetails, &ev.IsActive, &ev.ItemIDs, &ev.LocationIDs,
		&ev.EtransferEnabled, &ev.EtransferEmail, &ev.UpdatedAt,
	)
	return ev, err
}

func (h *Handler) loadEvent(ctx context.Context, eventID string) (eventPayload, bool, error) {
	row := h.DB.QueryRow(ctx, `select `+eventColumns+` from events where id = $1`, eventID)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return eventPayload{}, false, nil
		}
		return eventPayload{}, false, err
	}
	return ev, true, nil
}

func (h *Handler) AdminEventList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.Query(r.Context(), `select `+eventColumns+` from events order by event_date desc`)
	if err != nil {
		h.Logger.Error("list events", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load events")
		return
	}
	defer rows.Close()

	events := []eventPayload{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			h.Logger.Error("scan event", zapError(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load events")
			return
		}
		events = append(events, ev)
	}
	response.Success(w, events)
}

func (h *Handler) AdminEventCreate(w http.ResponseWriter, r *http.Request) {
	var body eventUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.EventDate) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name and event_date are required")
		return
	}
	if body.ItemIDs == nil {
		body.ItemIDs = []string{}
	}
	if body.LocationIDs == nil {
		body.LocationIDs = []string{}
	}

	eventID := uuid.NewString()
	_, err := h.DB.Exec(r.Context(), `
		insert into events (id, name, event_date, hero_header, hero_subheader, promo_details,
			is_active, item_ids, location_ids, etransfer_enabled, etransfer_email, updated_at)
		values ($1, $2, $3, $4, $5, $6, false, $7, $8, $9, $10, now())
	`,
		eventID, strings.TrimSpace(body.Name), body.EventDate, body.HeroHeader,
		body.HeroSubheader, body.PromoDetails, body.ItemIDs, body.LocationIDs,
		body.EtransferEnabled, body.EtransferEmail,
	)
	if err != nil {
		h.Logger.Error("insert event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create event")
		return
	}

	ev, _, err := h.loadEvent(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("reload event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create event")
		return
	}
	response.Created(w, ev)
}

func (h *Handler) AdminEventUpdate(w http.ResponseWriter, r *http.Request) {
	eventID := readPathString(r, "eventID")

	var body eventUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if body.ItemIDs == nil {
		body.ItemIDs = []string{}
	}
	if body.LocationIDs == nil {
		body.LocationIDs = []string{}
	}

	tag, err := h.DB.Exec(r.Context(), `
		update events
		set name = $1, event_date = $2, hero_header = $3, hero_subheader = $4,
			promo_details = $5, item_ids = $6, location_ids = $7,
			etransfer_enabled = $8, etransfer_email = $9, updated_at = now()
		where id = $10
	`,
		strings.TrimSpace(body.Name), body.EventDate, body.HeroHeader, body.HeroSubheader,
		body.PromoDetails, body.ItemIDs, body.LocationIDs,
		body.EtransferEnabled, body.EtransferEmail, eventID,
	)
	if err != nil {
		h.Logger.Error("update event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update event")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Event not found")
		return
	}

	ev, _, err := h.loadEvent(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("reload event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update event")
		return
	}
	response.Success(w, ev)
}

// AdminEventActivate makes one event the storefront's live event. Activation
// is exclusive: every other event is deactivated in the same transaction.
func (h *Handler) AdminEventActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID := readPathString(r, "eventID")

	tx, err := h.DB.Begin(ctx)
	if err != nil {
		h.Logger.Error("begin activate tx", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to activate event")
		return
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `update events set is_active = false where is_active`); err != nil {
		h.Logger.Error("deactivate events", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to activate event")
		return
	}

	tag, err := tx.Exec(ctx, `update events set is_active = true, updated_at = now() where id = $1`, eventID)
	if err != nil {
		h.Logger.Error("activate event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to activate event")
		return
	}
	if tag.RowsAffected() == 0 {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Event not found")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		h.Logger.Error("commit activate tx", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to activate event")
		return
	}

	ev, _, err := h.loadEvent(ctx, eventID)
	if err != nil {
		h.Logger.Error("reload event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to activate event")
		return
	}
	response.Success(w, ev)
}

func (h *Handler) AdminEventDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID := readPathString(r, "eventID")

	ev, found, err := h.loadEvent(ctx, eventID)
	if err != nil {
		h.Logger.Error("load event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete event")
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Event not found")
		return
	}
	if ev.IsActive {
		response.Error(w, http.StatusBadRequest, "EVENT_ACTIVE", "Cannot delete the active event")
		return
	}

	if _, err := h.DB.Exec(ctx, `delete from events where id = $1`, eventID); err != nil {
		h.Logger.Error("delete event", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete event")
		return
	}
	response.Success(w, map[string]any{"deleted": eventID})
}
