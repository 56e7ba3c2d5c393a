// Package store holds the order queries shared by the admin API, the
// dashboard, the live feed, and the exporters. One-off CRUD statements stay
// with their handlers.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sankaL/loku-caters-sub000/internal/analytics"
)

type Order struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name"`
	Quantity       int       `json:"quantity"`
	PickupLocation string    `json:"pickup_location"`
	PickupTimeSlot string    `json:"pickup_time_slot"`
	PaymentMethod  *string   `json:"payment_method"`
	Paid           bool      `json:"paid"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Analytics converts a stored order into the aggregation input shape.
func (o Order) Analytics() analytics.Order {
	method := ""
	if o.PaymentMethod != nil {
		method = *o.PaymentMethod
	}
	return analytics.Order{
		ID:             o.ID,
		Name:           o.Name,
		Email:          o.Email,
		PhoneNumber:    o.PhoneNumber,
		ItemID:         o.ItemID,
		ItemName:       o.ItemName,
		Quantity:       o.Quantity,
		PickupLocation: o.PickupLocation,
		PickupTimeSlot: o.PickupTimeSlot,
		PaymentMethod:  method,
		TotalPrice:     o.TotalPrice,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
}

const orderColumns = `
	id, event_id, name, email, phone_number, item_id, item_name, quantity,
	pickup_location, pickup_time_slot, payment_method, paid, total_price,
	status, created_at
`

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.EventID, &o.Name, &o.Email, &o.PhoneNumber, &o.ItemID,
		&o.ItemName, &o.Quantity, &o.PickupLocation, &o.PickupTimeSlot,
		&o.PaymentMethod, &o.Paid, &o.TotalPrice, &o.Status, &o.CreatedAt,
	)
	return o, err
}

// ListOrders returns orders newest first, optionally restricted to one status.
func ListOrders(ctx context.Context, db *pgxpool.Pool, status string) ([]Order, error) {
	query := `select ` + orderColumns + ` from orders order by created_at desc`
	args := []any{}
	if status != "" {
		query = `select ` + orderColumns + ` from orders where status = $1 order by created_at desc`
		args = append(args, status)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func GetOrder(ctx context.Context, db *pgxpool.Pool, id string) (Order, bool, error) {
	row := db.QueryRow(ctx, `select `+orderColumns+` from orders where id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, false, nil
		}
		return Order{}, false, err
	}
	return o, true, nil
}

// Snapshot loads every order in analytics form, one read per dashboard
// request.
func Snapshot(ctx context.Context, db *pgxpool.Pool) ([]analytics.Order, error) {
	orders, err := ListOrders(ctx, db, "")
	if err != nil {
		return nil, err
	}
	snapshot := make([]analytics.Order, 0, len(orders))
	for _, o := range orders {
		snapshot = append(snapshot, o.Analytics())
	}
	return snapshot, nil
}

// SnapshotForEvent is Snapshot restricted to a single event.
func SnapshotForEvent(ctx context.Context, db *pgxpool.Pool, eventID string) ([]analytics.Order, error) {
	rows, err := db.Query(ctx, `select `+orderColumns+` from orders where event_id = $1 order by created_at desc`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := []analytics.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, o.Analytics())
	}
	return snapshot, rows.Err()
}
