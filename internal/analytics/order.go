// Package analytics derives every number shown on the admin dashboard from a
// raw order snapshot: revenue totals, time-bucketed series, breakdowns by
// location/time-slot/item/payment-method/status, top-customer ranking, and
// month-over-month KPI deltas. Everything here is pure and deterministic:
// functions take the snapshot plus an explicit asOf time and perform no I/O,
// so the same inputs always produce the same output.
package analytics

// Order statuses are a closed set; the storefront only ever writes these.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusReminded  = "reminded"
	StatusPaid      = "paid"
	StatusPickedUp  = "picked_up"
	StatusNoShow    = "no_show"
	StatusCancelled = "cancelled"
)

// Order is the read-only snapshot record the engine aggregates over.
// CreatedAt is the raw ISO-8601 string the orders API returns; a value that
// fails to parse excludes the order from time-based buckets but nowhere else.
type Order struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	ItemID         string  `json:"item_id"`
	ItemName       string  `json:"item_name"`
	Quantity       int     `json:"quantity"`
	PickupLocation string  `json:"pickup_location"`
	PickupTimeSlot string  `json:"pickup_time_slot"`
	PaymentMethod  string  `json:"payment_method,omitempty"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

// IsActive reports whether an order counts toward revenue and average-value
// figures. Cancelled and no-show orders are excluded from those; raw volume
// counts and the status breakdown still see them.
func IsActive(o Order) bool {
	return o.Status != StatusCancelled && o.Status != StatusNoShow
}
