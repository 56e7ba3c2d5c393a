package store

import (
	"testing"
	"time"
)

func TestOrderAnalytics(t *testing.T) {
	method := "etransfer"
	o := Order{
		ID:             "ord-1",
		Name:           "Nilu",
		Email:          "nilu@example.com",
		ItemID:         "item-1",
		ItemName:       "Chicken Lamprais",
		Quantity:       2,
		PickupLocation: "Scarborough",
		PickupTimeSlot: "12:00 PM - 2:00 PM",
		PaymentMethod:  &method,
		Paid:           true,
		TotalPrice:     50,
		Status:         "paid",
		CreatedAt:      time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	got := o.Analytics()
	if got.PaymentMethod != "etransfer" {
		t.Fatalf("PaymentMethod = %q, want %q", got.PaymentMethod, "etransfer")
	}
	if got.CreatedAt != "2026-03-10T14:30:00Z" {
		t.Fatalf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
	if got.TotalPrice != 50 || got.Quantity != 2 {
		t.Fatalf("totals not carried over: %+v", got)
	}
}

func TestOrderAnalyticsNilPaymentMethod(t *testing.T) {
	o := Order{ID: "ord-2", Status: "pending", CreatedAt: time.Now()}
	if got := o.Analytics(); got.PaymentMethod != "" {
		t.Fatalf("PaymentMethod = %q, want empty", got.PaymentMethod)
	}
}
