package analytics

import (
	"reflect"
	"testing"
	"time"
)

var asOf = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func orderAt(createdAt string, status string, price float64) Order {
	return Order{
		ID:             "o-" + createdAt,
		Name:           "Customer",
		Email:          "customer@example.com",
		ItemID:         "item-1",
		ItemName:       "Biryani Tray",
		Quantity:       1,
		PickupLocation: "Downtown",
		PickupTimeSlot: "9:00 AM - 10:00 AM",
		TotalPrice:     price,
		Status:         status,
		CreatedAt:      createdAt,
	}
}

func daysAgo(n int) string {
	return asOf.AddDate(0, 0, -n).Format(time.RFC3339)
}

func TestOrdersOverTimeBucketCompleteness(t *testing.T) {
	cases := []struct {
		r    Range
		want int
	}{
		{Range7d, 7},
		{Range30d, 30},
		{Range1y, 12},
	}

	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			buckets := OrdersOverTime(nil, tc.r, asOf)
			if len(buckets) != tc.want {
				t.Fatalf("expected %d buckets, got %d", tc.want, len(buckets))
			}
			for i := 1; i < len(buckets); i++ {
				if buckets[i-1].Key >= buckets[i].Key {
					t.Fatalf("bucket keys not strictly ascending: %s >= %s", buckets[i-1].Key, buckets[i].Key)
				}
			}
			for _, b := range buckets {
				if b.Count != 0 || b.Revenue != 0 {
					t.Fatalf("empty input produced non-zero bucket %+v", b)
				}
			}
		})
	}
}

func TestOrdersOverTimeConservation(t *testing.T) {
	orders := []Order{
		orderAt(daysAgo(0), StatusPending, 10),
		orderAt(daysAgo(2), StatusConfirmed, 20),
		orderAt(daysAgo(2), StatusCancelled, 30),
		orderAt(daysAgo(6), StatusPickedUp, 40),
		orderAt(daysAgo(8), StatusConfirmed, 50),  // outside 7d window
		orderAt("garbage", StatusConfirmed, 60),   // unparseable, no bucket
	}

	buckets := OrdersOverTime(orders, Range7d, asOf)
	var count int
	var revenue float64
	for _, b := range buckets {
		count += b.Count
		revenue += b.Revenue
	}
	if count != 4 {
		t.Fatalf("expected 4 orders inside the window, got %d", count)
	}
	// Daily view is raw volume: the cancelled order still counts.
	if revenue != 100 {
		t.Fatalf("expected 100 revenue inside the window, got %v", revenue)
	}
}

func TestOrdersOverTimeOldOrderOutsideWindow(t *testing.T) {
	orders := []Order{orderAt(daysAgo(8), StatusConfirmed, 25)}
	buckets := OrdersOverTime(orders, Range7d, asOf)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.Count != 0 {
			t.Fatalf("order dated 8 days ago leaked into bucket %s", b.Key)
		}
	}
}

func TestOrdersOverTimeMonthlyBuckets(t *testing.T) {
	orders := []Order{
		orderAt("2025-06-01T10:00:00Z", StatusConfirmed, 10),
		orderAt("2025-01-20T10:00:00Z", StatusConfirmed, 20),
		orderAt("2024-07-02T10:00:00Z", StatusConfirmed, 30),
		orderAt("2024-06-02T10:00:00Z", StatusConfirmed, 99), // 13 months back
	}

	buckets := OrdersOverTime(orders, Range1y, asOf)
	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}
	if buckets[0].Key != "2024-07" || buckets[11].Key != "2025-06" {
		t.Fatalf("unexpected bucket window: %s .. %s", buckets[0].Key, buckets[11].Key)
	}
	if buckets[0].Label != "Jul" || buckets[11].Label != "Jun" {
		t.Fatalf("unexpected labels: %s .. %s", buckets[0].Label, buckets[11].Label)
	}
	var count int
	for _, b := range buckets {
		count += b.Count
	}
	if count != 3 {
		t.Fatalf("expected 3 orders inside the year, got %d", count)
	}
}

func TestOrdersOverTimeUnsupportedRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unsupported range")
		}
	}()
	OrdersOverTime(nil, Range("90d"), asOf)
}

func TestRevenueOverTimeActiveOnlyWithTopItems(t *testing.T) {
	tray := orderAt(daysAgo(1), StatusConfirmed, 60)
	tray.ItemID = "item-tray"
	tray.ItemName = "Biryani Tray"
	tray.Quantity = 2

	box := orderAt(daysAgo(1), StatusPaid, 45)
	box.ItemID = "item-box"
	box.ItemName = "Snack Box"
	box.Quantity = 3

	noShow := orderAt(daysAgo(2), StatusNoShow, 500)
	noShow.ItemID = "item-box"

	buckets, top := RevenueOverTime([]Order{tray, box, noShow}, Range7d, asOf, 1)

	var revenue float64
	for _, b := range buckets {
		revenue += b.Revenue
	}
	if revenue != 105 {
		t.Fatalf("expected 105 active revenue, got %v", revenue)
	}
	if len(top) != 1 {
		t.Fatalf("expected top list truncated to 1, got %d", len(top))
	}
	if top[0].ItemID != "item-tray" || top[0].Revenue != 60 || top[0].Quantity != 2 {
		t.Fatalf("unexpected top item %+v", top[0])
	}
}

func TestRevenueExcludesInactiveOrders(t *testing.T) {
	orders := []Order{
		orderAt(daysAgo(0), StatusPending, 10),
		orderAt(daysAgo(0), StatusConfirmed, 20),
		orderAt(daysAgo(0), StatusCancelled, 30),
	}

	summary := Revenue(orders, asOf)
	if summary.Total != 30 {
		t.Fatalf("expected total 30, got %v", summary.Total)
	}
	if len(summary.Monthly) != 6 {
		t.Fatalf("expected 6 monthly entries, got %d", len(summary.Monthly))
	}
	if summary.Monthly[5].Month != "Jun" || summary.Monthly[5].Revenue != 30 {
		t.Fatalf("unexpected current month entry %+v", summary.Monthly[5])
	}
	if summary.Monthly[0].Month != "Jan" || summary.Monthly[0].Revenue != 0 {
		t.Fatalf("unexpected oldest month entry %+v", summary.Monthly[0])
	}
}

func TestRevenueTotalIncludesOrdersOutsideSeries(t *testing.T) {
	old := orderAt("2024-01-10T10:00:00Z", StatusPickedUp, 75)
	summary := Revenue([]Order{old}, asOf)
	if summary.Total != 75 {
		t.Fatalf("expected old active order in total, got %v", summary.Total)
	}
	for _, m := range summary.Monthly {
		if m.Revenue != 0 {
			t.Fatalf("old order leaked into monthly series: %+v", m)
		}
	}
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	orders := []Order{
		orderAt(daysAgo(1), StatusPending, 10),
		orderAt(daysAgo(3), StatusConfirmed, 20),
		orderAt(daysAgo(4), StatusCancelled, 30),
	}

	first := OrdersOverTime(orders, Range7d, asOf)
	second := OrdersOverTime(orders, Range7d, asOf)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("OrdersOverTime is not idempotent")
	}

	if !reflect.DeepEqual(Revenue(orders, asOf), Revenue(orders, asOf)) {
		t.Fatalf("Revenue is not idempotent")
	}
	if !reflect.DeepEqual(KPIs(orders, asOf), KPIs(orders, asOf)) {
		t.Fatalf("KPIs is not idempotent")
	}
}
