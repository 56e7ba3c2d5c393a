package analytics

import "testing"

func TestLocationBreakdownMergesAndSorts(t *testing.T) {
	a := orderAt(daysAgo(1), StatusConfirmed, 15)
	b := orderAt(daysAgo(2), StatusPending, 25)
	c := orderAt(daysAgo(1), StatusCancelled, 40)
	c.PickupLocation = "Westside"

	rows := LocationBreakdown([]Order{a, b, c})
	if len(rows) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(rows))
	}
	if rows[0].Location != "Downtown" || rows[0].Count != 2 || rows[0].Revenue != 40 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	// Cancelled orders still show up in the raw location volume.
	if rows[1].Location != "Westside" || rows[1].Count != 1 || rows[1].Revenue != 40 {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
}

func TestLocationBreakdownCaseSensitive(t *testing.T) {
	a := orderAt(daysAgo(1), StatusConfirmed, 10)
	b := orderAt(daysAgo(1), StatusConfirmed, 10)
	b.PickupLocation = "downtown"

	rows := LocationBreakdown([]Order{a, b})
	if len(rows) != 2 {
		t.Fatalf("differently cased labels must stay distinct, got %d rows", len(rows))
	}
}

func TestTimeSlotBreakdownOrdering(t *testing.T) {
	var orders []Order
	for i := 0; i < 3; i++ {
		orders = append(orders, orderAt(daysAgo(i), StatusConfirmed, 10))
	}
	late := orderAt(daysAgo(1), StatusConfirmed, 10)
	late.PickupTimeSlot = "11:00 AM - 12:00 PM"
	orders = append(orders, late)

	rows := TimeSlotBreakdown(orders)
	if len(rows) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(rows))
	}
	if rows[0].Slot != "9:00 AM - 10:00 AM" || rows[0].Count != 3 {
		t.Fatalf("expected the 9 AM slot first, got %+v", rows[0])
	}
	if rows[0].ShortLabel != "9 AM" {
		t.Fatalf("expected short label 9 AM, got %s", rows[0].ShortLabel)
	}
	if rows[1].ShortLabel != "11 AM" {
		t.Fatalf("expected short label 11 AM, got %s", rows[1].ShortLabel)
	}
}

func TestShortSlotLabel(t *testing.T) {
	cases := []struct {
		slot     string
		expected string
	}{
		{"9:00 AM - 10:00 AM", "9 AM"},
		{"12:30 PM - 1:30 PM", "12:30 PM"},
		{"5:00 PM", "5 PM"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := shortSlotLabel(tc.slot); got != tc.expected {
			t.Fatalf("shortSlotLabel(%q): expected %q, got %q", tc.slot, tc.expected, got)
		}
	}
}

func TestItemRevenueBreakdown(t *testing.T) {
	tray := orderAt(daysAgo(1), StatusConfirmed, 60)
	tray.ItemID = "item-tray"
	tray.Quantity = 2

	trayAgain := orderAt(daysAgo(2), StatusPaid, 30)
	trayAgain.ItemID = "item-tray"
	trayAgain.Quantity = 1

	box := orderAt(daysAgo(1), StatusConfirmed, 45)
	box.ItemID = "item-box"
	box.ItemName = "Snack Box"
	box.Quantity = 3

	rows := ItemRevenueBreakdown([]Order{box, tray, trayAgain})
	if len(rows) != 2 {
		t.Fatalf("expected 2 items, got %d", len(rows))
	}
	if rows[0].ItemID != "item-tray" || rows[0].Quantity != 3 || rows[0].Revenue != 90 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
}

func TestPaymentMethodBreakdownActiveOnly(t *testing.T) {
	cash := orderAt(daysAgo(1), StatusPaid, 20)
	cash.PaymentMethod = "cash"
	etransfer := orderAt(daysAgo(1), StatusPaid, 35)
	etransfer.PaymentMethod = "etransfer"
	pending := orderAt(daysAgo(2), StatusPending, 15)
	cancelled := orderAt(daysAgo(2), StatusCancelled, 99)
	cancelled.PaymentMethod = "cash"

	rows := PaymentMethodBreakdown([]Order{cash, etransfer, pending, cancelled})
	if len(rows) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(rows))
	}

	byMethod := map[string]PaymentMethodRow{}
	for _, row := range rows {
		byMethod[row.Method] = row
	}
	if row := byMethod["cash"]; row.Count != 1 || row.Revenue != 20 {
		t.Fatalf("cancelled order leaked into cash row %+v", row)
	}
	if row := byMethod[PaymentMethodUnspecified]; row.Count != 1 || row.Revenue != 15 {
		t.Fatalf("unexpected unspecified row %+v", row)
	}
}

func TestStatusBreakdownSumsToInputSize(t *testing.T) {
	orders := []Order{
		orderAt(daysAgo(1), StatusPending, 10),
		orderAt(daysAgo(1), StatusPending, 10),
		orderAt(daysAgo(2), StatusConfirmed, 10),
		orderAt(daysAgo(3), StatusCancelled, 10),
	}

	rows := StatusBreakdown(orders)
	var sum int
	for _, row := range rows {
		sum += row.Count
	}
	if sum != len(orders) {
		t.Fatalf("status counts sum to %d, want %d", sum, len(orders))
	}
	if rows[0].Status != StatusPending || rows[0].Pct != 50 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	for _, row := range rows {
		if row.Count == 0 {
			t.Fatalf("zero-count status row should be omitted: %+v", row)
		}
	}
}

func TestStatusBreakdownEmptyInput(t *testing.T) {
	if rows := StatusBreakdown(nil); len(rows) != 0 {
		t.Fatalf("expected no rows for empty input, got %d", len(rows))
	}
}

func TestItemsPerLocation(t *testing.T) {
	tray := orderAt(daysAgo(1), StatusConfirmed, 60)
	tray.ItemID = "item-tray"
	tray.Quantity = 2

	box := orderAt(daysAgo(1), StatusPaid, 45)
	box.ItemID = "item-box"
	box.ItemName = "Snack Box"
	box.Quantity = 5

	west := orderAt(daysAgo(2), StatusConfirmed, 30)
	west.PickupLocation = "Westside"
	west.ItemID = "item-tray"
	west.Quantity = 1

	noShow := orderAt(daysAgo(1), StatusNoShow, 500)
	noShow.Quantity = 50

	rows := ItemsPerLocation([]Order{tray, box, west, noShow})
	if len(rows) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(rows))
	}
	if rows[0].Location != "Downtown" {
		t.Fatalf("expected Downtown first, got %s", rows[0].Location)
	}
	if len(rows[0].Items) != 2 || rows[0].Items[0].ItemID != "item-box" || rows[0].Items[0].Quantity != 5 {
		t.Fatalf("unexpected Downtown items %+v", rows[0].Items)
	}
	if rows[1].Items[0].Quantity != 1 || rows[1].Items[0].Revenue != 30 {
		t.Fatalf("unexpected Westside items %+v", rows[1].Items)
	}
}
