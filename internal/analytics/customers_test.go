package analytics

import "testing"

func TestTopCustomersRankingAndLimit(t *testing.T) {
	big := orderAt(daysAgo(3), StatusPickedUp, 120)
	big.Email = "big@example.com"
	big.Name = "Big Spender"

	repeatOld := orderAt(daysAgo(5), StatusConfirmed, 40)
	repeatOld.Email = "repeat@example.com"
	repeatOld.Name = "R. Customer"

	repeatNew := orderAt(daysAgo(1), StatusCancelled, 50)
	repeatNew.Email = "repeat@example.com"
	repeatNew.Name = "Renamed Customer"

	small := orderAt(daysAgo(2), StatusPending, 10)
	small.Email = "small@example.com"

	rows := TopCustomers([]Order{big, repeatOld, repeatNew, small}, 2)
	if len(rows) != 2 {
		t.Fatalf("expected limit of 2, got %d rows", len(rows))
	}
	if rows[0].Email != "big@example.com" || rows[0].TotalSpend != 120 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	// Historical spend keeps cancelled amounts; name is last-write-wins.
	if rows[1].TotalSpend != 90 || rows[1].OrderCount != 2 || rows[1].Name != "Renamed Customer" {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
}

func TestTopCustomersEmailCaseSensitive(t *testing.T) {
	a := orderAt(daysAgo(1), StatusConfirmed, 10)
	a.Email = "Same@example.com"
	b := orderAt(daysAgo(1), StatusConfirmed, 10)
	b.Email = "same@example.com"

	if rows := TopCustomers([]Order{a, b}, 5); len(rows) != 2 {
		t.Fatalf("emails must match exactly, got %d rows", len(rows))
	}
}

func TestOpenOrdersPendingNewestFirst(t *testing.T) {
	oldest := orderAt(daysAgo(5), StatusPending, 10)
	newest := orderAt(daysAgo(1), StatusPending, 10)
	confirmed := orderAt(daysAgo(0), StatusConfirmed, 10)
	broken := orderAt("not-a-date", StatusPending, 10)

	out := OpenOrders([]Order{oldest, confirmed, broken, newest})
	if len(out) != 3 {
		t.Fatalf("expected 3 pending orders, got %d", len(out))
	}
	if out[0].CreatedAt != newest.CreatedAt || out[1].CreatedAt != oldest.CreatedAt {
		t.Fatalf("unexpected order: %s, %s", out[0].CreatedAt, out[1].CreatedAt)
	}
	if out[2].CreatedAt != "not-a-date" {
		t.Fatalf("unparseable timestamps should sort last, got %s", out[2].CreatedAt)
	}
}

func TestOpenOrdersEmptyInput(t *testing.T) {
	if out := OpenOrders(nil); len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}
