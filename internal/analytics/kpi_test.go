package analytics

import (
	"testing"
	"time"
)

func monthOrder(month time.Month, day int, status string, price float64) Order {
	created := time.Date(2025, month, day, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
	return orderAt(created, status, price)
}

func TestKPIsCurrentMonthMetrics(t *testing.T) {
	orders := []Order{
		monthOrder(time.June, 2, StatusPending, 10),
		monthOrder(time.June, 3, StatusConfirmed, 20),
		monthOrder(time.June, 4, StatusPickedUp, 30),
		monthOrder(time.June, 5, StatusNoShow, 40),
		monthOrder(time.June, 6, StatusCancelled, 50),
	}

	report := KPIs(orders, asOf)

	// Cancelled drops out of the total; no-show still counts as an order.
	if report.TotalOrders != 4 {
		t.Fatalf("expected 4 non-cancelled orders, got %d", report.TotalOrders)
	}
	// 2 of 4 non-cancelled orders reached a confirmed-or-later status.
	if report.ConfirmedRate != 50 {
		t.Fatalf("expected 50%% confirmed rate, got %d", report.ConfirmedRate)
	}
	// Active orders: pending 10, confirmed 20, picked_up 30.
	if report.AvgOrderValue != 20 {
		t.Fatalf("expected avg order value 20, got %v", report.AvgOrderValue)
	}
	// 1 picked up of 2 resolved.
	if report.CompletionRate != 50 {
		t.Fatalf("expected 50%% completion rate, got %d", report.CompletionRate)
	}
}

func TestKPIsZeroBaselineDeltasAreNil(t *testing.T) {
	orders := []Order{
		monthOrder(time.June, 2, StatusConfirmed, 10),
		monthOrder(time.June, 3, StatusPickedUp, 20),
	}

	report := KPIs(orders, asOf)
	if report.TotalOrdersDelta != nil {
		t.Fatalf("expected nil totalOrders delta, got %d", *report.TotalOrdersDelta)
	}
	if report.ConfirmedRateDelta != nil || report.AvgOrderValueDelta != nil || report.CompletionRateDelta != nil {
		t.Fatalf("expected every delta nil with an empty previous month")
	}
}

func TestKPIsDeltaAgainstPreviousMonth(t *testing.T) {
	orders := []Order{
		// May: 2 orders, both confirmed, avg value 10.
		monthOrder(time.May, 10, StatusConfirmed, 10),
		monthOrder(time.May, 11, StatusConfirmed, 10),
		// June: 3 orders, all confirmed, avg value 20.
		monthOrder(time.June, 1, StatusConfirmed, 20),
		monthOrder(time.June, 2, StatusConfirmed, 20),
		monthOrder(time.June, 3, StatusConfirmed, 20),
	}

	report := KPIs(orders, asOf)
	if report.TotalOrdersDelta == nil || *report.TotalOrdersDelta != 50 {
		t.Fatalf("expected +50%% order delta, got %v", report.TotalOrdersDelta)
	}
	if report.AvgOrderValueDelta == nil || *report.AvgOrderValueDelta != 100 {
		t.Fatalf("expected +100%% avg value delta, got %v", report.AvgOrderValueDelta)
	}
	if report.ConfirmedRateDelta == nil || *report.ConfirmedRateDelta != 0 {
		t.Fatalf("expected 0%% confirmed rate delta, got %v", report.ConfirmedRateDelta)
	}
	// Neither month resolved a pickup, so the baseline is zero.
	if report.CompletionRateDelta != nil {
		t.Fatalf("expected nil completion delta, got %d", *report.CompletionRateDelta)
	}
}

func TestKPIsNegativeDelta(t *testing.T) {
	orders := []Order{
		monthOrder(time.May, 10, StatusConfirmed, 10),
		monthOrder(time.May, 11, StatusConfirmed, 10),
		monthOrder(time.May, 12, StatusConfirmed, 10),
		monthOrder(time.May, 13, StatusConfirmed, 10),
		monthOrder(time.June, 1, StatusConfirmed, 10),
	}

	report := KPIs(orders, asOf)
	if report.TotalOrdersDelta == nil || *report.TotalOrdersDelta != -75 {
		t.Fatalf("expected -75%% order delta, got %v", report.TotalOrdersDelta)
	}
}

func TestKPIsEmptyInput(t *testing.T) {
	report := KPIs(nil, asOf)
	if report.TotalOrders != 0 || report.ConfirmedRate != 0 || report.AvgOrderValue != 0 || report.CompletionRate != 0 {
		t.Fatalf("expected zero snapshot, got %+v", report.KPISnapshot)
	}
	if report.TotalOrdersDelta != nil {
		t.Fatalf("expected nil delta on empty input")
	}
}

func TestKPIsIgnoresOlderMonths(t *testing.T) {
	orders := []Order{
		monthOrder(time.March, 10, StatusConfirmed, 999),
		monthOrder(time.June, 1, StatusConfirmed, 10),
	}

	report := KPIs(orders, asOf)
	if report.TotalOrders != 1 {
		t.Fatalf("march order leaked into the current month: %+v", report.KPISnapshot)
	}
	// March is not the comparison baseline; May is, and May was empty.
	if report.TotalOrdersDelta != nil {
		t.Fatalf("expected nil delta, got %d", *report.TotalOrdersDelta)
	}
}
