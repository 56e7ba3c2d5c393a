package analytics

import (
	"math"
	"time"
)

// KPISnapshot holds one calendar month's headline metrics. Rates are
// nearest-integer percentages; AvgOrderValue is a raw amount.
type KPISnapshot struct {
	TotalOrders    int     `json:"totalOrders"`
	ConfirmedRate  int     `json:"confirmedRate"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
	CompletionRate int     `json:"completionRate"`
}

// KPIReport compares the current calendar month against the one before it.
// A nil delta means the prior baseline was zero and no comparison exists;
// callers must render that distinctly from 0%.
type KPIReport struct {
	KPISnapshot
	TotalOrdersDelta    *int `json:"totalOrdersDelta"`
	ConfirmedRateDelta  *int `json:"confirmedRateDelta"`
	AvgOrderValueDelta  *int `json:"avgOrderValueDelta"`
	CompletionRateDelta *int `json:"completionRateDelta"`
}

// KPIs splits the snapshot into the current and previous calendar months (by
// created_at month key in asOf's location), computes each month's metrics
// independently, and derives a signed percentage delta per metric.
func KPIs(orders []Order, asOf time.Time) KPIReport {
	loc := asOf.Location()
	firstOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, loc)
	currKey := firstOfMonth.Format(monthKeyLayout)
	prevKey := firstOfMonth.AddDate(0, -1, 0).Format(monthKeyLayout)

	var currOrders, prevOrders []Order
	for _, o := range orders {
		switch monthKey(o.CreatedAt, loc) {
		case currKey:
			currOrders = append(currOrders, o)
		case prevKey:
			prevOrders = append(prevOrders, o)
		}
	}

	curr := monthMetrics(currOrders)
	prev := monthMetrics(prevOrders)
	return KPIReport{
		KPISnapshot:         curr,
		TotalOrdersDelta:    pctDelta(float64(curr.TotalOrders), float64(prev.TotalOrders)),
		ConfirmedRateDelta:  pctDelta(float64(curr.ConfirmedRate), float64(prev.ConfirmedRate)),
		AvgOrderValueDelta:  pctDelta(curr.AvgOrderValue, prev.AvgOrderValue),
		CompletionRateDelta: pctDelta(float64(curr.CompletionRate), float64(prev.CompletionRate)),
	}
}

func monthMetrics(subset []Order) KPISnapshot {
	var snap KPISnapshot
	var confirmed, active, pickedUp, resolved int
	var activeRevenue float64
	for _, o := range subset {
		if o.Status != StatusCancelled {
			snap.TotalOrders++
		}
		switch o.Status {
		case StatusConfirmed, StatusReminded, StatusPaid, StatusPickedUp:
			confirmed++
		}
		if IsActive(o) {
			active++
			activeRevenue += o.TotalPrice
		}
		switch o.Status {
		case StatusPickedUp:
			pickedUp++
			resolved++
		case StatusNoShow:
			resolved++
		}
	}
	if snap.TotalOrders > 0 {
		snap.ConfirmedRate = int(math.Round(float64(confirmed) / float64(snap.TotalOrders) * 100))
	}
	if active > 0 {
		snap.AvgOrderValue = activeRevenue / float64(active)
	}
	if resolved > 0 {
		snap.CompletionRate = int(math.Round(float64(pickedUp) / float64(resolved) * 100))
	}
	return snap
}

// pctDelta is the signed percentage change from prev to curr, rounded to the
// nearest integer. A zero baseline has no meaningful delta, so nil comes back
// instead of 0 or an infinity.
func pctDelta(curr, prev float64) *int {
	if prev == 0 {
		return nil
	}
	d := int(math.Round((curr - prev) / prev * 100))
	return &d
}
