package analytics

import (
	"fmt"
	"sort"
	"time"
)

// Range selects the bucket granularity for the time-series views. The set is
// a closed contract with the caller; anything else is a caller bug.
type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range1y  Range = "1y"
)

// ParseRange validates a range value supplied over the wire.
func ParseRange(value string) (Range, error) {
	switch Range(value) {
	case Range7d, Range30d, Range1y:
		return Range(value), nil
	}
	return "", fmt.Errorf("unsupported range %q", value)
}

// Bucket is one calendar unit (day or month) in a time series. Buckets with
// no orders are real zero entries, never omitted: charts depend on a
// fixed-length x-axis.
type Bucket struct {
	Key     string  `json:"date"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// OrdersOverTime folds the snapshot into 7 or 30 daily buckets or 12 monthly
// buckets ending at asOf, oldest first. The fold is unfiltered by status: the
// daily view reflects raw order volume. Orders outside the window, or with
// unreadable timestamps, contribute to no bucket. An unknown range panics.
func OrdersOverTime(orders []Order, r Range, asOf time.Time) []Bucket {
	buckets, byKey, monthly := emptyBuckets(r, asOf)
	loc := asOf.Location()
	for _, o := range orders {
		idx, ok := byKey[bucketKey(o, monthly, loc)]
		if !ok {
			continue
		}
		buckets[idx].Count++
		buckets[idx].Revenue += o.TotalPrice
	}
	return buckets
}

// ItemRow is one item grouped by identity, with units and revenue summed.
type ItemRow struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// RevenueOverTime applies the same bucket-fill contract as OrdersOverTime but
// restricts the fold to active orders, and additionally ranks the top items
// by revenue inside the window for the annotated per-event revenue trend.
// Ties in item revenue keep first-seen order.
func RevenueOverTime(orders []Order, r Range, asOf time.Time, topItems int) ([]Bucket, []ItemRow) {
	buckets, byKey, monthly := emptyBuckets(r, asOf)
	loc := asOf.Location()

	itemIdx := make(map[string]int)
	items := make([]ItemRow, 0)
	for _, o := range orders {
		if !IsActive(o) {
			continue
		}
		idx, ok := byKey[bucketKey(o, monthly, loc)]
		if !ok {
			continue
		}
		buckets[idx].Count++
		buckets[idx].Revenue += o.TotalPrice

		pos, seen := itemIdx[o.ItemID]
		if !seen {
			pos = len(items)
			itemIdx[o.ItemID] = pos
			items = append(items, ItemRow{ItemID: o.ItemID, ItemName: o.ItemName})
		}
		items[pos].Quantity += o.Quantity
		items[pos].Revenue += o.TotalPrice
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue > items[j].Revenue
	})
	if topItems > 0 && len(items) > topItems {
		items = items[:topItems]
	}
	return buckets, items
}

// MonthRevenue is one entry of the fixed six-month revenue series.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// RevenueSummary carries total active revenue plus the trailing six calendar
// months, oldest first.
type RevenueSummary struct {
	Total   float64        `json:"total"`
	Monthly []MonthRevenue `json:"monthly"`
}

// Revenue sums revenue over active orders and folds it into the six calendar
// months ending at asOf's month. Active orders outside that window still
// count toward Total.
func Revenue(orders []Order, asOf time.Time) RevenueSummary {
	loc := asOf.Location()
	firstOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, loc)

	byKey := make(map[string]int, 6)
	monthly := make([]MonthRevenue, 0, 6)
	for i := 5; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		byKey[m.Format(monthKeyLayout)] = len(monthly)
		monthly = append(monthly, MonthRevenue{Month: m.Format("Jan")})
	}

	var total float64
	for _, o := range orders {
		if !IsActive(o) {
			continue
		}
		total += o.TotalPrice
		if idx, ok := byKey[monthKey(o.CreatedAt, loc)]; ok {
			monthly[idx].Revenue += o.TotalPrice
		}
	}
	return RevenueSummary{Total: total, Monthly: monthly}
}

func bucketKey(o Order, monthly bool, loc *time.Location) string {
	if monthly {
		return monthKey(o.CreatedAt, loc)
	}
	return dayKey(o.CreatedAt, loc)
}

func emptyBuckets(r Range, asOf time.Time) ([]Bucket, map[string]int, bool) {
	loc := asOf.Location()
	switch r {
	case Range1y:
		firstOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, loc)
		buckets := make([]Bucket, 0, 12)
		byKey := make(map[string]int, 12)
		for i := 11; i >= 0; i-- {
			m := firstOfMonth.AddDate(0, -i, 0)
			byKey[m.Format(monthKeyLayout)] = len(buckets)
			buckets = append(buckets, Bucket{Key: m.Format(monthKeyLayout), Label: m.Format("Jan")})
		}
		return buckets, byKey, true
	case Range7d, Range30d:
		days := 7
		if r == Range30d {
			days = 30
		}
		today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, loc)
		buckets := make([]Bucket, 0, days)
		byKey := make(map[string]int, days)
		for i := days - 1; i >= 0; i-- {
			d := today.AddDate(0, 0, -i)
			byKey[d.Format(dayKeyLayout)] = len(buckets)
			buckets = append(buckets, Bucket{Key: d.Format(dayKeyLayout), Label: d.Format("Jan 2")})
		}
		return buckets, byKey, false
	default:
		panic(fmt.Sprintf("analytics: unsupported range %q", r))
	}
}
