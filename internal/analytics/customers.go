package analytics

import "sort"

// CustomerRow ranks one customer by lifetime spend.
type CustomerRow struct {
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	TotalSpend float64 `json:"totalSpend"`
	OrderCount int     `json:"orderCount"`
}

// TopCustomers groups orders by exact email (case-sensitive, no
// normalization) and ranks by total spend, truncated to limit. Spend is
// unfiltered: a customer's historical total keeps cancelled and no-show
// amounts, which is what the dashboard has always shown. Name is
// last-write-wins over input order. Ties in spend keep first-seen order.
func TopCustomers(orders []Order, limit int) []CustomerRow {
	idx := make(map[string]int)
	rows := make([]CustomerRow, 0)
	for _, o := range orders {
		pos, ok := idx[o.Email]
		if !ok {
			pos = len(rows)
			idx[o.Email] = pos
			rows = append(rows, CustomerRow{Email: o.Email})
		}
		rows[pos].Name = o.Name
		rows[pos].TotalSpend += o.TotalPrice
		rows[pos].OrderCount++
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSpend > rows[j].TotalSpend
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// OpenOrders returns the pending orders, most recent first. Orders whose
// created_at cannot be parsed sort to the end; equal timestamps keep input
// order.
func OpenOrders(orders []Order) []Order {
	out := make([]Order, 0)
	for _, o := range orders {
		if o.Status == StatusPending {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := parseCreatedAt(out[i].CreatedAt)
		tj, _ := parseCreatedAt(out[j].CreatedAt)
		return ti.After(tj)
	})
	return out
}
