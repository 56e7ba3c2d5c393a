package analytics

import (
	"math"
	"sort"
	"strings"
)

// LocationRow is one pickup location's share of the order set.
type LocationRow struct {
	Location string  `json:"location"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

// LocationBreakdown groups the full snapshot by the raw pickup_location
// label. No normalization: location names are admin-curated, so two
// differently cased labels are deliberately distinct groups. Rows sort by
// count descending; ties keep first-seen order.
func LocationBreakdown(orders []Order) []LocationRow {
	idx := make(map[string]int)
	rows := make([]LocationRow, 0)
	for _, o := range orders {
		pos, ok := idx[o.PickupLocation]
		if !ok {
			pos = len(rows)
			idx[o.PickupLocation] = pos
			rows = append(rows, LocationRow{Location: o.PickupLocation})
		}
		rows[pos].Count++
		rows[pos].Revenue += o.TotalPrice
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// TimeSlotRow is one pickup time slot with its short chart label.
type TimeSlotRow struct {
	Slot       string `json:"slot"`
	ShortLabel string `json:"shortLabel"`
	Count      int    `json:"count"`
}

// TimeSlotBreakdown groups the full snapshot by pickup_time_slot, sorted by
// count descending with first-seen order on ties.
func TimeSlotBreakdown(orders []Order) []TimeSlotRow {
	idx := make(map[string]int)
	rows := make([]TimeSlotRow, 0)
	for _, o := range orders {
		pos, ok := idx[o.PickupTimeSlot]
		if !ok {
			pos = len(rows)
			idx[o.PickupTimeSlot] = pos
			rows = append(rows, TimeSlotRow{
				Slot:       o.PickupTimeSlot,
				ShortLabel: shortSlotLabel(o.PickupTimeSlot),
			})
		}
		rows[pos].Count++
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// shortSlotLabel condenses "9:00 AM - 10:00 AM" to "9 AM" for tight chart
// axes. Slots are display labels, never parsed for ordering.
func shortSlotLabel(slot string) string {
	start, _, _ := strings.Cut(slot, " - ")
	return strings.TrimSpace(strings.ReplaceAll(start, ":00", ""))
}

// ItemRevenueBreakdown groups the full snapshot by item identity,
// accumulating unit quantity and revenue, sorted by revenue descending with
// first-seen order on ties.
func ItemRevenueBreakdown(orders []Order) []ItemRow {
	idx := make(map[string]int)
	rows := make([]ItemRow, 0)
	for _, o := range orders {
		pos, ok := idx[o.ItemID]
		if !ok {
			pos = len(rows)
			idx[o.ItemID] = pos
			rows = append(rows, ItemRow{ItemID: o.ItemID, ItemName: o.ItemName})
		}
		rows[pos].Quantity += o.Quantity
		rows[pos].Revenue += o.TotalPrice
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

// PaymentMethodRow is one payment method's share of active orders.
type PaymentMethodRow struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// PaymentMethodUnspecified groups active orders that carry no payment method
// yet (payment method is only recorded once an order is marked paid).
const PaymentMethodUnspecified = "unspecified"

// PaymentMethodBreakdown groups active orders by payment method, sorted by
// count descending with first-seen order on ties.
func PaymentMethodBreakdown(orders []Order) []PaymentMethodRow {
	idx := make(map[string]int)
	rows := make([]PaymentMethodRow, 0)
	for _, o := range orders {
		if !IsActive(o) {
			continue
		}
		method := o.PaymentMethod
		if method == "" {
			method = PaymentMethodUnspecified
		}
		pos, ok := idx[method]
		if !ok {
			pos = len(rows)
			idx[method] = pos
			rows = append(rows, PaymentMethodRow{Method: method})
		}
		rows[pos].Count++
		rows[pos].Revenue += o.TotalPrice
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// StatusRow is one status's share of the whole (unfiltered) order set.
type StatusRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Pct    int    `json:"pct"`
}

// StatusBreakdown groups the full snapshot by status. The fold is unfiltered
// since status itself encodes cancellation; row counts always sum to
// len(orders). Pct is the nearest-integer percentage of the whole set.
// Statuses with zero orders get no row, but the denominator still reflects
// the whole set. Rows sort by count descending, first-seen order on ties.
func StatusBreakdown(orders []Order) []StatusRow {
	idx := make(map[string]int)
	rows := make([]StatusRow, 0)
	for _, o := range orders {
		pos, ok := idx[o.Status]
		if !ok {
			pos = len(rows)
			idx[o.Status] = pos
			rows = append(rows, StatusRow{Status: o.Status})
		}
		rows[pos].Count++
	}
	for i := range rows {
		rows[i].Pct = int(math.Round(float64(rows[i].Count) / float64(len(orders)) * 100))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// LocationItems is one pickup location with its per-item totals.
type LocationItems struct {
	Location string    `json:"location"`
	Items    []ItemRow `json:"items"`
}

// ItemsPerLocation is a two-level grouping over active orders: outer by
// pickup location, inner by item, quantities summed (not order counts).
// Inner rows sort by quantity descending; outer rows by total quantity
// descending; first-seen order breaks ties at both levels.
func ItemsPerLocation(orders []Order) []LocationItems {
	locIdx := make(map[string]int)
	itemIdx := make(map[string]map[string]int)
	rows := make([]LocationItems, 0)
	for _, o := range orders {
		if !IsActive(o) {
			continue
		}
		pos, ok := locIdx[o.PickupLocation]
		if !ok {
			pos = len(rows)
			locIdx[o.PickupLocation] = pos
			itemIdx[o.PickupLocation] = make(map[string]int)
			rows = append(rows, LocationItems{Location: o.PickupLocation})
		}
		inner := itemIdx[o.PickupLocation]
		itemPos, ok := inner[o.ItemID]
		if !ok {
			itemPos = len(rows[pos].Items)
			inner[o.ItemID] = itemPos
			rows[pos].Items = append(rows[pos].Items, ItemRow{ItemID: o.ItemID, ItemName: o.ItemName})
		}
		rows[pos].Items[itemPos].Quantity += o.Quantity
		rows[pos].Items[itemPos].Revenue += o.TotalPrice
	}

	for i := range rows {
		sort.SliceStable(rows[i].Items, func(a, b int) bool {
			return rows[i].Items[a].Quantity > rows[i].Items[b].Quantity
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return totalQuantity(rows[i].Items) > totalQuantity(rows[j].Items)
	})
	return rows
}

func totalQuantity(items []ItemRow) int {
	var sum int
	for _, item := range items {
		sum += item.Quantity
	}
	return sum
}
