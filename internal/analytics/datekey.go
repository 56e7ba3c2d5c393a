package analytics

import "time"

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dayKeyLayout,
}

// parseCreatedAt accepts the timestamp shapes the orders API has emitted over
// time. Offset-less layouts are read as UTC, matching how the backend stored
// rows before timezone info was kept.
func parseCreatedAt(value string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dayKey returns the calendar-day key (YYYY-MM-DD) of an order timestamp in
// loc, so a dashboard viewed in the business's time zone buckets orders by
// the day customers experienced rather than the day UTC rolled over. Keys are
// lexically sortable. An unparseable timestamp yields "", which matches no
// bucket.
func dayKey(createdAt string, loc *time.Location) string {
	t, ok := parseCreatedAt(createdAt)
	if !ok {
		return ""
	}
	return t.In(loc).Format(dayKeyLayout)
}

// monthKey is dayKey's calendar-month sibling (YYYY-MM).
func monthKey(createdAt string, loc *time.Location) string {
	t, ok := parseCreatedAt(createdAt)
	if !ok {
		return ""
	}
	return t.In(loc).Format(monthKeyLayout)
}
