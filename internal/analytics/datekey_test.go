package analytics

import (
	"testing"
	"time"
)

func TestDayKeyUsesLocalCalendar(t *testing.T) {
	montreal := time.FixedZone("EST", -5*3600)

	cases := []struct {
		name      string
		createdAt string
		expected  string
	}{
		{
			name:      "utc midnight rolls back a day locally",
			createdAt: "2025-02-15T03:30:00Z",
			expected:  "2025-02-14",
		},
		{
			name:      "midday stays on the same day",
			createdAt: "2025-02-14T18:00:00Z",
			expected:  "2025-02-14",
		},
		{
			name:      "offset timestamps are honored",
			createdAt: "2025-02-14T23:30:00-05:00",
			expected:  "2025-02-14",
		},
		{
			name:      "legacy offset-less rows read as utc",
			createdAt: "2025-02-15 02:00:00",
			expected:  "2025-02-14",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dayKey(tc.createdAt, montreal); got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	montreal := time.FixedZone("EST", -5*3600)

	if got := monthKey("2025-03-01T02:00:00Z", montreal); got != "2025-02" {
		t.Fatalf("expected 2025-02, got %s", got)
	}
	if got := monthKey("2025-03-10T12:00:00Z", montreal); got != "2025-03" {
		t.Fatalf("expected 2025-03, got %s", got)
	}
}

func TestDateKeysTolerateMalformedTimestamps(t *testing.T) {
	for _, value := range []string{"", "not-a-date", "2025-13-40T99:00:00Z", "14/02/2025"} {
		if got := dayKey(value, time.UTC); got != "" {
			t.Fatalf("expected empty day key for %q, got %s", value, got)
		}
		if got := monthKey(value, time.UTC); got != "" {
			t.Fatalf("expected empty month key for %q, got %s", value, got)
		}
	}
}
