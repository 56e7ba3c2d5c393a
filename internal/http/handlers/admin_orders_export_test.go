package handlers

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain value passes through",
			input:    "orders_2025-02-14",
			expected: "orders_2025-02-14",
		},
		{
			name:     "spaces and slashes collapse to underscores",
			input:    "pickup sheet / feb",
			expected: "pickup_sheet_feb",
		},
		{
			name:     "unicode is stripped",
			input:    "commandes février",
			expected: "commandes_f_vrier",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeFilename(tc.input); got != tc.expected {
				t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
