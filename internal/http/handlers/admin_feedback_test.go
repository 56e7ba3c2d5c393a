package handlers

import "testing"

func TestFeedbackReasonLabel(t *testing.T) {
	cases := []struct {
		name     string
		reason   string
		expected string
	}{
		{
			name:     "known reason maps to display label",
			reason:   "price_too_high",
			expected: "Price too high",
		},
		{
			name:     "delivery preference",
			reason:   "prefer_delivery",
			expected: "Prefer delivery over pickup",
		},
		{
			name:     "unknown reason falls back to the raw value",
			reason:   "left_field",
			expected: "left_field",
		},
		{
			name:     "empty reason stays empty",
			reason:   "",
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := feedbackReasonLabel(tc.reason); got != tc.expected {
				t.Fatalf("feedbackReasonLabel(%q) = %q, want %q", tc.reason, got, tc.expected)
			}
		})
	}
}

func TestFeedbackReasonOrderHasLabels(t *testing.T) {
	for _, reason := range feedbackReasonOrder {
		if _, ok := feedbackReasonLabels[reason]; !ok {
			t.Fatalf("reason %q has no display label", reason)
		}
	}
}
