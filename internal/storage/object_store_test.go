package storage

import "testing"

func TestResolveKeyFromURL(t *testing.T) {
	s := &ObjectStore{bucket: "loku-images", publicBase: "https://img.lokucaters.dev"}

	cases := []struct {
		name     string
		raw      string
		key      string
		resolved bool
	}{
		{
			name:     "managed public url maps to its key",
			raw:      "https://img.lokucaters.dev/event-images/20260310_abc.jpg",
			key:      "event-images/20260310_abc.jpg",
			resolved: true,
		},
		{
			name:     "extra slashes after the base are trimmed",
			raw:      "https://img.lokucaters.dev//event-images/a.png",
			key:      "event-images/a.png",
			resolved: true,
		},
		{
			name:     "foreign url resolves false",
			raw:      "https://cdn.example.com/event-images/a.png",
			resolved: false,
		},
		{
			name:     "bare key resolves false",
			raw:      "event-images/a.png",
			resolved: false,
		},
		{
			name:     "empty input resolves false",
			raw:      "  ",
			resolved: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := s.ResolveKeyFromURL(tc.raw)
			if ok != tc.resolved {
				t.Fatalf("ResolveKeyFromURL(%q) resolved = %v, want %v", tc.raw, ok, tc.resolved)
			}
			if key != tc.key {
				t.Fatalf("ResolveKeyFromURL(%q) = %q, want %q", tc.raw, key, tc.key)
			}
		})
	}
}
