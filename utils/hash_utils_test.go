package utils

import "testing"

func TestDeriveIDDeterminism(t *testing.T) {
	first := DeriveID("6f96bc9f-3f86-4d23-b581-183f2dcba7f2", "example.com", "203.0.113.7", "Mozilla/5.0")
	for i := 0; i < 10; i++ {
		got := DeriveID("6f96bc9f-3f86-4d23-b581-183f2dcba7f2", "example.com", "203.0.113.7", "Mozilla/5.0")
		if got != first {
			t.Fatalf("DeriveID not deterministic: got %s, want %s", got, first)
		}
	}
}

func TestDeriveIDDistinguishesInputs(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
	}{
		{"different ip", []string{"site", "host", "1.1.1.1", "ua"}, []string{"site", "host", "1.1.1.2", "ua"}},
		{"different website", []string{"site-a", "host", "ip", "ua"}, []string{"site-b", "host", "ip", "ua"}},
		{"shifted components", []string{"ab", "c"}, []string{"a", "bc"}},
		{"empty vs missing", []string{"a", ""}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if DeriveID(tt.a...) == DeriveID(tt.b...) {
				t.Fatalf("DeriveID(%v) == DeriveID(%v), want distinct ids", tt.a, tt.b)
			}
		})
	}
}

func TestDeriveIDIsValidUUID(t *testing.T) {
	id := DeriveID("website", "host", "ip", "ua")
	if len(id) != 36 {
		t.Fatalf("expected uuid-formatted id, got %q", id)
	}
}
