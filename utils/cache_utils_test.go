package utils

import (
	"testing"
	"time"
)

var testKey = []byte("test-signing-key")

func testClaims() *CacheClaims {
	return &CacheClaims{
		WebsiteID: "2f8d1f7e-5b19-4c55-8f95-6d9a7802a001",
		SessionID: "b8e1d4a3-9d90-5c2f-8f11-47e3a2f4c002",
		VisitID:   "c3a9e851-7720-5e1b-a61f-90d2b10cd003",
		IssuedAt:  time.Now().Unix(),
	}
}

func TestCacheRoundTrip(t *testing.T) {
	want := testClaims()

	token, err := EncodeCache(want, testKey)
	if err != nil {
		t.Fatalf("EncodeCache failed: %v", err)
	}

	got := DecodeCache(token, testKey)
	if got == nil {
		t.Fatal("DecodeCache returned nil for a freshly issued token")
	}
	if got.WebsiteID != want.WebsiteID || got.SessionID != want.SessionID ||
		got.VisitID != want.VisitID || got.IssuedAt != want.IssuedAt {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestDecodeCacheRejectsUntrusted(t *testing.T) {
	token, err := EncodeCache(testClaims(), testKey)
	if err != nil {
		t.Fatalf("EncodeCache failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
		key   []byte
	}{
		{"wrong key", token, []byte("a-different-key")},
		{"garbage", "not-a-token", testKey},
		{"empty", "", testKey},
		{"truncated", token[:len(token)/2], testKey},
		{"tampered signature", token + "x", testKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeCache(tt.token, tt.key); got != nil {
				t.Fatalf("DecodeCache accepted an untrusted token: %+v", got)
			}
		})
	}
}

func TestDecodeCacheRejectsIncompleteClaims(t *testing.T) {
	token, err := EncodeCache(&CacheClaims{WebsiteID: "only-a-website"}, testKey)
	if err != nil {
		t.Fatalf("EncodeCache failed: %v", err)
	}
	if got := DecodeCache(token, testKey); got != nil {
		t.Fatalf("DecodeCache accepted claims missing session/visit ids: %+v", got)
	}
}
