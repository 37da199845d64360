package payment

import (
	"testing"
	"time"
)

func TestSellerEmail(t *testing.T) {
	tests := []struct {
		name   string
		seller string
		domain string
		want   string
	}{
		{"hyphenated seller", "Hayes-Mitchell", "autocart.com", "hayes-mitchell@autocart.com"},
		{"spaces stripped", "Vargas Group", "autocart.com", "vargasgroup@autocart.com"},
		{"multi word", "Brennan and Sons", "autocart.com", "brennanandsons@autocart.com"},
		{"already lowercase", "orbit labs", "autocart.com", "orbitlabs@autocart.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SellerEmail(tt.seller, tt.domain); got != tt.want {
				t.Errorf("SellerEmail(%q, %q) = %q, want %q", tt.seller, tt.domain, got, tt.want)
			}
		})
	}
}

func TestStoredTokenExpired(t *testing.T) {
	expiry := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	token := &StoredToken{AccessToken: "tok", ExpiresAt: expiry}

	if token.Expired(expiry.Add(-time.Second)) {
		t.Fatal("token should not be expired before its expiry")
	}
	if !token.Expired(expiry) {
		t.Fatal("token should be expired exactly at its expiry")
	}
	if !token.Expired(expiry.Add(time.Hour)) {
		t.Fatal("token should be expired after its expiry")
	}
}
