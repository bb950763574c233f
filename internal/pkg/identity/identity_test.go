package identity

import (
	"testing"
)

func TestDeriveUserKey(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		ipAddress string
		wantSame  [2]string // inputs expected to produce the same key
	}{
		{
			name:      "both fields present",
			userAgent: "Mozilla/5.0",
			ipAddress: "203.0.113.7",
			wantSame:  [2]string{"Mozilla/5.0", "203.0.113.7"},
		},
		{
			name:      "missing fields fall back to placeholder",
			userAgent: "",
			ipAddress: "",
			wantSame:  [2]string{"unknown", "unknown"},
		},
		{
			name:      "missing ip only",
			userAgent: "curl/8.0",
			ipAddress: "",
			wantSame:  [2]string{"curl/8.0", "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveUserKey(tt.userAgent, tt.ipAddress)
			if len(got) != 32 {
				t.Errorf("DeriveUserKey() length = %d, want 32 hex chars", len(got))
			}
			if again := DeriveUserKey(tt.userAgent, tt.ipAddress); again != got {
				t.Errorf("DeriveUserKey() not stable: %s != %s", got, again)
			}
			if equiv := DeriveUserKey(tt.wantSame[0], tt.wantSame[1]); equiv != got {
				t.Errorf("DeriveUserKey(%q, %q) = %s, want %s", tt.wantSame[0], tt.wantSame[1], equiv, got)
			}
		})
	}
}

func TestDeriveUserKeyDistinctIdentities(t *testing.T) {
	a := DeriveUserKey("Mozilla/5.0", "203.0.113.7")
	b := DeriveUserKey("Mozilla/5.0", "203.0.113.8")
	if a == b {
		t.Errorf("different ip addresses produced the same key: %s", a)
	}
}
