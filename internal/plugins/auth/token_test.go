package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenCodec_IssueVerifyRoundtrip(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	token, err := codec.Issue(7, "abc")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verifying fresh token: %v", err)
	}
	if identity.UserID != 7 {
		t.Errorf("expected user id 7, got %d", identity.UserID)
	}
	if identity.Username != "abc" {
		t.Errorf("expected username abc, got %q", identity.Username)
	}

	wantExpiry := time.Now().Add(TokenTTL)
	if d := identity.ExpiresAt.Sub(wantExpiry); d < -time.Minute || d > time.Minute {
		t.Errorf("expiry %v not within a minute of now+24h", identity.ExpiresAt)
	}
}

func TestTokenCodec_TamperedSignatureFails(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	token, err := codec.Issue(7, "abc")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	// Flip a single byte of the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.Verify(tampered); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	codec := NewTokenCodec(testSecret)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue(7, "abc")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	// Just inside the window: still valid.
	codec.now = func() time.Time { return issued.Add(TokenTTL - time.Minute) }
	if _, err := codec.Verify(token); err != nil {
		t.Errorf("token should verify just before expiry, got %v", err)
	}

	// Past the window: collapsed to the single invalid-token error.
	codec.now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
	if _, err := codec.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken past expiry, got %v", err)
	}
}

func TestTokenCodec_WrongSecretFails(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	other := NewTokenCodec("ffffffffffffffffffffffffffffffff")

	token, err := codec.Issue(7, "abc")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	if _, err := other.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken under a different secret, got %v", err)
	}
}

func TestTokenCodec_GarbageFails(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Verify(garbage); err != ErrInvalidToken {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", garbage, err)
		}
	}
}
