package helpers

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 24*time.Hour)

	token, exp, err := m.Generate("u1", "alice")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if time.Until(exp) < 23*time.Hour {
		t.Fatalf("expiry %v is sooner than the configured TTL", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "alice" {
		t.Fatalf("claims = %+v, want u1/alice", claims)
	}
}

func TestParseExpiredToken(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)

	token, _, err := m.Generate("u1", "alice")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expired token parsed without error")
	}
}

func TestParseWrongKey(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("different", time.Hour)

	token, _, err := m.Generate("u1", "alice")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("token verified under a different signing key")
	}
}

func TestParseMalformedToken(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Parse(tok); err == nil {
			t.Fatalf("malformed token %q parsed without error", tok)
		}
	}
}
