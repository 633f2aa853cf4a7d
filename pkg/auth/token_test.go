package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, ttl, err := m.Generate("u1", "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %v", ttl)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ana@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Generate("u1", "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token signed with another secret should fail verification")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Millisecond)
	token, _, err := m.Generate("u1", "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expired token should fail verification")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	if _, err := m.Verify("not.a.jwt"); err == nil {
		t.Fatal("malformed token should fail verification")
	}
}
