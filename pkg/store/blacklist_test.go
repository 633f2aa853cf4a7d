package store

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisTokenBlacklist(t *testing.T) {
	redis := miniredis.RunT(t)
	bl := NewRedisTokenBlacklist(redis.Addr(), "", "")

	if ok, err := bl.IsTokenBlacklisted("tok"); err != nil || ok {
		t.Fatalf("fresh token should not be blacklisted, ok=%v err=%v", ok, err)
	}
	if err := bl.BlacklistToken("tok"); err != nil {
		t.Fatalf("blacklist: %v", err)
	}
	if ok, err := bl.IsTokenBlacklisted("tok"); err != nil || !ok {
		t.Fatalf("expected blacklisted token, ok=%v err=%v", ok, err)
	}

	// Shared set: a second client against the same Redis sees the entry.
	other := NewRedisTokenBlacklist(redis.Addr(), "", "")
	if ok, _ := other.IsTokenBlacklisted("tok"); !ok {
		t.Fatal("revocation should be visible across clients")
	}
}
