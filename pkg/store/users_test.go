package store

import (
	"sort"
	"testing"

	"audira/pkg/domain"
)

func TestFollowerSymmetry(t *testing.T) {
	m := NewMemory()
	m.CreateUser(domain.User{ID: "u1", Username: "ana", Email: "ana@example.com"})
	m.CreateUser(domain.User{ID: "u2", Username: "ben", Email: "ben@example.com"})

	m.AddFollower("u1", "u2")

	if got := m.GetFollowers("u1"); len(got) != 1 || got[0] != "u2" {
		t.Fatalf("expected followers[u1]==[u2], got %v", got)
	}
	if got := m.GetFollowing("u2"); len(got) != 1 || got[0] != "u1" {
		t.Fatalf("expected following[u2]==[u1], got %v", got)
	}

	m.RemoveFollower("u1", "u2")
	if got := m.GetFollowers("u1"); len(got) != 0 {
		t.Fatalf("followers should be empty after unfollow, got %v", got)
	}
	if got := m.GetFollowing("u2"); len(got) != 0 {
		t.Fatalf("following should be empty after unfollow, got %v", got)
	}
}

func TestFollowLazyInitAndNoopRemoval(t *testing.T) {
	m := NewMemory()
	// Neither side was created through CreateUser; sets initialize lazily.
	m.AddFollower("a", "b")
	if got := m.GetFollowers("a"); len(got) != 1 {
		t.Fatalf("lazy init failed, followers=%v", got)
	}
	// Removing a relationship that does not exist is a no-op.
	m.RemoveFollower("a", "c")
	m.RemoveFollower("x", "y")
	if got := m.GetFollowers("a"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("unrelated removal must not disturb the set, got %v", got)
	}
}

func TestFollowerSetSemantics(t *testing.T) {
	m := NewMemory()
	m.AddFollower("u1", "u2")
	m.AddFollower("u1", "u2")
	m.AddFollower("u1", "u3")

	got := m.GetFollowers("u1")
	sort.Strings(got)
	if len(got) != 2 || got[0] != "u2" || got[1] != "u3" {
		t.Fatalf("duplicate follows must collapse, got %v", got)
	}
}

func TestUpdateUserShallowMerge(t *testing.T) {
	m := NewMemory()
	m.CreateUser(domain.User{ID: "u1", Username: "ana", Email: "ana@example.com", PasswordHash: "h", Bio: "hello"})

	bio := "new bio"
	if !m.UpdateUser("u1", UserUpdate{Bio: &bio}) {
		t.Fatal("update of existing user should succeed")
	}
	u, _ := m.GetUser("u1")
	if u.Bio != "new bio" {
		t.Fatalf("bio not applied: %q", u.Bio)
	}
	if u.Username != "ana" || u.Email != "ana@example.com" || u.PasswordHash != "h" {
		t.Fatalf("unspecified fields must keep prior values: %+v", u)
	}

	if m.UpdateUser("missing", UserUpdate{Bio: &bio}) {
		t.Fatal("update of missing user should report false")
	}
}

func TestDeleteUserIdempotent(t *testing.T) {
	m := NewMemory()
	m.CreateUser(domain.User{ID: "u1", Email: "a@example.com"})

	if !m.DeleteUser("u1") {
		t.Fatal("first delete should report true")
	}
	if m.DeleteUser("u1") {
		t.Fatal("second delete should report false")
	}
	if m.DeleteUser("never-existed") {
		t.Fatal("deleting an unknown id should report false")
	}
}

func TestGetUserByEmail(t *testing.T) {
	m := NewMemory()
	m.CreateUser(domain.User{ID: "u1", Email: "ana@example.com"})

	if _, ok := m.GetUserByEmail("ana@example.com"); !ok {
		t.Fatal("expected lookup hit")
	}
	if _, ok := m.GetUserByEmail("ghost@example.com"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestTokenBlacklistWriteOnce(t *testing.T) {
	m := NewMemory()
	if ok, _ := m.IsTokenBlacklisted("tok"); ok {
		t.Fatal("unknown token should not be blacklisted")
	}
	if err := m.BlacklistToken("tok"); err != nil {
		t.Fatalf("blacklist: %v", err)
	}
	if ok, _ := m.IsTokenBlacklisted("tok"); !ok {
		t.Fatal("blacklisted token should test positive")
	}
}

func TestCreateUserOverwritesSilently(t *testing.T) {
	m := NewMemory()
	m.CreateUser(domain.User{ID: "u1", Username: "first"})
	m.CreateUser(domain.User{ID: "u1", Username: "second"})

	u, _ := m.GetUser("u1")
	if u.Username != "second" {
		t.Fatalf("create must overwrite on id collision, got %q", u.Username)
	}
	if m.UserCount() != 1 {
		t.Fatalf("expected a single user, got %d", m.UserCount())
	}
}
