package store

import (
	"testing"
	"time"

	"audira/pkg/domain"
)

func TestSearchSongsCaseInsensitiveSubstring(t *testing.T) {
	m := NewMemory()
	m.CreateSong(domain.Song{ID: "s1", Title: "Midnight Train", ArtistID: "a1"})
	m.CreateSong(domain.Song{ID: "s2", Title: "Night Drive", ArtistID: "a1"})
	m.CreateSong(domain.Song{ID: "s3", Title: "Morning Sun", ArtistID: "a2"})

	got := m.SearchSongs("NIGHT")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for NIGHT, got %d", len(got))
	}
	if got := m.SearchSongs("xyz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
	// Empty query matches everything, pagination is the caller's concern.
	if got := m.SearchSongs(""); len(got) != 3 {
		t.Fatalf("expected all songs for empty query, got %d", len(got))
	}
}

func TestListAlbumsByArtist(t *testing.T) {
	m := NewMemory()
	m.CreateAlbum(domain.Album{ID: "al1", Title: "One", ArtistID: "a1"})
	m.CreateAlbum(domain.Album{ID: "al2", Title: "Two", ArtistID: "a1"})
	m.CreateAlbum(domain.Album{ID: "al3", Title: "Three", ArtistID: "a2"})

	if n := len(m.ListAlbumsByArtist("a1")); n != 2 {
		t.Fatalf("expected 2 albums for a1, got %d", n)
	}
	if n := len(m.ListAlbumsByArtist("nobody")); n != 0 {
		t.Fatalf("expected no albums for unknown artist, got %d", n)
	}
}

func TestUpdateSongShallowMerge(t *testing.T) {
	m := NewMemory()
	m.CreateSong(domain.Song{ID: "s1", Title: "Old", ArtistID: "a1", Duration: 180, Genre: "Rock"})

	duration := 200
	if !m.UpdateSong("s1", SongUpdate{Duration: &duration}) {
		t.Fatal("update of existing song should succeed")
	}
	s, _ := m.GetSong("s1")
	if s.Duration != 200 {
		t.Fatalf("duration not applied: %d", s.Duration)
	}
	if s.Title != "Old" || s.Genre != "Rock" || s.ArtistID != "a1" {
		t.Fatalf("unspecified fields must keep prior values: %+v", s)
	}
	if m.UpdateSong("missing", SongUpdate{Duration: &duration}) {
		t.Fatal("update of missing song should report false")
	}
}

func TestGenreSeedAndCRUD(t *testing.T) {
	m := NewMemory()
	if n := len(m.ListGenres()); n != 5 {
		t.Fatalf("expected 5 seeded genres, got %d", n)
	}

	m.CreateGenre(domain.Genre{ID: "g-metal", Name: "Metal", Description: "Heavy."})
	name := "Doom Metal"
	if !m.UpdateGenre("g-metal", GenreUpdate{Name: &name}) {
		t.Fatal("update of existing genre should succeed")
	}
	g, _ := m.GetGenre("g-metal")
	if g.Name != "Doom Metal" || g.Description != "Heavy." {
		t.Fatalf("unexpected genre after merge: %+v", g)
	}

	if !m.DeleteGenre("g-metal") {
		t.Fatal("first delete should report true")
	}
	if m.DeleteGenre("g-metal") {
		t.Fatal("second delete should report false")
	}
}

func TestCollaborationParticipantsReplacedWholesale(t *testing.T) {
	m := NewMemory()
	now := time.Now().UTC()
	m.CreateCollaboration(domain.Collaboration{
		ID:          "c1",
		Title:       "Duet",
		Status:      domain.CollabActive,
		InitiatorID: "a1",
		Participants: []domain.Participant{
			{ID: "p1", ArtistID: "a2", Role: "vocals", Status: domain.ParticipantInvited},
		},
		CreatedAt: now,
		UpdatedAt: now,
	})

	participants := []domain.Participant{
		{ID: "p2", ArtistID: "a3", Role: "drums", Status: domain.ParticipantInvited},
	}
	stamp := now.Add(time.Minute)
	if !m.UpdateCollaboration("c1", CollaborationUpdate{Participants: &participants, UpdatedAt: &stamp}) {
		t.Fatal("update of existing collaboration should succeed")
	}

	c, _ := m.GetCollaboration("c1")
	if len(c.Participants) != 1 || c.Participants[0].ArtistID != "a3" {
		t.Fatalf("participants must be replaced wholesale: %+v", c.Participants)
	}
	if !c.UpdatedAt.Equal(stamp) {
		t.Fatalf("caller-supplied updatedAt should be stored, got %v", c.UpdatedAt)
	}
	if c.Status != domain.CollabActive || c.Title != "Duet" {
		t.Fatalf("unspecified fields must keep prior values: %+v", c)
	}

	// The store accepts any status value without transition checks.
	cancelled := domain.CollabCancelled
	m.UpdateCollaboration("c1", CollaborationUpdate{Status: &cancelled})
	c, _ = m.GetCollaboration("c1")
	if c.Status != domain.CollabCancelled {
		t.Fatalf("status write should apply unguarded, got %s", c.Status)
	}
}
