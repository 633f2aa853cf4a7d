package app

import (
	"errors"
	"testing"

	"audira/pkg/domain"
	"audira/pkg/store"
)

func TestAlbumOwnership(t *testing.T) {
	a := newTestApp(t)
	artistID := register(t, a, "band", "band@example.com")
	otherID := register(t, a, "rival", "rival@example.com")

	album, err := a.CreateAlbum(artistID, AlbumInput{Title: "Debut", ArtistName: "The Band", Genre: "Rock"})
	if err != nil {
		t.Fatalf("CreateAlbum: %v", err)
	}

	title := "Debut (Remastered)"
	if _, err := a.UpdateAlbum(otherID, album.ID, store.AlbumUpdate{Title: &title}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign update: got %v, want ErrForbidden", err)
	}
	updated, err := a.UpdateAlbum(artistID, album.ID, store.AlbumUpdate{Title: &title})
	if err != nil {
		t.Fatalf("UpdateAlbum: %v", err)
	}
	if updated.Title != title || updated.Genre != "Rock" {
		t.Fatalf("merge result %+v", updated)
	}

	if got := a.ArtistAlbums(artistID); len(got) != 1 {
		t.Fatalf("artist albums = %d, want 1", len(got))
	}

	if err := a.DeleteAlbum(otherID, album.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign delete: got %v, want ErrForbidden", err)
	}
	if err := a.DeleteAlbum(artistID, album.ID); err != nil {
		t.Fatalf("DeleteAlbum: %v", err)
	}
}

func TestSongSearch(t *testing.T) {
	a := newTestApp(t)
	artistID := register(t, a, "band", "band@example.com")
	seedSong(t, a, artistID, "Midnight City")
	seedSong(t, a, artistID, "City Lights")
	seedSong(t, a, artistID, "Open Road")

	hits := a.SearchSongs("city")
	if len(hits) != 2 {
		t.Fatalf("search hits = %d, want 2", len(hits))
	}
	if all := a.SearchSongs(""); len(all) != 3 {
		t.Fatalf("empty query hits = %d, want 3", len(all))
	}
}

func TestDiscoveryFeeds(t *testing.T) {
	a := newTestApp(t)
	artistID := register(t, a, "band", "band@example.com")
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		seedSong(t, a, artistID, title)
	}

	// the feed size is fixed, not caller-controlled
	if got := a.Recommendations("anyone"); len(got) != 10 {
		t.Fatalf("recommendations = %d, want capped at 10", len(got))
	}

	// trending serves albums, not songs
	if _, err := a.CreateAlbum(artistID, AlbumInput{Title: "Debut", ArtistName: "The Band", Genre: "Rock"}); err != nil {
		t.Fatalf("CreateAlbum: %v", err)
	}
	trending := a.TrendingAlbums()
	if len(trending) != 1 || trending[0].Title != "Debut" {
		t.Fatalf("trending = %+v, want the one album", trending)
	}
}

func TestGenresSeededAndEditable(t *testing.T) {
	a := newTestApp(t)

	if got := a.Genres(); len(got) != 5 {
		t.Fatalf("seeded genres = %d, want 5", len(got))
	}

	g, err := a.CreateGenre(GenreInput{Name: "Ambient", Description: "textural"})
	if err != nil {
		t.Fatalf("CreateGenre: %v", err)
	}
	desc := "slow textural music"
	updated, err := a.UpdateGenre(g.ID, nil, &desc)
	if err != nil {
		t.Fatalf("UpdateGenre: %v", err)
	}
	if updated.Name != "Ambient" || updated.Description != desc {
		t.Fatalf("merge result %+v", updated)
	}
	if err := a.DeleteGenre("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown genre: got %v, want ErrNotFound", err)
	}
	if err := a.DeleteGenre(g.ID); err != nil {
		t.Fatalf("DeleteGenre: %v", err)
	}
}

func TestCollaborationFlow(t *testing.T) {
	a := newTestApp(t)
	initiatorID := register(t, a, "lead", "lead@example.com")
	guestID := register(t, a, "guest", "guest@example.com")
	lateID := register(t, a, "late", "late@example.com")

	c, err := a.StartCollaboration(initiatorID, CollaborationInput{
		Title:     "Split EP",
		Type:      "album",
		ArtistIDs: []string{guestID},
	})
	if err != nil {
		t.Fatalf("StartCollaboration: %v", err)
	}
	if c.Status != domain.CollabActive {
		t.Fatalf("status = %s, want active", c.Status)
	}
	if len(c.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(c.Participants))
	}
	if c.Participants[0].Status != domain.ParticipantAccepted {
		t.Fatalf("initiator status = %s, want accepted", c.Participants[0].Status)
	}
	if c.Participants[1].Status != domain.ParticipantInvited {
		t.Fatalf("guest status = %s, want invited", c.Participants[1].Status)
	}
	if notes := a.Notifications(guestID); len(notes) != 1 {
		t.Fatalf("guest notifications = %d, want 1", len(notes))
	}

	// re-inviting an existing participant is a conflict, whatever their status
	if _, err := a.InviteCollaborator(initiatorID, c.ID, guestID, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate invite: got %v, want ErrConflict", err)
	}
	// only the initiator can invite
	if _, err := a.InviteCollaborator(guestID, c.ID, lateID, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("guest invite: got %v, want ErrForbidden", err)
	}
	c, err = a.InviteCollaborator(initiatorID, c.ID, lateID, "producer")
	if err != nil {
		t.Fatalf("InviteCollaborator: %v", err)
	}
	if len(c.Participants) != 3 || c.Participants[2].Role != "producer" {
		t.Fatalf("participants after invite = %+v", c.Participants)
	}

	c, err = a.RespondToInvite(guestID, c.ID, true)
	if err != nil {
		t.Fatalf("RespondToInvite: %v", err)
	}
	if c.Participants[1].Status != domain.ParticipantAccepted {
		t.Fatalf("guest status = %s, want accepted", c.Participants[1].Status)
	}
	if _, err := a.RespondToInvite("stranger", c.ID, true); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger response: got %v, want ErrForbidden", err)
	}

	// any participant may set any status, transitions are unguarded
	done := domain.CollabCompleted
	c, err = a.UpdateCollaboration(guestID, c.ID, nil, nil, &done)
	if err != nil {
		t.Fatalf("UpdateCollaboration: %v", err)
	}
	if c.Status != domain.CollabCompleted {
		t.Fatalf("status = %s, want completed", c.Status)
	}
	reopened := domain.CollabDraft
	if c, err = a.UpdateCollaboration(initiatorID, c.ID, nil, nil, &reopened); err != nil || c.Status != domain.CollabDraft {
		t.Fatalf("reopen: %v, status %s", err, c.Status)
	}

	if err := a.DeleteCollaboration(guestID, c.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("guest delete: got %v, want ErrForbidden", err)
	}
	if err := a.DeleteCollaboration(initiatorID, c.ID); err != nil {
		t.Fatalf("DeleteCollaboration: %v", err)
	}
}

func TestRatingsAndComments(t *testing.T) {
	a := newTestApp(t)
	adaID := register(t, a, "ada", "ada@example.com")
	bobID := register(t, a, "bob", "bob@example.com")

	if _, err := a.RateProduct(adaID, "prod_001", 6, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("6 stars: got %v, want ErrInvalidInput", err)
	}
	r, err := a.RateProduct(adaID, "prod_001", 4, "good fit")
	if err != nil {
		t.Fatalf("RateProduct: %v", err)
	}

	stars := 5
	if _, err := a.UpdateRating(bobID, r.ID, &stars, nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign rating edit: got %v, want ErrForbidden", err)
	}
	updated, err := a.UpdateRating(adaID, r.ID, &stars, nil)
	if err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}
	if updated.Rating != 5 || updated.Comment != "good fit" {
		t.Fatalf("merge result %+v", updated)
	}

	comment, err := a.CommentOnProduct(bobID, "prod_001", "runs small")
	if err != nil {
		t.Fatalf("CommentOnProduct: %v", err)
	}
	if _, err := a.CommentOnProduct(bobID, "prod_001", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank comment: got %v, want ErrInvalidInput", err)
	}
	if err := a.DeleteComment(adaID, comment.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign comment delete: got %v, want ErrForbidden", err)
	}
	if err := a.DeleteComment(bobID, comment.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}

	if got := a.ProductRatings("prod_001"); len(got) != 1 {
		t.Fatalf("ratings = %d, want 1", len(got))
	}
	if got := a.ProductComments("prod_001"); len(got) != 0 {
		t.Fatalf("comments = %d, want 0", len(got))
	}
}

func TestContactAndFAQs(t *testing.T) {
	a := newTestApp(t)

	if got := a.FAQs(); len(got) != 3 {
		t.Fatalf("seeded FAQs = %d, want 3", len(got))
	}

	receipt, err := a.Contact("Ada", "ada@example.com", "How do I change my plan?")
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	if receipt.Status != "received" || len(receipt.MessageID) < 5 {
		t.Fatalf("receipt = %+v", receipt)
	}
	if _, err := a.Contact("", "ada@example.com", "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: got %v, want ErrInvalidInput", err)
	}
}

func TestPlatformMetrics(t *testing.T) {
	a := newTestApp(t)
	adaID := register(t, a, "ada", "ada@example.com")
	if _, err := a.RateProduct(adaID, "prod_001", 3, ""); err != nil {
		t.Fatalf("RateProduct: %v", err)
	}

	m := a.Metrics()
	if m.TotalUsers != 1 || m.TotalRatings != 1 || m.TotalComments != 0 {
		t.Fatalf("metrics = %+v", m)
	}
	if m.ActiveUsers < 0 || m.ActiveUsers > m.TotalUsers {
		t.Fatalf("active users out of range: %+v", m)
	}
}

func TestUserAndSongStats(t *testing.T) {
	a := newTestApp(t)
	adaID := register(t, a, "ada", "ada@example.com")
	bobID := register(t, a, "bob", "bob@example.com")
	if err := a.Follow(bobID, adaID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	songID := seedSong(t, a, adaID, "Single")

	stats, err := a.UserStats(adaID)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.Followers != 1 || stats.Following != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if _, err := a.UserStats("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user: got %v, want ErrNotFound", err)
	}

	songStats, err := a.SongStats(songID)
	if err != nil {
		t.Fatalf("SongStats: %v", err)
	}
	if songStats.SongID != songID {
		t.Fatalf("song stats = %+v", songStats)
	}
	if _, err := a.SongStats("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown song: got %v, want ErrNotFound", err)
	}
}

func TestArtistStats(t *testing.T) {
	a := newTestApp(t)
	artistID := register(t, a, "band", "band@example.com")
	fanID := register(t, a, "fan", "fan@example.com")
	if err := a.Follow(fanID, artistID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if _, err := a.CreateAlbum(artistID, AlbumInput{Title: "Debut", ArtistName: "The Band", Genre: "Rock"}); err != nil {
		t.Fatalf("CreateAlbum: %v", err)
	}

	stats, err := a.ArtistStats(artistID)
	if err != nil {
		t.Fatalf("ArtistStats: %v", err)
	}
	if stats.ArtistID != artistID || stats.Albums != 1 || stats.Followers != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if _, err := a.ArtistStats("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown artist: got %v, want ErrNotFound", err)
	}
}
