package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"audira/pkg/domain"
	"audira/pkg/store"
)

// GenreInput holds the caller-supplied genre fields.
type GenreInput struct {
	Name        string
	Description string
}

// AlbumInput holds the caller-supplied album fields.
type AlbumInput struct {
	Title       string
	ArtistName  string
	ReleaseDate string
	Genre       string
}

// SongInput holds the caller-supplied song fields.
type SongInput struct {
	Title    string
	AlbumID  string
	Duration int
	Genre    string
}

// CollaborationInput holds the fields for opening a collaboration.
type CollaborationInput struct {
	Title       string
	Description string
	Type        string
	// ArtistIDs are the initial invitees besides the initiator.
	ArtistIDs []string
}

// Genres lists the catalog's genres.
func (a *App) Genres() []domain.Genre {
	return a.store.ListGenres()
}

// Genre looks up one genre.
func (a *App) Genre(id string) (domain.Genre, error) {
	g, ok := a.store.GetGenre(id)
	if !ok {
		return domain.Genre{}, fmt.Errorf("genre %s: %w", id, ErrNotFound)
	}
	return g, nil
}

// CreateGenre adds a genre to the catalog.
func (a *App) CreateGenre(in GenreInput) (domain.Genre, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Genre{}, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	g := domain.Genre{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
	}
	a.store.CreateGenre(g)
	return g, nil
}

// UpdateGenre shallow-merges genre fields.
func (a *App) UpdateGenre(id string, name, description *string) (domain.Genre, error) {
	if !a.store.UpdateGenre(id, store.GenreUpdate{Name: name, Description: description}) {
		return domain.Genre{}, fmt.Errorf("genre %s: %w", id, ErrNotFound)
	}
	g, _ := a.store.GetGenre(id)
	return g, nil
}

// DeleteGenre removes a genre. Albums and songs keep their genre string.
func (a *App) DeleteGenre(id string) error {
	if !a.store.DeleteGenre(id) {
		return fmt.Errorf("genre %s: %w", id, ErrNotFound)
	}
	return nil
}

// Albums lists every album in the catalog.
func (a *App) Albums() []domain.Album {
	return a.store.ListAlbums()
}

// Album looks up one album.
func (a *App) Album(id string) (domain.Album, error) {
	al, ok := a.store.GetAlbum(id)
	if !ok {
		return domain.Album{}, fmt.Errorf("album %s: %w", id, ErrNotFound)
	}
	return al, nil
}

// ArtistAlbums lists the albums released by one artist.
func (a *App) ArtistAlbums(artistID string) []domain.Album {
	return a.store.ListAlbumsByArtist(artistID)
}

// CreateAlbum registers an album owned by the calling artist.
func (a *App) CreateAlbum(artistID string, in AlbumInput) (domain.Album, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Album{}, fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	al := domain.Album{
		ID:          uuid.NewString(),
		Title:       in.Title,
		ArtistID:    artistID,
		ArtistName:  in.ArtistName,
		ReleaseDate: in.ReleaseDate,
		Genre:       in.Genre,
	}
	a.store.CreateAlbum(al)
	return al, nil
}

// UpdateAlbum shallow-merges album fields. Only the owning artist may edit.
func (a *App) UpdateAlbum(actorID, id string, upd store.AlbumUpdate) (domain.Album, error) {
	existing, ok := a.store.GetAlbum(id)
	if !ok {
		return domain.Album{}, fmt.Errorf("album %s: %w", id, ErrNotFound)
	}
	if existing.ArtistID != actorID {
		return domain.Album{}, ErrForbidden
	}
	a.store.UpdateAlbum(id, upd)
	updated, _ := a.store.GetAlbum(id)
	return updated, nil
}

// DeleteAlbum removes an album. Songs keep their albumId reference.
func (a *App) DeleteAlbum(actorID, id string) error {
	existing, ok := a.store.GetAlbum(id)
	if !ok {
		return fmt.Errorf("album %s: %w", id, ErrNotFound)
	}
	if existing.ArtistID != actorID {
		return ErrForbidden
	}
	a.store.DeleteAlbum(id)
	return nil
}

// Songs lists every song in the catalog.
func (a *App) Songs() []domain.Song {
	return a.store.ListSongs()
}

// Song looks up one song.
func (a *App) Song(id string) (domain.Song, error) {
	s, ok := a.store.GetSong(id)
	if !ok {
		return domain.Song{}, fmt.Errorf("song %s: %w", id, ErrNotFound)
	}
	return s, nil
}

// CreateSong registers a song owned by the calling artist.
func (a *App) CreateSong(artistID string, in SongInput) (domain.Song, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Song{}, fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	s := domain.Song{
		ID:       uuid.NewString(),
		Title:    in.Title,
		ArtistID: artistID,
		AlbumID:  in.AlbumID,
		Duration: in.Duration,
		Genre:    in.Genre,
	}
	a.store.CreateSong(s)
	return s, nil
}

// UpdateSong shallow-merges song fields. Only the owning artist may edit.
func (a *App) UpdateSong(actorID, id string, upd store.SongUpdate) (domain.Song, error) {
	existing, ok := a.store.GetSong(id)
	if !ok {
		return domain.Song{}, fmt.Errorf("song %s: %w", id, ErrNotFound)
	}
	if existing.ArtistID != actorID {
		return domain.Song{}, ErrForbidden
	}
	a.store.UpdateSong(id, upd)
	updated, _ := a.store.GetSong(id)
	return updated, nil
}

// DeleteSong removes a song. Playlist entries referencing it are left in
// place.
func (a *App) DeleteSong(actorID, id string) error {
	existing, ok := a.store.GetSong(id)
	if !ok {
		return fmt.Errorf("song %s: %w", id, ErrNotFound)
	}
	if existing.ArtistID != actorID {
		return ErrForbidden
	}
	a.store.DeleteSong(id)
	return nil
}

// Collaboration looks up one collaboration.
func (a *App) Collaboration(id string) (domain.Collaboration, error) {
	c, ok := a.store.GetCollaboration(id)
	if !ok {
		return domain.Collaboration{}, fmt.Errorf("collaboration %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// StartCollaboration opens an active collaboration. The initiator joins as
// accepted; every listed artist starts as invited and gets a notification.
func (a *App) StartCollaboration(initiatorID string, in CollaborationInput) (domain.Collaboration, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Collaboration{}, fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	now := time.Now().UTC()
	participants := []domain.Participant{{
		ID:       uuid.NewString(),
		ArtistID: initiatorID,
		Role:     "initiator",
		Status:   domain.ParticipantAccepted,
	}}
	for _, artistID := range in.ArtistIDs {
		if artistID == initiatorID {
			continue
		}
		participants = append(participants, domain.Participant{
			ID:       uuid.NewString(),
			ArtistID: artistID,
			Role:     "collaborator",
			Status:   domain.ParticipantInvited,
		})
	}
	c := domain.Collaboration{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Status:       domain.CollabActive,
		Type:         in.Type,
		InitiatorID:  initiatorID,
		Participants: participants,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	a.store.CreateCollaboration(c)
	for _, p := range participants[1:] {
		a.notify(p.ArtistID, "Collaboration invite",
			fmt.Sprintf("You were invited to collaborate on %q.", in.Title))
	}
	return c, nil
}

// InviteCollaborator adds an invited participant. An artist already on the
// collaboration, whatever their status, cannot be invited again.
func (a *App) InviteCollaborator(actorID, collabID, artistID, role string) (domain.Collaboration, error) {
	c, ok := a.store.GetCollaboration(collabID)
	if !ok {
		return domain.Collaboration{}, fmt.Errorf("collaboration %s: %w", collabID, ErrNotFound)
	}
	if c.InitiatorID != actorID {
		return domain.Collaboration{}, ErrForbidden
	}
	for _, p := range c.Participants {
		if p.ArtistID == artistID {
			return domain.Collaboration{}, fmt.Errorf("artist already invited: %w", ErrConflict)
		}
	}
	if role == "" {
		role = "collaborator"
	}
	participants := append(c.Participants, domain.Participant{
		ID:       uuid.NewString(),
		ArtistID: artistID,
		Role:     role,
		Status:   domain.ParticipantInvited,
	})
	now := time.Now().UTC()
	a.store.UpdateCollaboration(collabID, store.CollaborationUpdate{
		Participants: &participants,
		UpdatedAt:    &now,
	})
	a.notify(artistID, "Collaboration invite",
		fmt.Sprintf("You were invited to collaborate on %q.", c.Title))
	updated, _ := a.store.GetCollaboration(collabID)
	return updated, nil
}

// RespondToInvite lets an invited artist accept or decline.
func (a *App) RespondToInvite(actorID, collabID string, accept bool) (domain.Collaboration, error) {
	c, ok := a.store.GetCollaboration(collabID)
	if !ok {
		return domain.Collaboration{}, fmt.Errorf("collaboration %s: %w", collabID, ErrNotFound)
	}
	found := false
	participants := c.Participants
	for i, p := range participants {
		if p.ArtistID != actorID {
			continue
		}
		found = true
		if accept {
			participants[i].Status = domain.ParticipantAccepted
		} else {
			participants[i].Status = domain.ParticipantDeclined
		}
	}
	if !found {
		return domain.Collaboration{}, ErrForbidden
	}
	now := time.Now().UTC()
	a.store.UpdateCollaboration(collabID, store.CollaborationUpdate{
		Participants: &participants,
		UpdatedAt:    &now,
	})
	updated, _ := a.store.GetCollaboration(collabID)
	return updated, nil
}

// UpdateCollaboration shallow-merges title, description or status. Status
// writes are not validated against a transition table; any participant may
// move the collaboration to any status.
func (a *App) UpdateCollaboration(actorID, id string, title, description *string, status *domain.CollaborationStatus) (domain.Collaboration, error) {
	c, ok := a.store.GetCollaboration(id)
	if !ok {
		return domain.Collaboration{}, fmt.Errorf("collaboration %s: %w", id, ErrNotFound)
	}
	if !isParticipant(c, actorID) {
		return domain.Collaboration{}, ErrForbidden
	}
	now := time.Now().UTC()
	a.store.UpdateCollaboration(id, store.CollaborationUpdate{
		Title:       title,
		Description: description,
		Status:      status,
		UpdatedAt:   &now,
	})
	updated, _ := a.store.GetCollaboration(id)
	return updated, nil
}

// DeleteCollaboration removes a collaboration. Initiator only.
func (a *App) DeleteCollaboration(actorID, id string) error {
	c, ok := a.store.GetCollaboration(id)
	if !ok {
		return fmt.Errorf("collaboration %s: %w", id, ErrNotFound)
	}
	if c.InitiatorID != actorID {
		return ErrForbidden
	}
	a.store.DeleteCollaboration(id)
	return nil
}

func isParticipant(c domain.Collaboration, artistID string) bool {
	for _, p := range c.Participants {
		if p.ArtistID == artistID {
			return true
		}
	}
	return false
}
