package store

import (
	"strings"
	"time"

	"audira/pkg/domain"
)

type GenreUpdate struct {
	Name        *string
	Description *string
}

type AlbumUpdate struct {
	Title       *string
	ArtistName  *string
	ReleaseDate *string
	Genre       *string
}

type SongUpdate struct {
	Title    *string
	AlbumID  *string
	Duration *int
	Genre    *string
}

// CollaborationUpdate lists the mutable collaboration fields. The store does
// not validate status transitions; any caller may set any status.
type CollaborationUpdate struct {
	Title        *string
	Description  *string
	Status       *domain.CollaborationStatus
	Participants *[]domain.Participant
	UpdatedAt    *time.Time // set by the caller alongside other fields
}

func (m *Memory) ListGenres() []domain.Genre {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Genre, 0, len(m.genres))
	for _, g := range m.genres {
		out = append(out, g)
	}
	return out
}

func (m *Memory) GetGenre(id string) (domain.Genre, bool) {
	m.mu.RLock()
	g, ok := m.genres[id]
	m.mu.RUnlock()
	return g, ok
}

func (m *Memory) CreateGenre(g domain.Genre) {
	m.mu.Lock()
	m.genres[g.ID] = g
	m.mu.Unlock()
}

func (m *Memory) UpdateGenre(id string, upd GenreUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.genres[id]
	if !ok {
		return false
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	m.genres[id] = g
	return true
}

func (m *Memory) DeleteGenre(id string) bool {
	m.mu.Lock()
	_, ok := m.genres[id]
	delete(m.genres, id)
	m.mu.Unlock()
	return ok
}

func (m *Memory) ListAlbums() []domain.Album {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Album, 0, len(m.albums))
	for _, a := range m.albums {
		out = append(out, a)
	}
	return out
}

func (m *Memory) GetAlbum(id string) (domain.Album, bool) {
	m.mu.RLock()
	a, ok := m.albums[id]
	m.mu.RUnlock()
	return a, ok
}

// ListAlbumsByArtist scans all albums for the given artist id.
func (m *Memory) ListAlbumsByArtist(artistID string) []domain.Album {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Album, 0)
	for _, a := range m.albums {
		if a.ArtistID == artistID {
			out = append(out, a)
		}
	}
	return out
}

func (m *Memory) CreateAlbum(a domain.Album) {
	m.mu.Lock()
	m.albums[a.ID] = a
	m.mu.Unlock()
}

func (m *Memory) UpdateAlbum(id string, upd AlbumUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.albums[id]
	if !ok {
		return false
	}
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.ArtistName != nil {
		a.ArtistName = *upd.ArtistName
	}
	if upd.ReleaseDate != nil {
		a.ReleaseDate = *upd.ReleaseDate
	}
	if upd.Genre != nil {
		a.Genre = *upd.Genre
	}
	m.albums[id] = a
	return true
}

func (m *Memory) DeleteAlbum(id string) bool {
	m.mu.Lock()
	_, ok := m.albums[id]
	delete(m.albums, id)
	m.mu.Unlock()
	return ok
}

func (m *Memory) ListSongs() []domain.Song {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Song, 0, len(m.songs))
	for _, s := range m.songs {
		out = append(out, s)
	}
	return out
}

func (m *Memory) GetSong(id string) (domain.Song, bool) {
	m.mu.RLock()
	s, ok := m.songs[id]
	m.mu.RUnlock()
	return s, ok
}

func (m *Memory) CreateSong(s domain.Song) {
	m.mu.Lock()
	m.songs[s.ID] = s
	m.mu.Unlock()
}

func (m *Memory) UpdateSong(id string, upd SongUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.songs[id]
	if !ok {
		return false
	}
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.AlbumID != nil {
		s.AlbumID = *upd.AlbumID
	}
	if upd.Duration != nil {
		s.Duration = *upd.Duration
	}
	if upd.Genre != nil {
		s.Genre = *upd.Genre
	}
	m.songs[id] = s
	return true
}

func (m *Memory) DeleteSong(id string) bool {
	m.mu.Lock()
	_, ok := m.songs[id]
	delete(m.songs, id)
	m.mu.Unlock()
	return ok
}

// SearchSongs matches the query against song titles, case-insensitive
// substring, no ranking. Pagination is the caller's job.
func (m *Memory) SearchSongs(query string) []domain.Song {
	q := strings.ToLower(query)
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Song, 0)
	for _, s := range m.songs {
		if strings.Contains(strings.ToLower(s.Title), q) {
			out = append(out, s)
		}
	}
	return out
}

func (m *Memory) GetCollaboration(id string) (domain.Collaboration, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.collaborations[id]
	if ok {
		c.Participants = append([]domain.Participant(nil), c.Participants...)
	}
	return c, ok
}

func (m *Memory) CreateCollaboration(c domain.Collaboration) {
	m.mu.Lock()
	m.collaborations[c.ID] = c
	m.mu.Unlock()
}

func (m *Memory) UpdateCollaboration(id string, upd CollaborationUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.collaborations[id]
	if !ok {
		return false
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Participants != nil {
		c.Participants = append([]domain.Participant(nil), (*upd.Participants)...)
	}
	if upd.UpdatedAt != nil {
		c.UpdatedAt = *upd.UpdatedAt
	}
	m.collaborations[id] = c
	return true
}

func (m *Memory) DeleteCollaboration(id string) bool {
	m.mu.Lock()
	_, ok := m.collaborations[id]
	delete(m.collaborations, id)
	m.mu.Unlock()
	return ok
}
