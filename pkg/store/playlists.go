package store

import (
	"time"

	"audira/pkg/domain"
)

// PlaylistUpdate lists the mutable playlist fields. SongCount is derived and
// cannot be set directly; UpdatedAt is stamped by the store on every update.
type PlaylistUpdate struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

func (m *Memory) GetPlaylist(id string) (domain.Playlist, bool) {
	m.mu.RLock()
	p, ok := m.playlists[id]
	m.mu.RUnlock()
	return p, ok
}

// ListPlaylistsByUser scans all playlists owned by the given user.
func (m *Memory) ListPlaylistsByUser(userID string) []domain.Playlist {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Playlist, 0)
	for _, p := range m.playlists {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// CreatePlaylist stores the playlist and initializes its empty song list.
func (m *Memory) CreatePlaylist(p domain.Playlist) {
	m.mu.Lock()
	m.playlists[p.ID] = p
	m.playlistSongs[p.ID] = []domain.PlaylistSong{}
	m.mu.Unlock()
}

func (m *Memory) UpdatePlaylist(id string, upd PlaylistUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.playlists[id]
	if !ok {
		return false
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.IsPublic != nil {
		p.IsPublic = *upd.IsPublic
	}
	p.UpdatedAt = time.Now().UTC()
	m.playlists[id] = p
	return true
}

// DeletePlaylist removes the playlist and cascades to its song list.
func (m *Memory) DeletePlaylist(id string) bool {
	m.mu.Lock()
	_, ok := m.playlists[id]
	delete(m.playlists, id)
	delete(m.playlistSongs, id)
	m.mu.Unlock()
	return ok
}

// ListPlaylistSongs returns the playlist's songs in stored order. A deleted
// or unknown playlist yields an empty list, not an error.
func (m *Memory) ListPlaylistSongs(playlistID string) []domain.PlaylistSong {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.PlaylistSong(nil), m.playlistSongs[playlistID]...)
}

// AddSongToPlaylist appends the entry and refreshes the parent playlist's
// SongCount and UpdatedAt in the same call. Positions are caller-supplied and
// never renumbered.
func (m *Memory) AddSongToPlaylist(playlistID string, song domain.PlaylistSong) {
	m.mu.Lock()
	defer m.mu.Unlock()
	songs := append(m.playlistSongs[playlistID], song)
	m.playlistSongs[playlistID] = songs
	if p, ok := m.playlists[playlistID]; ok {
		p.SongCount = len(songs)
		p.UpdatedAt = time.Now().UTC()
		m.playlists[playlistID] = p
	}
}

// RemoveSongFromPlaylist filters out entries by song id and refreshes the
// derived fields. Reports false only when the playlist has no song list at
// all; removing a song that is not present leaves the list unchanged.
func (m *Memory) RemoveSongFromPlaylist(playlistID, songID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	songs, ok := m.playlistSongs[playlistID]
	if !ok {
		return false
	}
	filtered := songs[:0:0]
	for _, s := range songs {
		if s.SongID != songID {
			filtered = append(filtered, s)
		}
	}
	m.playlistSongs[playlistID] = filtered
	if p, ok := m.playlists[playlistID]; ok {
		p.SongCount = len(filtered)
		p.UpdatedAt = time.Now().UTC()
		m.playlists[playlistID] = p
	}
	return true
}

// GetLibrary returns the user's saved items, oldest first.
func (m *Memory) GetLibrary(userID string) []domain.LibraryItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.LibraryItem(nil), m.libraries[userID]...)
}

// AddToLibrary appends an item, initializing the user's library lazily.
// Duplicate detection (by referenced item id) is the caller's job.
func (m *Memory) AddToLibrary(userID string, item domain.LibraryItem) {
	m.mu.Lock()
	m.libraries[userID] = append(m.libraries[userID], item)
	m.mu.Unlock()
}

// RemoveFromLibrary filters the user's items by library entry id. Reports
// false when the user has no library.
func (m *Memory) RemoveFromLibrary(userID, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.libraries[userID]
	if !ok {
		return false
	}
	filtered := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	m.libraries[userID] = filtered
	return true
}

// GetQueue returns the user's playback queue in order.
func (m *Memory) GetQueue(userID string) []domain.QueueEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.QueueEntry(nil), m.queues[userID]...)
}

// SetQueue replaces the user's queue wholesale.
func (m *Memory) SetQueue(userID string, queue []domain.QueueEntry) {
	m.mu.Lock()
	m.queues[userID] = append([]domain.QueueEntry(nil), queue...)
	m.mu.Unlock()
}

// AddToQueue appends one entry to the user's queue.
func (m *Memory) AddToQueue(userID string, entry domain.QueueEntry) {
	m.mu.Lock()
	m.queues[userID] = append(m.queues[userID], entry)
	m.mu.Unlock()
}

// RemoveFromQueue drops all entries for the given song id.
func (m *Memory) RemoveFromQueue(userID, songID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	queue := m.queues[userID]
	filtered := queue[:0:0]
	for _, e := range queue {
		if e.SongID != songID {
			filtered = append(filtered, e)
		}
	}
	m.queues[userID] = filtered
}

// GetProgress returns the stored playback position in seconds, 0 when the
// user or song has no recorded progress.
func (m *Memory) GetProgress(userID, songID string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.progress[userID][songID]
}

// SetProgress records the playback position, lazily initializing the user's
// progress map on first write.
func (m *Memory) SetProgress(userID, songID string, progress float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.progress[userID] == nil {
		m.progress[userID] = make(map[string]float64)
	}
	m.progress[userID][songID] = progress
}
