package app

import (
	"fmt"

	"audira/pkg/domain"
)

const mediaBaseURL = "https://cdn.audira.io"

// StreamInfo points the client at the delivery CDN for one song.
type StreamInfo struct {
	SongID   string `json:"songId"`
	URL      string `json:"url"`
	Duration int    `json:"duration"`
}

// StreamSong returns the full-length stream URL for a catalog song.
func (a *App) StreamSong(songID string) (StreamInfo, error) {
	return a.mediaURL(songID, "stream")
}

// PreviewSong returns the 30 second preview URL. Previews are public, no
// account required.
func (a *App) PreviewSong(songID string) (StreamInfo, error) {
	info, err := a.mediaURL(songID, "preview")
	if err != nil {
		return StreamInfo{}, err
	}
	if info.Duration > 30 {
		info.Duration = 30
	}
	return info, nil
}

// DownloadSong returns the offline-download URL.
func (a *App) DownloadSong(songID string) (StreamInfo, error) {
	return a.mediaURL(songID, "download")
}

func (a *App) mediaURL(songID, kind string) (StreamInfo, error) {
	song, ok := a.store.GetSong(songID)
	if !ok {
		return StreamInfo{}, fmt.Errorf("song %s: %w", songID, ErrNotFound)
	}
	return StreamInfo{
		SongID:   song.ID,
		URL:      fmt.Sprintf("%s/%s/%s", mediaBaseURL, kind, song.ID),
		Duration: song.Duration,
	}, nil
}

// Progress returns the caller's saved playback position for a song, zero
// when nothing was recorded.
func (a *App) Progress(userID, songID string) float64 {
	return a.store.GetProgress(userID, songID)
}

// SaveProgress records the caller's playback position in seconds.
func (a *App) SaveProgress(userID, songID string, seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("progress cannot be negative: %w", ErrInvalidInput)
	}
	if _, ok := a.store.GetSong(songID); !ok {
		return fmt.Errorf("song %s: %w", songID, ErrNotFound)
	}
	a.store.SetProgress(userID, songID, seconds)
	return nil
}

// Queue returns the caller's playback queue in order.
func (a *App) Queue(userID string) []domain.QueueEntry {
	return a.store.GetQueue(userID)
}

// SetQueue replaces the caller's queue wholesale.
func (a *App) SetQueue(userID string, songIDs []string) []domain.QueueEntry {
	queue := make([]domain.QueueEntry, 0, len(songIDs))
	for i, id := range songIDs {
		queue = append(queue, domain.QueueEntry{SongID: id, Position: i + 1})
	}
	a.store.SetQueue(userID, queue)
	return queue
}

// EnqueueSong appends a catalog song at the end of the caller's queue.
func (a *App) EnqueueSong(userID, songID string) (domain.QueueEntry, error) {
	if _, ok := a.store.GetSong(songID); !ok {
		return domain.QueueEntry{}, fmt.Errorf("song %s: %w", songID, ErrNotFound)
	}
	entry := domain.QueueEntry{
		SongID:   songID,
		Position: len(a.store.GetQueue(userID)) + 1,
	}
	a.store.AddToQueue(userID, entry)
	return entry, nil
}

// DequeueSong removes every queue entry for the given song. Removing a song
// not on the queue succeeds quietly.
func (a *App) DequeueSong(userID, songID string) {
	a.store.RemoveFromQueue(userID, songID)
}
