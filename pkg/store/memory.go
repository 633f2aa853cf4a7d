package store

import (
	"sync"

	"audira/pkg/domain"
)

// Memory holds every collection of the platform in process-local maps.
// It is constructed explicitly and passed by reference to callers; a fresh
// instance per test gives full isolation.
//
// Each exported method is a single atomic unit under one RWMutex, so derived
// fields (cart totals, playlist song counts, follower symmetry) are always
// consistent at observable times. The store performs no referential-integrity
// checks: foreign keys are opaque strings, and callers that need uniqueness
// (e.g. user email) must check before writing.
type Memory struct {
	mu sync.RWMutex

	users     map[string]domain.User
	followers map[string]map[string]struct{} // userID -> set of follower ids
	following map[string]map[string]struct{} // userID -> set of followed ids

	ratings       map[string]domain.Rating
	comments      map[string]domain.Comment
	faqs          []domain.FAQ
	notifications map[string][]domain.Notification // userID -> notifications

	blacklisted map[string]struct{} // revoked tokens, write-once

	genres         map[string]domain.Genre
	albums         map[string]domain.Album
	songs          map[string]domain.Song
	collaborations map[string]domain.Collaboration

	playlists     map[string]domain.Playlist
	playlistSongs map[string][]domain.PlaylistSong // playlistID -> ordered songs
	libraries     map[string][]domain.LibraryItem  // userID -> items
	queues        map[string][]domain.QueueEntry   // userID -> playback queue
	progress      map[string]map[string]float64    // userID -> songID -> seconds

	products   map[string]domain.Product
	categories map[string]domain.Category
	carts      map[string]domain.Cart // keyed by userID, one cart per user
	orders     map[string]domain.Order
	payments   map[string]domain.Payment
}

// NewMemory initializes an empty store with the built-in FAQ, genre, product
// and category seed data.
func NewMemory() *Memory {
	m := &Memory{
		users:          make(map[string]domain.User),
		followers:      make(map[string]map[string]struct{}),
		following:      make(map[string]map[string]struct{}),
		ratings:        make(map[string]domain.Rating),
		comments:       make(map[string]domain.Comment),
		notifications:  make(map[string][]domain.Notification),
		blacklisted:    make(map[string]struct{}),
		genres:         make(map[string]domain.Genre),
		albums:         make(map[string]domain.Album),
		songs:          make(map[string]domain.Song),
		collaborations: make(map[string]domain.Collaboration),
		playlists:      make(map[string]domain.Playlist),
		playlistSongs:  make(map[string][]domain.PlaylistSong),
		libraries:      make(map[string][]domain.LibraryItem),
		queues:         make(map[string][]domain.QueueEntry),
		progress:       make(map[string]map[string]float64),
		products:       make(map[string]domain.Product),
		categories:     make(map[string]domain.Category),
		carts:          make(map[string]domain.Cart),
		orders:         make(map[string]domain.Order),
		payments:       make(map[string]domain.Payment),
	}
	m.seed()
	return m
}

// BlacklistToken records a revoked token. Tokens are never removed.
func (m *Memory) BlacklistToken(token string) error {
	m.mu.Lock()
	m.blacklisted[token] = struct{}{}
	m.mu.Unlock()
	return nil
}

// IsTokenBlacklisted reports whether a token has been revoked.
func (m *Memory) IsTokenBlacklisted(token string) (bool, error) {
	m.mu.RLock()
	_, ok := m.blacklisted[token]
	m.mu.RUnlock()
	return ok, nil
}
