package app

import "audira/pkg/domain"

// Discovery endpoints serve a fixed-size feed and do not paginate.
const discoveryLimit = 10

// SearchSongs matches catalog songs by title substring, case-insensitive. An
// empty query matches the whole catalog.
func (a *App) SearchSongs(query string) []domain.Song {
	return a.store.SearchSongs(query)
}

// Recommendations returns up to ten songs for the user. Until listening
// history feeds a real model this is a catalog slice.
func (a *App) Recommendations(userID string) []domain.Song {
	return firstN(a.store.ListSongs(), discoveryLimit)
}

// TrendingAlbums returns up to ten albums. Play counts are not tracked yet,
// so the order is catalog order.
func (a *App) TrendingAlbums() []domain.Album {
	return firstN(a.store.ListAlbums(), discoveryLimit)
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return items
}
