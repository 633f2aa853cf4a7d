package app

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// PlatformMetrics is a point-in-time snapshot of platform activity. Counters
// come from the store; session figures are sampled until real telemetry is
// collected.
type PlatformMetrics struct {
	TotalUsers    int       `json:"totalUsers"`
	TotalRatings  int       `json:"totalRatings"`
	TotalComments int       `json:"totalComments"`
	ActiveUsers   int       `json:"activeUsers"`
	AvgSessionMin float64   `json:"avgSessionMinutes"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// UserMetrics reports one account's engagement. Follower counts are real;
// post and like figures are sampled until activity tracking lands.
type UserMetrics struct {
	UserID    string `json:"userId"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Posts     int    `json:"posts"`
	Likes     int    `json:"likes"`
}

// ArtistMetrics reports an artist's reach. Album and follower counts are
// real; stream totals are sampled until playback telemetry lands.
type ArtistMetrics struct {
	ArtistID  string `json:"artistId"`
	Albums    int    `json:"albums"`
	Followers int    `json:"followers"`
	Streams   int    `json:"streams"`
}

// SongMetrics reports one track's engagement, all sampled for now.
type SongMetrics struct {
	SongID string `json:"songId"`
	Plays  int    `json:"plays"`
	Likes  int    `json:"likes"`
	Shares int    `json:"shares"`
}

// UserStats reports engagement for one account.
func (a *App) UserStats(id string) (UserMetrics, error) {
	profile, err := a.Profile(id)
	if err != nil {
		return UserMetrics{}, err
	}
	return UserMetrics{
		UserID:    id,
		Followers: profile.Followers,
		Following: profile.Following,
		Posts:     rand.IntN(200),
		Likes:     rand.IntN(5000),
	}, nil
}

// ArtistStats reports reach for one artist account.
func (a *App) ArtistStats(id string) (ArtistMetrics, error) {
	profile, err := a.Profile(id)
	if err != nil {
		return ArtistMetrics{}, err
	}
	return ArtistMetrics{
		ArtistID:  id,
		Albums:    len(a.store.ListAlbumsByArtist(id)),
		Followers: profile.Followers,
		Streams:   rand.IntN(50_000_000),
	}, nil
}

// SongStats reports engagement for one catalog song.
func (a *App) SongStats(id string) (SongMetrics, error) {
	if _, ok := a.store.GetSong(id); !ok {
		return SongMetrics{}, fmt.Errorf("song %s: %w", id, ErrNotFound)
	}
	return SongMetrics{
		SongID: id,
		Plays:  rand.IntN(100000),
		Likes:  rand.IntN(10000),
		Shares: rand.IntN(2000),
	}, nil
}

// Metrics reports current platform counters.
func (a *App) Metrics() PlatformMetrics {
	total := a.store.UserCount()
	active := 0
	if total > 0 {
		active = rand.IntN(total + 1)
	}
	return PlatformMetrics{
		TotalUsers:    total,
		TotalRatings:  a.store.RatingCount(),
		TotalComments: a.store.CommentCount(),
		ActiveUsers:   active,
		AvgSessionMin: 5 + rand.Float64()*40,
		GeneratedAt:   time.Now().UTC(),
	}
}
