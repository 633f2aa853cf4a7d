package server

import (
	"net/http"
	"strings"

	"audira/internal/app"
	"audira/pkg/auth"
	"audira/pkg/domain"
	"audira/pkg/store"
)

type genreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type genreUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type albumRequest struct {
	Title       string `json:"title"`
	ArtistName  string `json:"artistName"`
	ReleaseDate string `json:"releaseDate"`
	Genre       string `json:"genre"`
}

type albumUpdateRequest struct {
	Title       *string `json:"title"`
	ArtistName  *string `json:"artistName"`
	ReleaseDate *string `json:"releaseDate"`
	Genre       *string `json:"genre"`
}

type songRequest struct {
	Title    string `json:"title"`
	AlbumID  string `json:"albumId"`
	Duration int    `json:"duration"`
	Genre    string `json:"genre"`
}

type songUpdateRequest struct {
	Title    *string `json:"title"`
	AlbumID  *string `json:"albumId"`
	Duration *int    `json:"duration"`
	Genre    *string `json:"genre"`
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Genres(), limit, offset))
	case http.MethodPost:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
			var req genreRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			genre, err := s.app.CreateGenre(app.GenreInput{Name: req.Name, Description: req.Description})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, genre)
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleGenreByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/genres/")
	if id == "" || strings.Contains(id, "/") {
		s.notFound(w, r, "genre not found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		genre, err := s.app.Genre(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, genre)
	case http.MethodPut:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
			var req genreUpdateRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			genre, err := s.app.UpdateGenre(id, req.Name, req.Description)
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, genre)
		}).ServeHTTP(w, r)
	case http.MethodDelete:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
			if err := s.app.DeleteGenre(id); err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleAlbums(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Albums(), limit, offset))
	case http.MethodPost:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req albumRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			album, err := s.app.CreateAlbum(claims.UserID, app.AlbumInput{
				Title:       req.Title,
				ArtistName:  req.ArtistName,
				ReleaseDate: req.ReleaseDate,
				Genre:       req.Genre,
			})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, album)
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleAlbumByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/albums/")
	if id == "" || strings.Contains(id, "/") {
		s.notFound(w, r, "album not found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		album, err := s.app.Album(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, album)
	case http.MethodPut:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req albumUpdateRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			album, err := s.app.UpdateAlbum(claims.UserID, id, store.AlbumUpdate{
				Title:       req.Title,
				ArtistName:  req.ArtistName,
				ReleaseDate: req.ReleaseDate,
				Genre:       req.Genre,
			})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, album)
		}).ServeHTTP(w, r)
	case http.MethodDelete:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			if err := s.app.DeleteAlbum(claims.UserID, id); err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/artists/{id}/albums and /api/v1/artists/{id}/metrics
func (s *Server) handleArtistSubresource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/artists/")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		s.notFound(w, r, "route not found")
		return
	}
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	switch parts[1] {
	case "albums":
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.ArtistAlbums(parts[0]), limit, offset))
	case "metrics":
		stats, err := s.app.ArtistStats(parts[0])
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	default:
		s.notFound(w, r, "route not found")
	}
}

func (s *Server) handleSongs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Songs(), limit, offset))
	case http.MethodPost:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req songRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			song, err := s.app.CreateSong(claims.UserID, app.SongInput{
				Title:    req.Title,
				AlbumID:  req.AlbumID,
				Duration: req.Duration,
				Genre:    req.Genre,
			})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, song)
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/songs/{id} plus stream, preview and download subresources.
func (s *Server) handleSongByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/songs/")
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	if id == "" {
		s.notFound(w, r, "song not found")
		return
	}
	if len(parts) == 2 {
		s.handleSongMedia(w, r, id, parts[1])
		return
	}
	switch r.Method {
	case http.MethodGet:
		song, err := s.app.Song(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, song)
	case http.MethodPut:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req songUpdateRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			song, err := s.app.UpdateSong(claims.UserID, id, store.SongUpdate{
				Title:    req.Title,
				AlbumID:  req.AlbumID,
				Duration: req.Duration,
				Genre:    req.Genre,
			})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, song)
		}).ServeHTTP(w, r)
	case http.MethodDelete:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			if err := s.app.DeleteSong(claims.UserID, id); err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

// Previews and metrics are public; full stream and download need an account.
func (s *Server) handleSongMedia(w http.ResponseWriter, r *http.Request, id, action string) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	switch action {
	case "metrics":
		stats, err := s.app.SongStats(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	case "preview":
		info, err := s.app.PreviewSong(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	case "stream":
		s.authenticated(func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
			info, err := s.app.StreamSong(id)
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, info)
		}).ServeHTTP(w, r)
	case "download":
		s.authenticated(func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
			info, err := s.app.DownloadSong(id)
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, info)
		}).ServeHTTP(w, r)
	default:
		s.notFound(w, r, "route not found")
	}
}

type collaborationRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	ArtistIDs   []string `json:"artistIds"`
}

type collaborationUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type inviteRequest struct {
	ArtistID string `json:"artistId"`
	Role     string `json:"role"`
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

func (s *Server) handleCollaborations(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	var req collaborationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	collab, err := s.app.StartCollaboration(claims.UserID, app.CollaborationInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ArtistIDs:   req.ArtistIDs,
	})
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, collab)
}

// /api/v1/collaborations/{id} plus invite and respond subresources.
func (s *Server) handleCollaborationByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/collaborations/")
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	if id == "" {
		s.notFound(w, r, "collaboration not found")
		return
	}
	if len(parts) == 2 {
		switch parts[1] {
		case "invite":
			s.handleCollaborationInvite(w, r, claims, id)
		case "respond":
			s.handleCollaborationRespond(w, r, claims, id)
		default:
			s.notFound(w, r, "route not found")
		}
		return
	}
	switch r.Method {
	case http.MethodGet:
		collab, err := s.app.Collaboration(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collab)
	case http.MethodPut:
		var req collaborationUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		var status *domain.CollaborationStatus
		if req.Status != nil {
			st := domain.CollaborationStatus(*req.Status)
			status = &st
		}
		collab, err := s.app.UpdateCollaboration(claims.UserID, id, req.Title, req.Description, status)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collab)
	case http.MethodDelete:
		if err := s.app.DeleteCollaboration(claims.UserID, id); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleCollaborationInvite(w http.ResponseWriter, r *http.Request, claims auth.Claims, id string) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	var req inviteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	collab, err := s.app.InviteCollaborator(claims.UserID, id, req.ArtistID, req.Role)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, collab)
}

func (s *Server) handleCollaborationRespond(w http.ResponseWriter, r *http.Request, claims auth.Claims, id string) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	var req respondRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	collab, err := s.app.RespondToInvite(claims.UserID, id, req.Accept)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, collab)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.app.SearchSongs(r.URL.Query().Get("q")), limit, offset))
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.app.Recommendations(claims.UserID))
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.app.TrendingAlbums())
}
