package server

import (
	"net/http"
	"strings"

	"audira/internal/app"
	"audira/pkg/auth"
	"audira/pkg/domain"
	"audira/pkg/store"
)

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

type playlistUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

type addSongRequest struct {
	SongID   string `json:"songId"`
	Position int    `json:"position"`
}

type libraryRequest struct {
	ItemID string `json:"itemId"`
	Type   string `json:"type"`
}

// Listing is open to anonymous callers, who only see public playlists.
// Creating one still requires a token.
func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		claims, _, err := s.claimsIfPresent(r)
		if err != nil {
			s.writeError(w, r, http.StatusUnauthorized, "AUTH_INVALID_TOKEN", "invalid or expired token")
			return
		}
		userID := r.URL.Query().Get("userId")
		if userID == "" {
			userID = claims.UserID
		}
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Playlists(claims.UserID, userID), limit, offset))
	case http.MethodPost:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req playlistRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			playlist, err := s.app.CreatePlaylist(claims.UserID, app.PlaylistInput{
				Name:        req.Name,
				Description: req.Description,
				IsPublic:    req.IsPublic,
			})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, playlist)
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/playlists/{id} plus songs and metrics subresources.
func (s *Server) handlePlaylistByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/playlists/")
	parts := strings.SplitN(path, "/", 3)
	id := parts[0]
	if id == "" {
		s.notFound(w, r, "playlist not found")
		return
	}
	if len(parts) >= 2 {
		switch parts[1] {
		case "songs":
			songID := ""
			if len(parts) == 3 {
				songID = parts[2]
			}
			s.handlePlaylistSongs(w, r, claims, id, songID)
		case "metrics":
			s.handlePlaylistMetrics(w, r, claims, id)
		default:
			s.notFound(w, r, "route not found")
		}
		return
	}
	switch r.Method {
	case http.MethodGet:
		playlist, err := s.app.Playlist(claims.UserID, id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, playlist)
	case http.MethodPut:
		var req playlistUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		playlist, err := s.app.UpdatePlaylist(claims.UserID, id, store.PlaylistUpdate{
			Name:        req.Name,
			Description: req.Description,
			IsPublic:    req.IsPublic,
		})
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, playlist)
	case http.MethodDelete:
		if err := s.app.DeletePlaylist(claims.UserID, id); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handlePlaylistSongs(w http.ResponseWriter, r *http.Request, claims auth.Claims, playlistID, songID string) {
	switch r.Method {
	case http.MethodGet:
		if songID != "" {
			s.notFound(w, r, "route not found")
			return
		}
		songs, err := s.app.PlaylistSongs(claims.UserID, playlistID)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(songs, limit, offset))
	case http.MethodPost:
		if songID != "" {
			s.notFound(w, r, "route not found")
			return
		}
		var req addSongRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		entry, err := s.app.AddSongToPlaylist(claims.UserID, playlistID, req.SongID, req.Position)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	case http.MethodDelete:
		if songID == "" {
			s.badRequest(w, r, "song id required")
			return
		}
		if err := s.app.RemoveSongFromPlaylist(claims.UserID, playlistID, songID); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handlePlaylistMetrics(w http.ResponseWriter, r *http.Request, claims auth.Claims, id string) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	stats, err := s.app.PlaylistStats(claims.UserID, id)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleLibrary(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Library(claims.UserID), limit, offset))
	case http.MethodPost:
		var req libraryRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		entry, err := s.app.SaveToLibrary(claims.UserID, req.ItemID, domain.LibraryItemType(req.Type))
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/library/{entryId}
func (s *Server) handleLibraryEntry(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	entryID := strings.TrimPrefix(r.URL.Path, "/api/v1/library/")
	if entryID == "" || strings.Contains(entryID, "/") {
		s.notFound(w, r, "library entry not found")
		return
	}
	if r.Method != http.MethodDelete {
		s.methodNotAllowed(w, r)
		return
	}
	if err := s.app.RemoveFromLibrary(claims.UserID, entryID); err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

type setQueueRequest struct {
	SongIDs []string `json:"songIds"`
}

type enqueueRequest struct {
	SongID string `json:"songId"`
}

type progressRequest struct {
	Progress float64 `json:"progress"`
}

func (s *Server) handleQueue(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.app.Queue(claims.UserID))
	case http.MethodPut:
		var req setQueueRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		writeJSON(w, http.StatusOK, s.app.SetQueue(claims.UserID, req.SongIDs))
	case http.MethodPost:
		var req enqueueRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		entry, err := s.app.EnqueueSong(claims.UserID, req.SongID)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/player/queue/{songId}
func (s *Server) handleQueueSong(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	songID := strings.TrimPrefix(r.URL.Path, "/api/v1/player/queue/")
	if songID == "" || strings.Contains(songID, "/") {
		s.notFound(w, r, "route not found")
		return
	}
	if r.Method != http.MethodDelete {
		s.methodNotAllowed(w, r)
		return
	}
	s.app.DequeueSong(claims.UserID, songID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// /api/v1/player/progress/{songId}
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	songID := strings.TrimPrefix(r.URL.Path, "/api/v1/player/progress/")
	if songID == "" || strings.Contains(songID, "/") {
		s.notFound(w, r, "route not found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"songId":   songID,
			"progress": s.app.Progress(claims.UserID, songID),
		})
	case http.MethodPut:
		var req progressRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		if err := s.app.SaveProgress(claims.UserID, songID, req.Progress); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	default:
		s.methodNotAllowed(w, r)
	}
}
