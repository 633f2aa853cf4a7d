package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"audira/internal/app"
	"audira/internal/ratelimit"
	"audira/internal/util"
	"audira/pkg/auth"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App           *app.App
	CORSOrigin    string
	SignupLimiter *ratelimit.FixedWindowLimiter
	LoginLimiter  *ratelimit.FixedWindowLimiter
}

// Server exposes the platform's HTTP endpoints.
type Server struct {
	app           *app.App
	mux           *http.ServeMux
	corsOrigin    string
	signupLimiter *ratelimit.FixedWindowLimiter
	loginLimiter  *ratelimit.FixedWindowLimiter
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		app:           cfg.App,
		mux:           http.NewServeMux(),
		corsOrigin:    cfg.CORSOrigin,
		signupLimiter: cfg.SignupLimiter,
		loginLimiter:  cfg.LoginLimiter,
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog("audira", util.WithSecurityHeaders(util.WithCORS(s.corsOrigin, s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleRoot)

	// users and auth
	s.mux.HandleFunc("/api/v1/users/register", s.handleRegister)
	s.mux.HandleFunc("/api/v1/users/login", s.handleLogin)
	s.mux.Handle("/api/v1/users/logout", s.authenticated(s.handleLogout))
	s.mux.HandleFunc("/api/v1/users/", s.handleUserByID)
	s.mux.Handle("/api/v1/notifications", s.authenticated(s.handleNotifications))
	s.mux.HandleFunc("/api/v1/metrics", s.handleMetrics)

	// community
	s.mux.HandleFunc("/api/v1/products/", s.handleProductSubresource)
	s.mux.Handle("/api/v1/ratings/", s.authenticated(s.handleRatingByID))
	s.mux.Handle("/api/v1/comments/", s.authenticated(s.handleCommentByID))
	s.mux.HandleFunc("/api/v1/contact", s.handleContact)
	s.mux.HandleFunc("/api/v1/faqs", s.handleFAQs)

	// catalog
	s.mux.HandleFunc("/api/v1/genres", s.handleGenres)
	s.mux.HandleFunc("/api/v1/genres/", s.handleGenreByID)
	s.mux.HandleFunc("/api/v1/albums", s.handleAlbums)
	s.mux.HandleFunc("/api/v1/albums/", s.handleAlbumByID)
	s.mux.HandleFunc("/api/v1/artists/", s.handleArtistSubresource)
	s.mux.HandleFunc("/api/v1/songs", s.handleSongs)
	s.mux.HandleFunc("/api/v1/songs/", s.handleSongByID)
	s.mux.Handle("/api/v1/collaborations", s.authenticated(s.handleCollaborations))
	s.mux.Handle("/api/v1/collaborations/", s.authenticated(s.handleCollaborationByID))

	// discovery
	s.mux.HandleFunc("/api/v1/search", s.handleSearch)
	s.mux.Handle("/api/v1/recommendations", s.authenticated(s.handleRecommendations))
	s.mux.HandleFunc("/api/v1/trending", s.handleTrending)

	// playlists and library
	s.mux.HandleFunc("/api/v1/playlists", s.handlePlaylists)
	s.mux.Handle("/api/v1/playlists/", s.authenticated(s.handlePlaylistByID))
	s.mux.Handle("/api/v1/library", s.authenticated(s.handleLibrary))
	s.mux.Handle("/api/v1/library/", s.authenticated(s.handleLibraryEntry))

	// player
	s.mux.Handle("/api/v1/player/queue", s.authenticated(s.handleQueue))
	s.mux.Handle("/api/v1/player/queue/", s.authenticated(s.handleQueueSong))
	s.mux.Handle("/api/v1/player/progress/", s.authenticated(s.handleProgress))

	// store and checkout
	s.mux.HandleFunc("/api/v1/store/products", s.handleProducts)
	s.mux.HandleFunc("/api/v1/store/products/", s.handleProductByID)
	s.mux.HandleFunc("/api/v1/store/categories", s.handleCategories)
	s.mux.HandleFunc("/api/v1/store/filters", s.handleStoreFilters)
	s.mux.Handle("/api/v1/cart", s.authenticated(s.handleCart))
	s.mux.Handle("/api/v1/cart/total", s.authenticated(s.handleCartTotal))
	s.mux.Handle("/api/v1/cart/items", s.authenticated(s.handleCartItems))
	s.mux.Handle("/api/v1/cart/items/", s.authenticated(s.handleCartItemByID))
	s.mux.Handle("/api/v1/orders", s.authenticated(s.handleOrders))
	s.mux.Handle("/api/v1/orders/", s.authenticated(s.handleOrderByID))
	s.mux.HandleFunc("/api/v1/payments/webhook", s.handlePaymentWebhook)
	s.mux.Handle("/api/v1/payments", s.authenticated(s.handlePayments))
	s.mux.Handle("/api/v1/payments/", s.authenticated(s.handlePaymentByID))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.notFound(w, r, "route not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "Audira API",
		"version": "v1",
		"docs":    "/api/v1",
	})
}

type authHandler func(http.ResponseWriter, *http.Request, auth.Claims)

// authenticated wraps a handler with bearer-token verification. The token
// must verify and must not be blacklisted.
func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.writeError(w, r, http.StatusUnauthorized, "AUTH_MISSING_TOKEN", "authorization required")
			return
		}
		claims, err := s.app.Authenticate(token)
		if err != nil {
			s.writeError(w, r, http.StatusUnauthorized, "AUTH_INVALID_TOKEN", "invalid or expired token")
			return
		}
		next(w, r, claims)
	})
}

// claimsIfPresent resolves claims for routes that serve both anonymous and
// signed-in callers. A missing token is fine; a bad one is still rejected.
func (s *Server) claimsIfPresent(r *http.Request) (auth.Claims, bool, error) {
	token, ok := bearerToken(r)
	if !ok {
		return auth.Claims{}, false, nil
	}
	claims, err := s.app.Authenticate(token)
	if err != nil {
		return auth.Claims{}, false, err
	}
	return claims, true, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst)
}

// pageParams parses limit/offset query parameters. Negatives and garbage
// fall back to the defaults.
func pageParams(r *http.Request) (limit, offset int) {
	limit, offset = 20, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

type page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func paginate[T any](items []T, limit, offset int) page[T] {
	total := len(items)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return page[T]{
		Items:  items[offset:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, apiError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      r.URL.Path,
		RequestID: util.RequestIDFromRequest(r),
	})
}

// appError maps application sentinels to HTTP statuses.
func (s *Server) appError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		s.writeError(w, r, http.StatusNotFound, "RESOURCE_NOT_FOUND", err.Error())
	case errors.Is(err, app.ErrConflict), errors.Is(err, app.ErrEmailTaken):
		s.writeError(w, r, http.StatusConflict, "RESOURCE_CONFLICT", err.Error())
	case errors.Is(err, app.ErrForbidden):
		s.writeError(w, r, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, app.ErrUnauthorized), errors.Is(err, app.ErrInvalidCredentials):
		s.writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, app.ErrInvalidInput), errors.Is(err, auth.ErrWeakPassword):
		s.writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		s.writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	s.writeError(w, r, http.StatusNotFound, "RESOURCE_NOT_FOUND", msg)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	s.writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", msg)
}
