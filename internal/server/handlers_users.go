package server

import (
	"net/http"
	"strings"

	"audira/internal/app"
	"audira/internal/util"
	"audira/pkg/auth"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	if s.signupLimiter != nil && !s.signupLimiter.Allow(util.ClientIP(r, nil)) {
		s.writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "too many signup attempts")
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	profile, err := s.app.Register(req.Username, req.Email, req.Password)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	if s.loginLimiter != nil && !s.loginLimiter.Allow(util.ClientIP(r, nil)) {
		s.writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts")
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	session, err := s.app.Login(req.Email, req.Password)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	token, _ := bearerToken(r)
	if err := s.app.Logout(token); err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

type profileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
}

// /api/v1/users/{id} plus followers, following and follow subresources.
func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	if id == "" {
		s.notFound(w, r, "user not found")
		return
	}
	if len(parts) == 2 {
		switch parts[1] {
		case "followers":
			s.handleFollowers(w, r, id)
		case "following":
			s.handleFollowing(w, r, id)
		case "follow":
			s.handleFollow(w, r, id)
		case "metrics":
			s.handleUserMetrics(w, r, id)
		default:
			s.notFound(w, r, "route not found")
		}
		return
	}
	switch r.Method {
	case http.MethodGet:
		profile, err := s.app.Profile(id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	case http.MethodPut:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req profileUpdateRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			profile, err := s.app.UpdateProfile(claims.UserID, id, app.ProfileUpdate{
				Username: req.Username,
				Email:    req.Email,
				Bio:      req.Bio,
			})
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, profile)
		}).ServeHTTP(w, r)
	case http.MethodDelete:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			if err := s.app.DeleteAccount(claims.UserID, id); err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleFollowers(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	followers, err := s.app.Followers(id)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(followers, limit, offset))
}

func (s *Server) handleFollowing(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	following, err := s.app.Following(id)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(following, limit, offset))
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request, id string) {
	s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
		switch r.Method {
		case http.MethodPost:
			if err := s.app.Follow(claims.UserID, id); err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "following"})
		case http.MethodDelete:
			if err := s.app.Unfollow(claims.UserID, id); err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "unfollowed"})
		default:
			s.methodNotAllowed(w, r)
		}
	}).ServeHTTP(w, r)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.app.Notifications(claims.UserID), limit, offset))
}

func (s *Server) handleUserMetrics(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	stats, err := s.app.UserStats(id)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.app.Metrics())
}
