package server

import (
	"net/http"
	"strings"

	"audira/pkg/auth"
)

type ratingRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ratingUpdateRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// /api/v1/products/{id}/ratings and /api/v1/products/{id}/comments.
func (s *Server) handleProductSubresource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/products/")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		s.notFound(w, r, "route not found")
		return
	}
	productID := parts[0]
	switch parts[1] {
	case "ratings":
		s.handleProductRatings(w, r, productID)
	case "comments":
		s.handleProductComments(w, r, productID)
	default:
		s.notFound(w, r, "route not found")
	}
}

func (s *Server) handleProductRatings(w http.ResponseWriter, r *http.Request, productID string) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.ProductRatings(productID), limit, offset))
	case http.MethodPost:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req ratingRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			rating, err := s.app.RateProduct(claims.UserID, productID, req.Rating, req.Comment)
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, rating)
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleProductComments(w http.ResponseWriter, r *http.Request, productID string) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.ProductComments(productID), limit, offset))
	case http.MethodPost:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
			var req commentRequest
			if err := decodeJSON(r, &req); err != nil {
				s.badRequest(w, r, "invalid JSON body")
				return
			}
			comment, err := s.app.CommentOnProduct(claims.UserID, productID, req.Content)
			if err != nil {
				s.appError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, comment)
		}).ServeHTTP(w, r)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/ratings/{id}
func (s *Server) handleRatingByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/ratings/")
	if id == "" || strings.Contains(id, "/") {
		s.notFound(w, r, "rating not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req ratingUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		rating, err := s.app.UpdateRating(claims.UserID, id, req.Rating, req.Comment)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rating)
	case http.MethodDelete:
		if err := s.app.DeleteRating(claims.UserID, id); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/comments/{id}
func (s *Server) handleCommentByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/comments/")
	if id == "" || strings.Contains(id, "/") {
		s.notFound(w, r, "comment not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req commentRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		comment, err := s.app.UpdateComment(claims.UserID, id, req.Content)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, comment)
	case http.MethodDelete:
		if err := s.app.DeleteComment(claims.UserID, id); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	receipt, err := s.app.Contact(req.Name, req.Email, req.Message)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) handleFAQs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.app.FAQs(), limit, offset))
}
