package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"audira/pkg/domain"
	"audira/pkg/store"
)

// ContactReceipt acknowledges a contact-form submission.
type ContactReceipt struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// ProductRatings returns all ratings for a product; unknown products simply
// have no ratings.
func (a *App) ProductRatings(productID string) []domain.Rating {
	return a.store.ListRatingsByProduct(productID)
}

// RateProduct records a 1..5 star rating with an optional comment.
func (a *App) RateProduct(userID, productID string, stars int, comment string) (domain.Rating, error) {
	if stars < 1 || stars > 5 {
		return domain.Rating{}, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	r := domain.Rating{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Rating:    stars,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	a.store.CreateRating(r)
	return r, nil
}

// UpdateRating lets the author change their stars or comment.
func (a *App) UpdateRating(actorID, id string, stars *int, comment *string) (domain.Rating, error) {
	existing, ok := a.store.GetRating(id)
	if !ok {
		return domain.Rating{}, fmt.Errorf("rating %s: %w", id, ErrNotFound)
	}
	if existing.UserID != actorID {
		return domain.Rating{}, ErrForbidden
	}
	if stars != nil && (*stars < 1 || *stars > 5) {
		return domain.Rating{}, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	a.store.UpdateRating(id, store.RatingUpdate{Rating: stars, Comment: comment})
	updated, _ := a.store.GetRating(id)
	return updated, nil
}

// DeleteRating removes the author's rating.
func (a *App) DeleteRating(actorID, id string) error {
	existing, ok := a.store.GetRating(id)
	if !ok {
		return fmt.Errorf("rating %s: %w", id, ErrNotFound)
	}
	if existing.UserID != actorID {
		return ErrForbidden
	}
	a.store.DeleteRating(id)
	return nil
}

// ProductComments returns all comments for a product.
func (a *App) ProductComments(productID string) []domain.Comment {
	return a.store.ListCommentsByProduct(productID)
}

// CommentOnProduct records a non-empty comment.
func (a *App) CommentOnProduct(userID, productID, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, fmt.Errorf("content is required: %w", ErrInvalidInput)
	}
	c := domain.Comment{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	a.store.CreateComment(c)
	return c, nil
}

// UpdateComment lets the author change their comment text.
func (a *App) UpdateComment(actorID, id, content string) (domain.Comment, error) {
	existing, ok := a.store.GetComment(id)
	if !ok {
		return domain.Comment{}, fmt.Errorf("comment %s: %w", id, ErrNotFound)
	}
	if existing.UserID != actorID {
		return domain.Comment{}, ErrForbidden
	}
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, fmt.Errorf("content is required: %w", ErrInvalidInput)
	}
	a.store.UpdateComment(id, store.CommentUpdate{Content: &content})
	updated, _ := a.store.GetComment(id)
	return updated, nil
}

// DeleteComment removes the author's comment.
func (a *App) DeleteComment(actorID, id string) error {
	existing, ok := a.store.GetComment(id)
	if !ok {
		return fmt.Errorf("comment %s: %w", id, ErrNotFound)
	}
	if existing.UserID != actorID {
		return ErrForbidden
	}
	a.store.DeleteComment(id)
	return nil
}

// FAQs returns the seeded help entries.
func (a *App) FAQs() []domain.FAQ {
	return a.store.ListFAQs()
}

// Contact accepts a support message. Messages are acknowledged but not
// persisted; support follow-up happens out of band.
func (a *App) Contact(name, email, message string) (ContactReceipt, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return ContactReceipt{}, fmt.Errorf("name, email and message are required: %w", ErrInvalidInput)
	}
	return ContactReceipt{
		MessageID: "msg_" + uuid.NewString(),
		Status:    "received",
	}, nil
}

// Notifications lists a user's notifications, newest last.
func (a *App) Notifications(userID string) []domain.Notification {
	return a.store.ListNotifications(userID)
}
