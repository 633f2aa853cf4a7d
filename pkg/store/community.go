package store

import "audira/pkg/domain"

// RatingUpdate lists the mutable rating fields; nil keeps the prior value.
type RatingUpdate struct {
	Rating  *int
	Comment *string
}

// CommentUpdate lists the mutable comment fields; nil keeps the prior value.
type CommentUpdate struct {
	Content *string
}

func (m *Memory) GetRating(id string) (domain.Rating, bool) {
	m.mu.RLock()
	r, ok := m.ratings[id]
	m.mu.RUnlock()
	return r, ok
}

// ListRatingsByProduct scans all ratings for the given product id.
func (m *Memory) ListRatingsByProduct(productID string) []domain.Rating {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Rating, 0)
	for _, r := range m.ratings {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

func (m *Memory) CreateRating(r domain.Rating) {
	m.mu.Lock()
	m.ratings[r.ID] = r
	m.mu.Unlock()
}

func (m *Memory) UpdateRating(id string, upd RatingUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.ratings[id]
	if !ok {
		return false
	}
	if upd.Rating != nil {
		r.Rating = *upd.Rating
	}
	if upd.Comment != nil {
		r.Comment = *upd.Comment
	}
	m.ratings[id] = r
	return true
}

func (m *Memory) DeleteRating(id string) bool {
	m.mu.Lock()
	_, ok := m.ratings[id]
	delete(m.ratings, id)
	m.mu.Unlock()
	return ok
}

// RatingCount returns the number of stored ratings.
func (m *Memory) RatingCount() int {
	m.mu.RLock()
	n := len(m.ratings)
	m.mu.RUnlock()
	return n
}

func (m *Memory) GetComment(id string) (domain.Comment, bool) {
	m.mu.RLock()
	c, ok := m.comments[id]
	m.mu.RUnlock()
	return c, ok
}

// ListCommentsByProduct scans all comments for the given product id.
func (m *Memory) ListCommentsByProduct(productID string) []domain.Comment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Comment, 0)
	for _, c := range m.comments {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out
}

func (m *Memory) CreateComment(c domain.Comment) {
	m.mu.Lock()
	m.comments[c.ID] = c
	m.mu.Unlock()
}

func (m *Memory) UpdateComment(id string, upd CommentUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return false
	}
	if upd.Content != nil {
		c.Content = *upd.Content
	}
	m.comments[id] = c
	return true
}

func (m *Memory) DeleteComment(id string) bool {
	m.mu.Lock()
	_, ok := m.comments[id]
	delete(m.comments, id)
	m.mu.Unlock()
	return ok
}

// CommentCount returns the number of stored comments.
func (m *Memory) CommentCount() int {
	m.mu.RLock()
	n := len(m.comments)
	m.mu.RUnlock()
	return n
}

// ListFAQs returns the seeded FAQ entries.
func (m *Memory) ListFAQs() []domain.FAQ {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.FAQ(nil), m.faqs...)
}

// ListNotifications returns the notifications recorded for a user, oldest
// first. Unknown users yield an empty list.
func (m *Memory) ListNotifications(userID string) []domain.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Notification(nil), m.notifications[userID]...)
}

// AddNotification appends a notification to the user's list, initializing it
// lazily on first write.
func (m *Memory) AddNotification(userID string, n domain.Notification) {
	m.mu.Lock()
	m.notifications[userID] = append(m.notifications[userID], n)
	m.mu.Unlock()
}
