package store

import "audira/pkg/domain"

// UserUpdate enumerates the user fields that may change. Nil fields keep
// their prior value (shallow merge).
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Bio          *string
}

// GetUser returns a user by id.
func (m *Memory) GetUser(id string) (domain.User, bool) {
	m.mu.RLock()
	u, ok := m.users[id]
	m.mu.RUnlock()
	return u, ok
}

// GetUserByEmail scans for a user with the given email.
func (m *Memory) GetUserByEmail(email string) (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// CreateUser stores a user record and initializes its social sets.
// An existing record with the same id is overwritten silently; email
// uniqueness is the caller's responsibility.
func (m *Memory) CreateUser(u domain.User) {
	m.mu.Lock()
	m.users[u.ID] = u
	m.followers[u.ID] = make(map[string]struct{})
	m.following[u.ID] = make(map[string]struct{})
	m.mu.Unlock()
}

// UpdateUser shallow-merges the supplied fields. Reports false if the user
// does not exist.
func (m *Memory) UpdateUser(id string, upd UserUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	m.users[id] = u
	return true
}

// DeleteUser removes the account record. Ratings, comments and cart are left
// orphaned on purpose; they surface as absent lookups later.
func (m *Memory) DeleteUser(id string) bool {
	m.mu.Lock()
	_, ok := m.users[id]
	delete(m.users, id)
	m.mu.Unlock()
	return ok
}

// UserCount returns the number of registered users.
func (m *Memory) UserCount() int {
	m.mu.RLock()
	n := len(m.users)
	m.mu.RUnlock()
	return n
}

// GetFollowers lists ids of users following userID.
func (m *Memory) GetFollowers(userID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return setToSlice(m.followers[userID])
}

// GetFollowing lists ids of users userID follows.
func (m *Memory) GetFollowing(userID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return setToSlice(m.following[userID])
}

// AddFollower records that followerID follows userID. Both sides of the
// relationship are written in the same call so the sets stay symmetric.
// Either set is initialized lazily when absent.
func (m *Memory) AddFollower(userID, followerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.followers[userID] == nil {
		m.followers[userID] = make(map[string]struct{})
	}
	if m.following[followerID] == nil {
		m.following[followerID] = make(map[string]struct{})
	}
	m.followers[userID][followerID] = struct{}{}
	m.following[followerID][userID] = struct{}{}
}

// RemoveFollower deletes the relationship from both sides. Removing a
// relationship that does not exist is a no-op.
func (m *Memory) RemoveFollower(userID, followerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.followers[userID], followerID)
	delete(m.following[followerID], userID)
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
