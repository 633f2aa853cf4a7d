package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"audira/pkg/auth"
	"audira/pkg/domain"
	"audira/pkg/store"
)

// ProfileUpdate carries the caller-editable profile fields.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Bio      *string
}

// Session is the result of a successful login.
type Session struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Register creates an account after checking email uniqueness. The store
// cannot detect the conflict itself, so the check happens here before the
// write.
func (a *App) Register(username, email, password string) (domain.Profile, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" {
		return domain.Profile{}, fmt.Errorf("username and email are required: %w", ErrInvalidInput)
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: %w", err, ErrInvalidInput)
	}
	if _, exists := a.store.GetUserByEmail(email); exists {
		return domain.Profile{}, ErrEmailTaken
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	a.store.CreateUser(user)
	return a.profileOf(user), nil
}

// Login verifies credentials and issues a session token.
func (a *App) Login(email, password string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, ok := a.store.GetUserByEmail(email)
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return Session{}, ErrInvalidCredentials
	}
	token, ttl, err := a.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Token: token, ExpiresIn: int(ttl.Seconds())}, nil
}

// Logout blacklists the presented token. The blacklist is write-once; an
// already-revoked token is accepted silently.
func (a *App) Logout(token string) error {
	if token == "" {
		return nil
	}
	return a.blacklist.BlacklistToken(token)
}

// Authenticate resolves a bearer token to its claims, rejecting blacklisted
// tokens before signature verification.
func (a *App) Authenticate(token string) (auth.Claims, error) {
	revoked, err := a.blacklist.IsTokenBlacklisted(token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("check blacklist: %w", err)
	}
	if revoked {
		return auth.Claims{}, ErrUnauthorized
	}
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return auth.Claims{}, ErrUnauthorized
	}
	return claims, nil
}

// Profile returns the public view of a user.
func (a *App) Profile(id string) (domain.Profile, error) {
	user, ok := a.store.GetUser(id)
	if !ok {
		return domain.Profile{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return a.profileOf(user), nil
}

// UpdateProfile shallow-merges profile fields. Only the account owner may
// update, and a changed email must remain unique.
func (a *App) UpdateProfile(actorID, id string, upd ProfileUpdate) (domain.Profile, error) {
	if actorID != id {
		return domain.Profile{}, ErrForbidden
	}
	user, ok := a.store.GetUser(id)
	if !ok {
		return domain.Profile{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if upd.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*upd.Email))
		if email != user.Email {
			if _, exists := a.store.GetUserByEmail(email); exists {
				return domain.Profile{}, ErrEmailTaken
			}
		}
		upd.Email = &email
	}
	a.store.UpdateUser(id, store.UserUpdate{
		Username: upd.Username,
		Email:    upd.Email,
		Bio:      upd.Bio,
	})
	updated, _ := a.store.GetUser(id)
	return a.profileOf(updated), nil
}

// DeleteAccount removes the user record. Ratings, comments and cart are left
// orphaned, matching the documented cascade policy.
func (a *App) DeleteAccount(actorID, id string) error {
	if actorID != id {
		return ErrForbidden
	}
	if _, ok := a.store.GetUser(id); !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	a.store.DeleteUser(id)
	return nil
}

// Followers resolves follower ids to profiles, skipping dangling ids left by
// deleted accounts.
func (a *App) Followers(id string) ([]domain.Profile, error) {
	if _, ok := a.store.GetUser(id); !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return a.resolveProfiles(a.store.GetFollowers(id)), nil
}

// Following resolves followed-user ids to profiles.
func (a *App) Following(id string) ([]domain.Profile, error) {
	if _, ok := a.store.GetUser(id); !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return a.resolveProfiles(a.store.GetFollowing(id)), nil
}

// Follow records actorID as a follower of id. Both sides of the social graph
// are updated in a single store call.
func (a *App) Follow(actorID, id string) error {
	if actorID == id {
		return fmt.Errorf("cannot follow yourself: %w", ErrInvalidInput)
	}
	if _, ok := a.store.GetUser(id); !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	a.store.AddFollower(id, actorID)
	a.notify(id, "New follower", fmt.Sprintf("User %s started following you.", actorID))
	return nil
}

// Unfollow removes the relationship; unfollowing someone never followed is a
// no-op.
func (a *App) Unfollow(actorID, id string) error {
	if _, ok := a.store.GetUser(id); !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	a.store.RemoveFollower(id, actorID)
	return nil
}

func (a *App) profileOf(user domain.User) domain.Profile {
	return domain.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Followers: len(a.store.GetFollowers(user.ID)),
		Following: len(a.store.GetFollowing(user.ID)),
		Bio:       user.Bio,
	}
}

func (a *App) resolveProfiles(ids []string) []domain.Profile {
	out := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		user, ok := a.store.GetUser(id)
		if !ok {
			continue
		}
		out = append(out, a.profileOf(user))
	}
	return out
}

func (a *App) notify(userID, title, message string) {
	a.store.AddNotification(userID, domain.Notification{
		NotificationID: uuid.NewString(),
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
	})
}
