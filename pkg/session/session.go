package session

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the identity carried by a session.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
	Image string    `json:"image,omitempty"`
	Role  Role      `json:"role"`
}

// Session represents an authenticated user's session.
// A nil *Session means "no session" and is a valid state.
type Session struct {
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires"`
}

// New creates a session for user expiring after ttl.
// An empty role defaults to RoleUser.
func New(user User, ttl time.Duration) *Session {
	if user.Role == "" {
		user.Role = RoleUser
	}
	return &Session{
		User:      user,
		ExpiresAt: time.Now().Add(ttl).UTC().Truncate(time.Second),
	}
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// HasRole reports whether the session's user has role r.
func (s *Session) HasRole(r Role) bool {
	return s != nil && s.User.Role == r
}

// UserID returns the user identifier, or uuid.Nil for a nil session.
func (s *Session) UserID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.User.ID
}
