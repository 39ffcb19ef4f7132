package session

import "context"

// Store defines the interface for session persistence keyed by opaque token.
type Store interface {
	// Get returns ErrSessionNotFound for unknown tokens and ErrSessionExpired
	// for sessions past their expiry.
	Get(ctx context.Context, token string) (*Session, error)

	// Save stores s under token until s.ExpiresAt.
	Save(ctx context.Context, token string, s *Session) error

	// Delete removes a session by token.
	Delete(ctx context.Context, token string) error
}
