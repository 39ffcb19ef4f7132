package session

import "errors"

var (
	// ErrInvalidToken indicates a malformed, unsigned or tampered session token
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates the token does not reference a stored session
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrInvalidSession indicates a session that cannot be stored or decoded
	ErrInvalidSession = errors.New("session.invalid")

	// ErrMissingSigningKey indicates the token resolver has no key
	ErrMissingSigningKey = errors.New("session.missing_signing_key")
)
