package session

import "errors"

// Classifier reports whether a resolver error may be treated as "no session".
type Classifier func(err error) bool

// IsTolerable is the default Classifier. Bad or expired tokens and tokens
// that no longer reference a session are tolerable; anything else, such as a
// store outage, is not.
func IsTolerable(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrSessionNotFound)
}
