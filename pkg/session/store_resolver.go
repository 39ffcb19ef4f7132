package session

import (
	"net/http"
)

// StoreResolver resolves sessions from an opaque token looked up in a Store.
type StoreResolver struct {
	store  Store
	source TokenSource
}

var _ Resolver = (*StoreResolver)(nil)

// NewStoreResolver creates a resolver reading tokens from source.
// A nil source means the default session cookie.
func NewStoreResolver(store Store, source TokenSource) *StoreResolver {
	if source == nil {
		source = CookieSource(DefaultCookieName)
	}
	return &StoreResolver{store: store, source: source}
}

// Resolve returns (nil, nil) without a token. Store errors are returned as is.
func (s *StoreResolver) Resolve(r *http.Request) (*Session, error) {
	token, ok := s.source.Token(r)
	if !ok {
		return nil, nil
	}
	return s.store.Get(r.Context(), token)
}
