package session

import "net/http"

// Resolver obtains the session of the current request.
// It returns (nil, nil) when the request carries no session.
type Resolver interface {
	Resolve(r *http.Request) (*Session, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(r *http.Request) (*Session, error)

func (f ResolverFunc) Resolve(r *http.Request) (*Session, error) {
	return f(r)
}
