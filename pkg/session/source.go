package session

import (
	"net/http"
	"strings"
)

// TokenSource extracts a raw session token from a request.
type TokenSource interface {
	Token(r *http.Request) (string, bool)
}

// CookieSource reads the token from a cookie.
type CookieSource string

func (c CookieSource) Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(string(c))
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// HeaderSource reads the token from a header, stripping an optional prefix.
type HeaderSource struct {
	Name   string
	Prefix string
}

// BearerSource reads "Authorization: Bearer <token>".
func BearerSource() HeaderSource {
	return HeaderSource{Name: "Authorization", Prefix: "Bearer "}
}

func (h HeaderSource) Token(r *http.Request) (string, bool) {
	value := r.Header.Get(h.Name)
	if value == "" {
		return "", false
	}
	if h.Prefix != "" {
		if !strings.HasPrefix(value, h.Prefix) {
			return "", false
		}
		value = strings.TrimPrefix(value, h.Prefix)
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// FirstOf tries sources in order and returns the first token found.
func FirstOf(sources ...TokenSource) TokenSource {
	return firstOf(sources)
}

type firstOf []TokenSource

func (f firstOf) Token(r *http.Request) (string, bool) {
	for _, s := range f {
		if token, ok := s.Token(r); ok {
			return token, true
		}
	}
	return "", false
}
