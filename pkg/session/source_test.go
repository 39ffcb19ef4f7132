package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestTokenSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		source  session.TokenSource
		token   string
		found   bool
	}{
		{
			name:    "cookie",
			prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "sid", Value: "c1"}) },
			source:  session.CookieSource("sid"),
			token:   "c1",
			found:   true,
		},
		{
			name:    "empty cookie",
			prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "sid", Value: ""}) },
			source:  session.CookieSource("sid"),
		},
		{
			name:    "bearer",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer h1") },
			source:  session.BearerSource(),
			token:   "h1",
			found:   true,
		},
		{
			name:    "basic auth is not a bearer token",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
			source:  session.BearerSource(),
		},
		{
			name:    "custom header without prefix",
			prepare: func(r *http.Request) { r.Header.Set("X-Session", "x1") },
			source:  session.HeaderSource{Name: "X-Session"},
			token:   "x1",
			found:   true,
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "c2"})
				r.Header.Set("Authorization", "Bearer h2")
			},
			source: session.DefaultConfig().TokenSource(),
			token:  "c2",
			found:  true,
		},
		{
			name:    "falls back to header",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer h3") },
			source:  session.DefaultConfig().TokenSource(),
			token:   "h3",
			found:   true,
		},
		{
			name:    "nothing",
			prepare: func(*http.Request) {},
			source:  session.FirstOf(session.CookieSource("sid"), session.BearerSource()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)

			token, found := tt.source.Token(req)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.token, token)
		})
	}
}
