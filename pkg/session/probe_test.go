package session_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/session"
)

func fixedSession() *session.Session {
	return &session.Session{
		User: session.User{
			ID:    uuid.MustParse("0b6f1c4e-6a2e-4d47-9d8c-1f2a3b4c5d6e"),
			Name:  "Ada",
			Email: "ada@example.com",
			Role:  session.RoleAdmin,
		},
		ExpiresAt: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func resolverReturning(s *session.Session, err error) session.Resolver {
	return session.ResolverFunc(func(*http.Request) (*session.Session, error) {
		return s, err
	})
}

func TestProbe_RenderPresentSession(t *testing.T) {
	t.Parallel()

	s := fixedSession()
	probe := session.NewProbe(resolverReturning(s, nil))

	out, err := probe.Render(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	expected, err := json.MarshalIndent(s, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(expected), out)

	assert.Equal(t, `{
  "user": {
    "id": "0b6f1c4e-6a2e-4d47-9d8c-1f2a3b4c5d6e",
    "name": "Ada",
    "email": "ada@example.com",
    "role": "admin"
  },
  "expires": "2030-01-02T03:04:05Z"
}`, out)
}

func TestProbe_RenderNoSession(t *testing.T) {
	t.Parallel()

	probe := session.NewProbe(resolverReturning(nil, nil))

	snap := probe.Snapshot(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, session.OutcomeAbsent, snap.Outcome)
	assert.NoError(t, snap.Err)

	out, err := probe.Render(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "null", out)
}

func TestProbe_TolerableErrorsRenderNull(t *testing.T) {
	t.Parallel()

	tolerable := []error{
		session.ErrInvalidToken,
		session.ErrSessionExpired,
		session.ErrSessionNotFound,
		fmt.Errorf("decode: %w", session.ErrInvalidToken),
		errors.Join(session.ErrSessionExpired, errors.New("token is expired")),
	}

	for _, e := range tolerable {
		t.Run(e.Error(), func(t *testing.T) {
			t.Parallel()

			probe := session.NewProbe(resolverReturning(nil, e))
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			snap := probe.Snapshot(req)
			assert.Equal(t, session.OutcomeAbsent, snap.Outcome)
			assert.Nil(t, snap.Session)
			assert.Same(t, e, snap.Err)

			out, err := probe.Render(req)
			require.NoError(t, err)
			assert.Equal(t, "null", out)
		})
	}
}

func TestProbe_UnclassifiedErrorPropagatesUnchanged(t *testing.T) {
	t.Parallel()

	fatal := errors.New("connection refused")
	probe := session.NewProbe(resolverReturning(nil, fatal))
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	snap := probe.Snapshot(req)
	assert.Equal(t, session.OutcomeFatal, snap.Outcome)
	assert.Same(t, fatal, snap.Err)

	out, err := probe.Render(req)
	assert.Empty(t, out)
	assert.Same(t, fatal, err, "error identity must be preserved")
}

func TestProbe_CustomClassifier(t *testing.T) {
	t.Parallel()

	custom := errors.New("JWTSessionError")
	probe := session.NewProbe(
		resolverReturning(nil, custom),
		session.WithClassifier(func(err error) bool { return errors.Is(err, custom) }),
	)

	out, err := probe.Render(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "null", out)

	// The default set is no longer consulted.
	probe = session.NewProbe(
		resolverReturning(nil, session.ErrSessionExpired),
		session.WithClassifier(func(err error) bool { return errors.Is(err, custom) }),
	)
	_, err = probe.Render(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Same(t, session.ErrSessionExpired, err)
}

func TestProbe_ResolverCalledOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	probe := session.NewProbe(session.ResolverFunc(func(*http.Request) (*session.Session, error) {
		calls++
		return nil, session.ErrInvalidToken
	}))

	_, err := probe.Render(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "no retries")
}

func TestProbe_ServeHTTP(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		probe := session.NewProbe(resolverReturning(fixedSession(), nil))
		rr := httptest.NewRecorder()
		probe.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/session", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), `"role": "admin"`)
	})

	t.Run("tolerated", func(t *testing.T) {
		t.Parallel()

		probe := session.NewProbe(resolverReturning(nil, session.ErrInvalidToken))
		rr := httptest.NewRecorder()
		probe.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/session", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "null", rr.Body.String())
	})

	t.Run("fatal uses default handler", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		probe := session.NewProbe(resolverReturning(nil, errors.New("redis down")), session.WithLogger(log))

		rr := httptest.NewRecorder()
		probe.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/session", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "redis down")
		assert.Contains(t, buf.String(), `error="redis down"`)
		assert.Contains(t, buf.String(), "outcome=fatal")
	})

	t.Run("fatal uses custom handler", func(t *testing.T) {
		t.Parallel()

		fatal := errors.New("boom")
		var got error
		probe := session.NewProbe(resolverReturning(nil, fatal), session.WithErrorHandler(
			func(w http.ResponseWriter, _ *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		))

		rr := httptest.NewRecorder()
		probe.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/session", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Same(t, fatal, got)
	})
}

func TestProbe_Middleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resolver    session.Resolver
		wantCode    int
		wantSession bool
	}{
		{name: "present", resolver: resolverReturning(fixedSession(), nil), wantCode: http.StatusOK, wantSession: true},
		{name: "absent", resolver: resolverReturning(nil, nil), wantCode: http.StatusOK},
		{name: "tolerated", resolver: resolverReturning(nil, session.ErrSessionNotFound), wantCode: http.StatusOK},
		{name: "fatal", resolver: resolverReturning(nil, errors.New("boom")), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var found bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, found = session.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			session.NewProbe(tt.resolver).Middleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantSession, found)
		})
	}
}

func TestNewProbe_PanicsWithoutResolver(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { session.NewProbe(nil) })
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "present", session.OutcomePresent.String())
	assert.Equal(t, "absent", session.OutcomeAbsent.String())
	assert.Equal(t, "fatal", session.OutcomeFatal.String())
	assert.Equal(t, "unknown", session.Outcome(0).String())
}

func TestRender_Nil(t *testing.T) {
	t.Parallel()

	out, err := session.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", out)
}
