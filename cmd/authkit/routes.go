package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/avatar"
	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// issuer persists s and returns the token a client presents to resolve it.
type issuer func(ctx context.Context, s *session.Session) (string, error)

type app struct {
	env        environment.Environment
	log        *slog.Logger
	probe      *session.Probe
	issue      issuer
	cookieName string
	ttl        time.Duration
	checks     []httpserver.Check
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(a.env))

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.checks...))
	r.Get("/debug/session", a.probe.ServeHTTP)
	if !a.env.IsProduction() && a.issue != nil {
		r.Post("/debug/login", a.login)
	}
	return r
}

// login mints a session for the submitted identity. Development aid only.
func (a *app) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	role := session.Role(r.PostForm.Get("role"))
	if role != "" && !role.Valid() {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}

	sess := session.New(session.User{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(r.PostForm.Get("name")),
		Email: email,
		Image: avatar.ForKey(email),
		Role:  role,
	}, a.ttl)

	token, err := a.issue(r.Context(), sess)
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to issue session", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name := a.cookieName
	if name == "" {
		name = session.DefaultCookieName
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	a.log.InfoContext(r.Context(), "session issued", logger.UserID(sess.User.ID), logger.Role(sess.User.Role))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(token))
}
