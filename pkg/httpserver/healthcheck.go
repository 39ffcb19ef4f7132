package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// HealthCheckHandler serves liveness and readiness.
//
//   - Without checks it answers 200 "ALIVE".
//   - With checks it runs each one against the request context and answers
//     200 "READY", or 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, c := range checks {
			if err := c.Fn(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", slog.String("check", c.Name), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
