package environment

import (
	"context"
	"log/slog"
	"net/http"
)

type ctxKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" if there is none.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(ctxKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool { return FromContext(ctx).IsProduction() }
func IsDevelopment(ctx context.Context) bool { return FromContext(ctx).IsDevelopment() }
func IsStaging(ctx context.Context) bool { return FromContext(ctx).IsStaging() }

// Middleware stores env in every request context.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}

// LoggerExtractor adds an "env" attribute to records whose context carries
// an environment.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", env.String()), true
	}
}
