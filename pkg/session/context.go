package session

import "context"

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithSession or Probe.Middleware.
// The boolean is false when there is none.
func FromContext(ctx context.Context) (*Session, bool) {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s, s != nil
}
