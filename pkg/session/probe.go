package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Outcome classifies the result of resolving a session.
type Outcome int

const (
	// OutcomePresent means a session was resolved.
	OutcomePresent Outcome = iota + 1
	// OutcomeAbsent means there is no session, either because the request
	// carries none or because a tolerable error was recovered.
	OutcomeAbsent
	// OutcomeFatal means the resolver failed with an unclassified error.
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomePresent:
		return "present"
	case OutcomeAbsent:
		return "absent"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Snapshot is the result of one resolution.
// Err is set for OutcomeFatal and for a tolerated error under OutcomeAbsent;
// for OutcomeFatal it is exactly the resolver's error.
type Snapshot struct {
	Outcome Outcome
	Session *Session
	Err     error
}

// ErrorHandler answers a request whose session could not be resolved.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Probe resolves sessions, recovering from tolerable errors only.
type Probe struct {
	resolver Resolver
	classify Classifier
	log      *slog.Logger
	onError  ErrorHandler
}

// ProbeOption configures a Probe.
type ProbeOption func(*Probe)

// WithClassifier replaces IsTolerable.
func WithClassifier(c Classifier) ProbeOption {
	return func(p *Probe) {
		if c != nil {
			p.classify = c
		}
	}
}

// WithLogger sets the probe logger.
func WithLogger(l *slog.Logger) ProbeOption {
	return func(p *Probe) {
		if l != nil {
			p.log = l
		}
	}
}

// WithErrorHandler replaces the default 500 response for fatal errors.
func WithErrorHandler(h ErrorHandler) ProbeOption {
	return func(p *Probe) {
		if h != nil {
			p.onError = h
		}
	}
}

// NewProbe creates a probe over resolver. Panics when resolver is nil.
func NewProbe(resolver Resolver, opts ...ProbeOption) *Probe {
	if resolver == nil {
		panic("session: resolver is required")
	}
	p := &Probe{
		resolver: resolver,
		classify: IsTolerable,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(logger.Component("session"))
	if p.onError == nil {
		p.onError = p.internalError
	}
	return p
}

// Snapshot resolves the session of r exactly once.
func (p *Probe) Snapshot(r *http.Request) Snapshot {
	s, err := p.resolver.Resolve(r)
	switch {
	case err == nil && s != nil:
		return Snapshot{Outcome: OutcomePresent, Session: s}
	case err == nil:
		return Snapshot{Outcome: OutcomeAbsent}
	case p.classify(err):
		p.log.DebugContext(r.Context(), "tolerated session error",
			logger.Outcome(OutcomeAbsent.String()),
			logger.Error(err),
		)
		return Snapshot{Outcome: OutcomeAbsent, Err: err}
	default:
		return Snapshot{Outcome: OutcomeFatal, Err: err}
	}
}

// Render returns the session of r as 2-space indented JSON, or "null" when
// there is none. Unclassified resolver errors are returned unchanged.
func (p *Probe) Render(r *http.Request) (string, error) {
	snap := p.Snapshot(r)
	if snap.Outcome == OutcomeFatal {
		return "", snap.Err
	}
	return Render(snap.Session)
}

// Render serializes s as 2-space indented JSON. A nil session renders as "null".
func Render(s *Session) (string, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ServeHTTP writes the rendered session as plain text.
func (p *Probe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := p.Render(r)
	if err != nil {
		p.onError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// Middleware stores the resolved session in the request context.
// Absent sessions pass through untouched; fatal errors go to the error handler.
func (p *Probe) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := p.Snapshot(r)
		switch snap.Outcome {
		case OutcomeFatal:
			p.onError(w, r, snap.Err)
		case OutcomePresent:
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), snap.Session)))
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (p *Probe) internalError(w http.ResponseWriter, r *http.Request, err error) {
	p.log.ErrorContext(r.Context(), "session resolution failed",
		logger.Outcome(OutcomeFatal.String()),
		logger.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
