package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Closer releases a resource once the server has stopped serving.
type Closer func(ctx context.Context) error

// Option configures the HTTP server.
type Option func(*Server)

// WithLogger supplies the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCloser registers a resource to release after shutdown.
// Closers run in reverse registration order.
func WithCloser(name string, fn Closer) Option {
	return func(s *Server) {
		if fn != nil {
			s.closers = append(s.closers, namedCloser{name: name, fn: fn})
		}
	}
}

type namedCloser struct {
	name string
	fn   Closer
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg     Config
	log     *slog.Logger
	closers []namedCloser

	mu     sync.Mutex
	srv    *http.Server
	closed bool
	once   sync.Once
}

// New returns a Server for cfg.
func New(cfg Config, opts ...Option) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{cfg: cfg, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("httpserver"))
	return s
}

// Run serves handler until ctx is done, SIGINT/SIGTERM arrives or the
// listener fails, then shuts down and runs the closers.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, http.ErrServerClosed)
	}
	if s.srv != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	s.srv = srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.Background())
		<-errCh
	case runErr = <-errCh:
		s.release(context.Background())
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		if errors.Is(runErr, ErrShutdown) {
			return runErr
		}
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully and releases registered resources.
// It is safe for repeated calls. A server shut down before serving refuses
// to start afterwards.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.closed = true
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		err = srv.Shutdown(ctx)
		s.releaseLocked(ctx)
		s.log.InfoContext(ctx, "http server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}

func (s *Server) release(ctx context.Context) {
	s.once.Do(func() { s.releaseLocked(ctx) })
}

func (s *Server) releaseLocked(ctx context.Context) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		if err := c.fn(ctx); err != nil {
			s.log.ErrorContext(ctx, "failed to release resource", slog.String("resource", c.name), logger.Error(err))
		}
	}
}
