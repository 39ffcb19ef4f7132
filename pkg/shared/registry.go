package shared

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// BuildFunc constructs a new client handle configured for the given log categories.
type BuildFunc[T any] func(ctx context.Context, categories LogCategories) (T, error)

// Registry holds at most one client handle of type T.
type Registry[T any] struct {
	mu     sync.Mutex
	env    environment.Environment
	build  BuildFunc[T]
	log    *slog.Logger
	handle T
	stored bool
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	log  *slog.Logger
	name string
}

// WithLogger sets the logger used to report handle construction.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithName labels the registry in log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// New creates an empty registry for env. Panics when build is nil.
func New[T any](env environment.Environment, build BuildFunc[T], opts ...Option) *Registry[T] {
	if build == nil {
		panic("shared: build function is required")
	}
	o := options{log: logger.Discard(), name: "client"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		env:   env,
		build: build,
		log:   o.log.With(logger.Component("shared"), slog.String("client", o.name)),
	}
}

// Get returns the stored handle, or builds one.
// A stored handle is returned unchanged without validation. A new handle is
// stored only outside production. Build errors are returned unwrapped and
// leave the slot empty.
func (r *Registry[T]) Get(ctx context.Context) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stored {
		return r.handle, nil
	}

	categories := LogCategoriesFor(r.env)
	start := time.Now()

	handle, err := r.build(ctx, categories)
	if err != nil {
		var zero T
		r.log.ErrorContext(ctx, "client construction failed", logger.Error(err))
		return zero, err
	}

	if !r.env.IsProduction() {
		r.handle = handle
		r.stored = true
	}

	r.log.DebugContext(ctx, "client constructed",
		slog.Any("log_categories", categories),
		slog.Bool("stored", r.stored),
		logger.Duration(time.Since(start)),
	)

	return handle, nil
}

// Stored returns the handle held in the slot, if any.
func (r *Registry[T]) Stored() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle, r.stored
}

// Environment returns the environment the registry was created for.
func (r *Registry[T]) Environment() environment.Environment {
	return r.env
}
