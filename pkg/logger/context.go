package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor derives an attribute from the context passed to a
// *Context logging call.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// WithContextExtractors registers extractors run on every record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name when it is set.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*config) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(key)
		if v == nil {
			return slog.Attr{}, false
		}
		return slog.Any(name, v), true
	})
}

type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
