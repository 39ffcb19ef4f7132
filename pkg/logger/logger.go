package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/authkit/pkg/environment"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat panics on anything but FormatJSON or FormatText so a bad
// setting stops startup.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }
func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput redirects records to w. A nil writer keeps stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithEnvironment picks debug level and text output for development, info
// level and JSON otherwise, and tags records with service and env.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(c *config) {
		c.level, c.format = slog.LevelInfo, FormatJSON
		if env.IsDevelopment() {
			c.level, c.format = slog.LevelDebug, FormatText
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env.String()))
	}
}

// New builds a logger. Defaults are JSON at info level on stdout.
func New(opts ...Option) *slog.Logger {
	c := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}

	hopts := &slog.HandlerOptions{Level: c.level}
	var h slog.Handler = slog.NewJSONHandler(c.output, hopts)
	if c.format == FormatText {
		h = slog.NewTextHandler(c.output, hopts)
	}
	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}
	if len(c.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: c.extractors}
	}
	return slog.New(h)
}

// SetAsDefault installs l as the slog default.
func SetAsDefault(l *slog.Logger) { slog.SetDefault(l) }

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
