package redis

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// LogHook is a go-redis hook that reports commands through slog.
// A redis.Nil reply is a miss, not a failure, and is never logged as an error.
type LogHook struct {
	log        *slog.Logger
	categories shared.LogCategories
	slow       time.Duration
}

var _ redis.Hook = (*LogHook)(nil)

// NewLogHook creates a hook. A zero slow threshold disables slow command reports.
func NewLogHook(log *slog.Logger, categories shared.LogCategories, slow time.Duration) *LogHook {
	return &LogHook{
		log:        log.With(logger.Component("redis")),
		categories: categories,
		slow:       slow,
	}
}

func (h *LogHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil && h.categories.Has(shared.LogError) {
			h.log.ErrorContext(ctx, "redis dial failed", slog.String("addr", addr), logger.Error(err))
		}
		return conn, err
	}
}

func (h *LogHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.report(ctx, cmd.Name(), time.Since(start), err)
		return err
	}
}

func (h *LogHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.report(ctx, "pipeline", time.Since(start), err, slog.Int("commands", len(cmds)))
		return err
	}
}

func (h *LogHook) report(ctx context.Context, name string, elapsed time.Duration, err error, attrs ...any) {
	attrs = append(attrs, logger.Statement(name), logger.Duration(elapsed))

	if err != nil && !errors.Is(err, redis.Nil) {
		if h.categories.Has(shared.LogError) {
			h.log.ErrorContext(ctx, "redis command failed", append(attrs, logger.Error(err))...)
		}
		return
	}

	if h.categories.Has(shared.LogQuery) {
		h.log.DebugContext(ctx, "redis command", attrs...)
	}
	if h.slow > 0 && elapsed >= h.slow && h.categories.Has(shared.LogWarn) {
		h.log.WarnContext(ctx, "slow redis command", attrs...)
	}
}
