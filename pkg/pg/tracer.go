package pg

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// QueryTracer reports statements through slog according to log categories:
// query logs every statement at debug, warn logs statements slower than the
// threshold, error logs failed statements.
type QueryTracer struct {
	log        *slog.Logger
	categories shared.LogCategories
	slow       time.Duration
}

var _ pgx.QueryTracer = (*QueryTracer)(nil)

type traceKey struct{}

type traceStart struct {
	sql string
	at  time.Time
}

// NewQueryTracer creates a tracer. A zero slow threshold disables slow statement reports.
func NewQueryTracer(log *slog.Logger, categories shared.LogCategories, slow time.Duration) *QueryTracer {
	return &QueryTracer{
		log:        log.With(logger.Component("pg")),
		categories: categories,
		slow:       slow,
	}
}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	if t.categories.Has(shared.LogQuery) {
		t.log.DebugContext(ctx, "query", logger.Statement(data.SQL), slog.Int("args", len(data.Args)))
	}
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, at: time.Now()})
}

func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := time.Since(start.at)

	if data.Err != nil {
		if t.categories.Has(shared.LogError) {
			t.log.ErrorContext(ctx, "query failed",
				logger.Statement(start.sql),
				logger.Duration(elapsed),
				logger.Error(data.Err),
			)
		}
		return
	}

	if t.slow > 0 && elapsed >= t.slow && t.categories.Has(shared.LogWarn) {
		t.log.WarnContext(ctx, "slow query",
			logger.Statement(start.sql),
			logger.Duration(elapsed),
			slog.String("command_tag", data.CommandTag.String()),
		)
	}
}
