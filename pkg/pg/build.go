package pg

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// Build creates a connection pool whose statement logging follows categories.
// The pool connects lazily: nothing is dialed or pinged here, so the first
// query surfaces connectivity problems. Errors are returned immediately.
func Build(ctx context.Context, cfg Config, categories shared.LogCategories, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = cfg.MaxOpenConns
	}
	poolCfg.MinConns = cfg.MaxIdleConns
	if cfg.HealthCheckPeriod > 0 {
		poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	if log == nil {
		log = logger.Discard()
	}
	poolCfg.ConnConfig.Tracer = NewQueryTracer(log, categories, cfg.SlowQueryThreshold)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreatePool, err)
	}
	return pool, nil
}

// Builder adapts Build to a shared.Registry.
func Builder(cfg Config, log *slog.Logger) shared.BuildFunc[*pgxpool.Pool] {
	return func(ctx context.Context, categories shared.LogCategories) (*pgxpool.Pool, error) {
		return Build(ctx, cfg, categories, log)
	}
}
