// Package pg builds PostgreSQL connection pools for a shared.Registry.
//
// Build turns a Config and a set of shared.LogCategories into a lazily
// connecting *pgxpool.Pool. Statement logging is done by QueryTracer, a
// pgx.QueryTracer that routes through slog:
//
//   - query: every statement at debug level
//   - warn:  statements slower than Config.SlowQueryThreshold
//   - error: statements that returned an error
//
// Builder wraps Build for use with shared.New:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pools := shared.New(env, pg.Builder(cfg, log), shared.WithName("postgres"))
//	pool, err := pools.Get(ctx)
//
// Healthcheck returns a closure suitable for health endpoints.
//
// Construction errors are joined with ErrFailedToParseDBConfig or
// ErrFailedToCreatePool and never retried.
package pg
