// Package shared manages process-wide database client handles.
//
// A Registry is the single slot that holds a client handle (a pgx pool, a
// redis client, a mongo client, ...). Get returns the stored handle when one
// exists and builds a new one otherwise. Outside production the freshly built
// handle is kept in the slot, so code paths that re-run initialization (test
// suites, dev servers restarted in-process, plugin reloads) reuse the same
// connections instead of opening new pools every time. In production nothing
// is stored: the caller that asked for the handle owns it for the lifetime of
// the process.
//
// The build function receives the set of log categories selected for the
// registry's environment: query, warn and error in development, error only
// everywhere else. Driver packages (pg, redis, mongo) translate the set into
// their own logging hooks.
//
// # Usage
//
//	reg := shared.New(environment.FromEnv(), pg.Builder(cfg, log), shared.WithLogger(log))
//	pool, err := reg.Get(ctx)
//	if err != nil {
//	    return err
//	}
//
// # Concurrency
//
// The check-and-set in Get is serialized by a mutex, so concurrent first
// access never builds two handles for the same non-production registry.
// Construction errors are returned as is; nothing is retried and the slot
// stays empty.
package shared
