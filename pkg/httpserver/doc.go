// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server listens on Config.Addr, stops on context cancellation or
// SIGINT/SIGTERM and then runs the registered closers (for example the
// shared database handles obtained at startup) in reverse order.
//
//	srv := httpserver.New(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithCloser("postgres", func(context.Context) error { pool.Close(); return nil }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") without checks and readiness
// ("READY" / "NOT_READY") with them.
package httpserver
