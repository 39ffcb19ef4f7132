package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/mongo"
	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/pkg/redis"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// Config is the process level configuration.
type Config struct {
	Service string `env:"APP_SERVICE" envDefault:"authkit"`
}

func run(ctx context.Context) error {
	var (
		appCfg   Config
		httpCfg  httpserver.Config
		sessCfg  session.Config
		pgCfg    pg.Config
		redisCfg redis.Config
		mongoCfg mongo.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&sessCfg) },
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&mongoCfg) },
	} {
		if err := load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	env := environment.FromEnv()
	log := newLogger(env, appCfg.Service, os.Stdout)
	logger.SetAsDefault(log)

	var (
		closers []httpserver.Option
		checks  []httpserver.Check
	)

	pool, err := shared.New(env, pg.Builder(pgCfg, log), shared.WithLogger(log), shared.WithName("postgres")).Get(ctx)
	if err != nil {
		return fmt.Errorf("postgres client: %w", err)
	}
	closers = append(closers, httpserver.WithCloser("postgres", func(context.Context) error {
		pool.Close()
		return nil
	}))
	checks = append(checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})

	rdb, err := shared.New(env, redis.Builder(redisCfg, log), shared.WithLogger(log), shared.WithName("redis")).Get(ctx)
	if err != nil {
		return fmt.Errorf("redis client: %w", err)
	}
	closers = append(closers, httpserver.WithCloser("redis", func(context.Context) error {
		return rdb.Close()
	}))
	checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(rdb)})

	if mongoCfg.ConnectionURL != "" {
		mc, err := shared.New(env, mongo.Builder(mongoCfg, log), shared.WithLogger(log), shared.WithName("mongo")).Get(ctx)
		if err != nil {
			return fmt.Errorf("mongo client: %w", err)
		}
		closers = append(closers, httpserver.WithCloser("mongo", mc.Disconnect))
		checks = append(checks, httpserver.Check{Name: "mongo", Fn: mongo.Healthcheck(mc)})
	}

	var (
		resolver session.Resolver
		issue    issuer
	)
	switch sessCfg.Backend {
	case session.BackendJWT:
		tr, err := session.NewTokenResolver([]byte(sessCfg.SigningKey),
			session.WithTokenSource(sessCfg.TokenSource()),
			session.WithIssuer(sessCfg.Issuer),
			session.WithLeeway(sessCfg.Leeway),
		)
		if err != nil {
			return fmt.Errorf("session resolver: %w", err)
		}
		resolver = tr
		issue = func(_ context.Context, s *session.Session) (string, error) { return tr.Issue(s) }
	case session.BackendRedis:
		store := session.NewRedisStore(rdb, sessCfg.RedisPrefix)
		resolver = session.NewStoreResolver(store, sessCfg.TokenSource())
		issue = storeIssuer(store)
	default:
		return fmt.Errorf("session backend %q is not supported", sessCfg.Backend)
	}

	a := &app{
		env:        env,
		log:        log,
		probe:      session.NewProbe(resolver, session.WithLogger(log)),
		issue:      issue,
		cookieName: sessCfg.CookieName,
		ttl:        sessCfg.TTL,
		checks:     checks,
	}

	log.InfoContext(ctx, "starting authkit",
		slog.String("addr", httpCfg.Addr),
		slog.String("session_backend", string(sessCfg.Backend)),
	)

	srv := httpserver.New(httpCfg, append([]httpserver.Option{httpserver.WithLogger(log)}, closers...)...)
	return srv.Run(ctx, a.routes())
}

// newLogger tags records with the static env attribute from WithEnvironment
// and the chi request id.
func newLogger(env environment.Environment, service string, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(env, service),
		logger.WithOutput(w),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
}

// storeIssuer saves sessions under random opaque tokens.
func storeIssuer(store session.Store) issuer {
	return func(ctx context.Context, s *session.Session) (string, error) {
		token := uuid.NewString()
		if err := store.Save(ctx, token, s); err != nil {
			return "", err
		}
		return token, nil
	}
}
