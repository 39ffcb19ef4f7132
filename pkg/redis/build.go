package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// Build creates a client whose command logging follows categories.
// The client dials lazily; no ping is issued here.
func Build(_ context.Context, cfg Config, categories shared.LogCategories, log *slog.Logger) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	if log == nil {
		log = logger.Discard()
	}

	client := redis.NewClient(opts)
	client.AddHook(NewLogHook(log, categories, cfg.SlowCommandThreshold))
	return client, nil
}

// Builder adapts Build to a shared.Registry.
func Builder(cfg Config, log *slog.Logger) shared.BuildFunc[*redis.Client] {
	return func(ctx context.Context, categories shared.LogCategories) (*redis.Client, error) {
		return Build(ctx, cfg, categories, log)
	}
}
