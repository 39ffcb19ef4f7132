package mongo

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// Build creates a client whose driver logging follows categories.
// mongo.Connect starts server monitoring in the background and does not
// wait for a server, so an unreachable cluster is not an error here.
func Build(_ context.Context, cfg Config, categories shared.LogCategories, log *slog.Logger) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if log == nil {
		log = logger.Discard()
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetLoggerOptions(LoggerOptions(categories, log, cfg.MaxDocumentLength))
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	opts.SetMinPoolSize(cfg.MinPoolSize)
	if cfg.MaxConnIdleTime > 0 {
		opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateClient, err)
	}
	return client, nil
}

// Builder adapts Build to a shared.Registry.
func Builder(cfg Config, log *slog.Logger) shared.BuildFunc[*mongo.Client] {
	return func(ctx context.Context, categories shared.LogCategories) (*mongo.Client, error) {
		return Build(ctx, cfg, categories, log)
	}
}
