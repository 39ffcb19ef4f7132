package mongo_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/mongo"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return logger.New(
		logger.WithOutput(buf),
		logger.WithTextFormatter(),
		logger.WithLevel(slog.LevelDebug),
	)
}

func TestLoggerOptions(t *testing.T) {
	t.Parallel()

	t.Run("development enables commands", func(t *testing.T) {
		t.Parallel()

		opts := mongo.LoggerOptions(shared.LogCategoriesFor(environment.Development), logger.Discard(), 500)
		assert.Equal(t, options.LogLevelDebug, opts.ComponentLevels[options.LogComponentCommand])
		assert.Equal(t, options.LogLevelInfo, opts.ComponentLevels[options.LogComponentServerSelection])
		assert.Equal(t, uint(500), opts.MaxDocumentLength)
		assert.NotNil(t, opts.Sink)
	})

	t.Run("production keeps commands quiet", func(t *testing.T) {
		t.Parallel()

		opts := mongo.LoggerOptions(shared.LogCategoriesFor(environment.Production), logger.Discard(), 0)
		_, ok := opts.ComponentLevels[options.LogComponentCommand]
		assert.False(t, ok)
		assert.Equal(t, options.LogLevelInfo, opts.ComponentLevels[options.LogComponentTopology])
	})
}

func TestLogSink(t *testing.T) {
	t.Parallel()

	t.Run("development", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		sink := mongo.NewLogSink(newTestLogger(buf), shared.LogCategoriesFor(environment.Development))

		sink.Info(mongo.SinkLevelDebug, "Command started", "commandName", "find")
		assert.Contains(t, buf.String(), `msg="Command started"`)
		assert.Contains(t, buf.String(), "component=mongo")

		buf.Reset()
		sink.Info(mongo.SinkLevelInfo, "Waiting for suitable server to become available")
		assert.Contains(t, buf.String(), "level=WARN")

		buf.Reset()
		sink.Info(mongo.SinkLevelInfo, "Starting topology monitoring")
		assert.Empty(t, buf.String(), "info category is not enabled in development")
	})

	t.Run("production", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		sink := mongo.NewLogSink(newTestLogger(buf), shared.LogCategoriesFor(environment.Production))

		sink.Info(mongo.SinkLevelDebug, "Command succeeded")
		sink.Info(mongo.SinkLevelInfo, "Waiting for suitable server to become available")
		assert.Empty(t, buf.String())

		sink.Info(mongo.SinkLevelInfo, "Server heartbeat failed")
		assert.Contains(t, buf.String(), "level=ERROR")

		buf.Reset()
		sink.Error(errors.New("boom"), "pool cleared")
		assert.Contains(t, buf.String(), "error=boom")
	})

	t.Run("info category", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		sink := mongo.NewLogSink(newTestLogger(buf), shared.LogCategories{shared.LogInfo})

		sink.Info(0, "Starting topology monitoring")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), `msg="Starting topology monitoring"`)

		buf.Reset()
		sink.Info(1, "Command started")
		assert.Empty(t, buf.String(), "query category is not enabled")
	})

	t.Run("driver levels", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, mongo.SinkLevelInfo)
		assert.Equal(t, 1, mongo.SinkLevelDebug)
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	_, err := mongo.Build(context.Background(), mongo.Config{}, nil, nil)
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)

	client, err := mongo.Build(context.Background(), mongo.Config{ConnectionURL: "mongodb://127.0.0.1:1"},
		shared.LogCategoriesFor(environment.Production), nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
}
