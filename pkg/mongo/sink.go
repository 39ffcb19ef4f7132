package mongo

import (
	"context"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/shared"
)

// Levels as LogSink.Info receives them: the driver shifts options.LogLevel
// down by one, so info arrives as 0 and debug as 1.
const (
	SinkLevelInfo  = int(options.LogLevelInfo) - 1
	SinkLevelDebug = int(options.LogLevelDebug) - 1
)

// LoggerOptions enables driver components for categories:
// query turns on command logging at debug, any other category turns on
// topology, server selection and connection events at info.
func LoggerOptions(categories shared.LogCategories, log *slog.Logger, maxDocumentLength uint) *options.LoggerOptions {
	opts := options.Logger().SetSink(NewLogSink(log, categories))
	if maxDocumentLength > 0 {
		opts.SetMaxDocumentLength(maxDocumentLength)
	}
	if categories.Has(shared.LogQuery) {
		opts.SetComponentLevel(options.LogComponentCommand, options.LogLevelDebug)
	}
	if categories.Has(shared.LogInfo) || categories.Has(shared.LogWarn) || categories.Has(shared.LogError) {
		opts.SetComponentLevel(options.LogComponentTopology, options.LogLevelInfo)
		opts.SetComponentLevel(options.LogComponentServerSelection, options.LogLevelInfo)
		opts.SetComponentLevel(options.LogComponentConnection, options.LogLevelInfo)
	}
	return opts
}

// LogSink routes driver messages to slog, filtered by categories.
type LogSink struct {
	log        *slog.Logger
	categories shared.LogCategories
}

var _ options.LogSink = (*LogSink)(nil)

func NewLogSink(log *slog.Logger, categories shared.LogCategories) *LogSink {
	return &LogSink{log: log.With(logger.Component("mongo")), categories: categories}
}

// Info handles every non-error driver message. Messages describing a failure
// belong to the error category, "waiting" messages to warn, commands to query.
func (s *LogSink) Info(level int, message string, keysAndValues ...any) {
	ctx := context.Background()
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "failed"):
		if s.categories.Has(shared.LogError) {
			s.log.ErrorContext(ctx, message, keysAndValues...)
		}
	case strings.Contains(lower, "waiting"):
		if s.categories.Has(shared.LogWarn) {
			s.log.WarnContext(ctx, message, keysAndValues...)
		}
	case level >= SinkLevelDebug:
		if s.categories.Has(shared.LogQuery) {
			s.log.DebugContext(ctx, message, keysAndValues...)
		}
	default:
		if s.categories.Has(shared.LogInfo) {
			s.log.InfoContext(ctx, message, keysAndValues...)
		}
	}
}

func (s *LogSink) Error(err error, message string, keysAndValues ...any) {
	if !s.categories.Has(shared.LogError) {
		return
	}
	s.log.ErrorContext(context.Background(), message, append(keysAndValues, logger.Error(err))...)
}
