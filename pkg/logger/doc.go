// Package logger builds *slog.Logger values with a small set of options
// and keeps attribute names consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "authkit"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "query failed", logger.Component("pg"), logger.Error(err))
//
// Context extractors run for every record logged with a *Context method and
// add attributes taken from the context, such as the request id.
//
// Packages that accept an optional logger fall back to Discard.
package logger
