// Package environment identifies the deployment a process runs in and
// carries it through contexts, requests and log records.
//
// The environment is normally resolved once at startup:
//
//	env := environment.FromEnv() // APP_ENV; unset means development
//
// and then attached to requests and loggers:
//
//	handler = environment.Middleware(env)(handler)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Only "production" (or "prod") counts as production. Any other value,
// including unknown ones, is treated as a non-production environment.
package environment
