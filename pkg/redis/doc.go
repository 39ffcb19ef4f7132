// Package redis builds go-redis clients for a shared.Registry.
//
// Build parses Config.ConnectionURL and returns a lazily dialing
// *redis.Client with a LogHook attached. The hook maps shared.LogCategories
// onto command logging:
//
//   - query: every command (and pipeline) at debug level
//   - warn:  commands slower than Config.SlowCommandThreshold
//   - error: failed dials and commands; redis.Nil is treated as a miss
//
// Usage:
//
//	clients := shared.New(env, redis.Builder(cfg, log), shared.WithName("redis"))
//	client, err := clients.Get(ctx)
//
// Healthcheck returns a closure suitable for liveness and readiness probes.
package redis
