// Package mongo builds MongoDB clients for a shared.Registry.
//
// Build returns a *mongo.Client whose driver logging is wired through slog by
// LogSink. The shared.LogCategories decide which driver components are
// enabled and which messages reach the application logger:
//
//   - query: command started/succeeded events at debug level
//   - warn:  server selection waits
//   - error: failed commands, heartbeats, selections and checkouts
//
// Usage:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	clients := shared.New(env, mongo.Builder(cfg, log), shared.WithName("mongo"))
//	client, err := clients.Get(ctx)
//
// An empty Config.ConnectionURL makes Build fail with ErrEmptyConnectionURL,
// which callers use to keep mongo optional.
package mongo
