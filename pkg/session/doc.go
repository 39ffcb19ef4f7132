// Package session resolves and inspects the authenticated session of an
// HTTP request.
//
// A Session carries the user's identity (id, name, email, image) and role.
// A nil *Session means "no session"; it is a valid state, not an error.
//
// # Architecture
//
//	┌─────────┐  token  ┌─────────────┐        ┌──────────┐
//	│ Request │ ──────► │ TokenSource │ ─────► │ Resolver │ (jwt | store)
//	└─────────┘         └─────────────┘        └──────────┘
//	                                                 │ (*Session, error)
//	                                                 ▼
//	                                           ┌──────────┐   Classifier
//	                                           │  Probe   │ ◄──────────
//	                                           └──────────┘
//	                                                 │ Snapshot
//	                                                 ▼
//	                         present │ absent │ fatal (error unchanged)
//
// Resolvers:
//
//   - TokenResolver verifies HS256 JWTs (github.com/golang-jwt/jwt/v5).
//   - StoreResolver looks an opaque token up in a Store; RedisStore and
//     MemoryStore ship with the package.
//
// Probe applies a partial recovery policy on top of any Resolver. Errors the
// Classifier accepts (IsTolerable by default: ErrInvalidToken,
// ErrSessionExpired, ErrSessionNotFound) turn into an absent session;
// everything else is reported as fatal with the original error value.
//
// # Usage
//
//	resolver, err := session.NewTokenResolver([]byte(cfg.SigningKey))
//	if err != nil {
//	    return err
//	}
//	probe := session.NewProbe(resolver, session.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Use(probe.Middleware)
//	r.Get("/debug/session", probe.ServeHTTP)
//
// The debug page renders the session as 2-space indented JSON, or "null".
//
// # Error Handling
//
//   - ErrInvalidToken      – malformed or badly signed token
//   - ErrSessionExpired    – session has passed its expiry
//   - ErrSessionNotFound   – no session associated with token
//   - ErrInvalidSession    – session cannot be stored or decoded
//   - ErrMissingSigningKey – TokenResolver created without a key
package session
