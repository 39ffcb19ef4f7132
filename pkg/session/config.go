package session

import "time"

// DefaultCookieName is the cookie carrying the session token.
const DefaultCookieName = "session-token"

// Backend selects how sessions are resolved.
type Backend string

const (
	// BackendJWT resolves self-contained signed tokens.
	BackendJWT Backend = "jwt"
	// BackendRedis resolves opaque tokens against a redis store.
	BackendRedis Backend = "redis"
)

// Config holds session configuration
type Config struct {
	Backend    Backend       `env:"SESSION_BACKEND" envDefault:"jwt"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"session-token"`
	SigningKey string        `env:"SESSION_SIGNING_KEY"`
	Issuer     string        `env:"SESSION_ISSUER"`
	Leeway     time.Duration `env:"SESSION_LEEWAY" envDefault:"0s"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// RedisPrefix namespaces session keys for the redis backend
	RedisPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Backend:     BackendJWT,
		CookieName:  DefaultCookieName,
		TTL:         30 * 24 * time.Hour,
		RedisPrefix: DefaultRedisPrefix,
	}
}

// TokenSource reads the configured cookie first, then a bearer header.
func (c Config) TokenSource() TokenSource {
	name := c.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return FirstOf(CookieSource(name), BearerSource())
}
