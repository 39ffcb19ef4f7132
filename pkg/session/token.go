package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// TokenResolver resolves sessions from HS256-signed JWTs.
type TokenResolver struct {
	key    []byte
	source TokenSource
	issuer string
	leeway time.Duration
}

var _ Resolver = (*TokenResolver)(nil)

// TokenOption configures a TokenResolver.
type TokenOption func(*TokenResolver)

// WithTokenSource overrides where tokens are read from.
func WithTokenSource(source TokenSource) TokenOption {
	return func(t *TokenResolver) {
		if source != nil {
			t.source = source
		}
	}
}

// WithIssuer sets the iss claim written by Issue and required by Parse.
func WithIssuer(issuer string) TokenOption {
	return func(t *TokenResolver) { t.issuer = issuer }
}

// WithLeeway allows for clock skew when validating exp.
func WithLeeway(d time.Duration) TokenOption {
	return func(t *TokenResolver) { t.leeway = d }
}

// NewTokenResolver creates a resolver. By default tokens are read from the
// "session-token" cookie, then from a bearer Authorization header.
func NewTokenResolver(signingKey []byte, opts ...TokenOption) (*TokenResolver, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	t := &TokenResolver{
		key:    signingKey,
		source: FirstOf(CookieSource(DefaultCookieName), BearerSource()),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Resolve returns (nil, nil) when the request carries no token.
func (t *TokenResolver) Resolve(r *http.Request) (*Session, error) {
	raw, ok := t.source.Token(r)
	if !ok {
		return nil, nil
	}
	return t.Parse(raw)
}

// Parse validates raw and converts its claims to a Session.
// Expired tokens yield ErrSessionExpired, every other failure ErrInvalidToken;
// the library error is joined for diagnostics.
func (t *TokenResolver) Parse(raw string) (*Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	if t.leeway > 0 {
		opts = append(opts, jwt.WithLeeway(t.leeway))
	}

	claims := &Claims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(ErrSessionExpired, err)
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	role := claims.Role
	if role == "" {
		role = RoleUser
	}

	return &Session{
		User: User{
			ID:    id,
			Name:  claims.Name,
			Email: claims.Email,
			Image: claims.Image,
			Role:  role,
		},
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// Issue signs a token for s. The session needs a user id and an expiry.
func (t *TokenResolver) Issue(s *Session) (string, error) {
	if s == nil || s.User.ID == uuid.Nil || s.ExpiresAt.IsZero() {
		return "", ErrInvalidSession
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.User.ID.String(),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		Name:  s.User.Name,
		Email: s.User.Email,
		Image: s.User.Image,
		Role:  s.User.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}
