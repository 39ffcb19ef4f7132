package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces session keys.
const DefaultRedisPrefix = "session:"

// RedisStore implements Store on top of redis. Values are JSON and keys
// expire together with the session.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store. An empty prefix means DefaultRedisPrefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Get returns connection and command failures unchanged.
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.prefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	if sess.IsExpired() {
		return nil, ErrSessionExpired
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, sess *Session) error {
	if sess == nil || token == "" {
		return ErrInvalidSession
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}
	return s.client.Set(ctx, s.prefix+token, data, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.prefix+token).Err()
}
