package session

import (
	"context"
	"sync"
)

// MemoryStore implements Store interface using in-memory storage
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.IsExpired() {
		m.mu.Lock()
		// A concurrent Save may have replaced the entry since the read.
		if cur, ok := m.sessions[token]; ok && cur.IsExpired() {
			delete(m.sessions, token)
		}
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, token string, s *Session) error {
	if s == nil || token == "" {
		return ErrInvalidSession
	}
	if s.IsExpired() {
		return ErrSessionExpired
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = *s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
