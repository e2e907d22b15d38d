package session

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store for tests and ephemeral runs. It is safe
// for concurrent use.
type MemStore struct {
	mu   sync.Mutex
	sess *Session
}

// NewMemStore returns an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Token returns the current bearer token, or "" when no session exists.
func (m *MemStore) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return "", nil
	}
	return m.sess.Token, nil
}

// Get returns the stored session, or ErrNoSession.
func (m *MemStore) Get(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return nil, ErrNoSession
	}
	sess := *m.sess
	return &sess, nil
}

// Set replaces the stored session.
func (m *MemStore) Set(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = &s
	return nil
}

// Clear removes the stored session.
func (m *MemStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}
