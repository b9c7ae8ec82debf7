// pkg/mem/sessions.go
package mem

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session binds an opaque id to a user. Provider records which login flow
// created it ("local" or "google"); nothing downstream branches on it.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionStore interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error

	// Get returns ErrSessionNotFound for missing or expired sessions.
	Get(ctx context.Context, id string) (*Session, error)

	Delete(ctx context.Context, id string) error
}

type entry struct {
	session   Session
	expiresAt time.Time
}

// MemorySessions is a process-local SessionStore, used when no redis is configured.
type MemorySessions struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemorySessions) Save(_ context.Context, sess Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[sess.ID] = entry{
		session:   sess,
		expiresAt: s.now().Add(ttl),
	}
	s.sweepLocked()
	return nil
}

func (s *MemorySessions) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, id) // cleanup expired
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	sess := e.session
	return &sess, nil
}

func (s *MemorySessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// sweepLocked drops expired entries once the map grows past a threshold.
func (s *MemorySessions) sweepLocked() {
	if len(s.data) < 1024 {
		return
	}
	now := s.now()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}
