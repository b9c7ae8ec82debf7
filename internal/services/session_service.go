package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

type SessionServiceInterface interface {
	Create(ctx context.Context, userID, provider string) (*mem.Session, error)
	Resolve(ctx context.Context, sessionID string) (*mem.Session, error)
	Destroy(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

type SessionService struct {
	store mem.SessionStore
	ttl   time.Duration
	now   func() time.Time
}

func NewSessionService(store mem.SessionStore, ttl time.Duration) SessionServiceInterface {
	return &SessionService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *SessionService) TTL() time.Duration { return s.ttl }

func (s *SessionService) Create(ctx context.Context, userID, provider string) (*mem.Session, error) {
	now := s.now().UTC()
	sess := mem.Session{
		ID:        utils.GenerateSessionID(),
		UserID:    userID,
		Provider:  provider,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		return nil, fmt.Errorf("%w: save session: %v", utils.ErrDatabaseError, err)
	}
	return &sess, nil
}

// Resolve returns ErrUnauthenticated for unknown or expired sessions.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*mem.Session, error) {
	if sessionID == "" {
		return nil, utils.ErrUnauthenticated
	}
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mem.ErrSessionNotFound) {
			return nil, utils.ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: load session: %v", utils.ErrDatabaseError, err)
	}
	return sess, nil
}

func (s *SessionService) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: delete session: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
