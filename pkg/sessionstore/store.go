// Package sessionstore holds anonymization mappings for the lifetime of the
// process. Sessions are short-lived handoffs to a downstream processor, not
// durable records, so there is no persistence across restarts and no
// background sweeper; expired sessions are evicted lazily on access.
package sessionstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/celarium/celarium/pkg/models"
)

var _ models.SessionStore = &Store{}

// Store is a mutex-guarded in-memory session map with an injected clock
// and TTL.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
}

func New(ttl time.Duration) *Store {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock allows tests to control time.
func NewWithClock(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      now,
	}
}

func (s *Store) Create(mapping *models.Mapping, ownerKey string) string {
	session := &models.Session{
		ID:        uuid.New().String(),
		Mapping:   mapping,
		CreatedAt: s.now(),
		OwnerKey:  ownerKey,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session

	return session.ID
}

func (s *Store) Get(sessionID, ownerKey string) (*models.Mapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.NewNotFoundError("session " + sessionID)
	}
	if session.OwnerKey != ownerKey {
		return nil, models.ErrUnauthorized
	}
	if s.now().Sub(session.CreatedAt) > s.ttl {
		// Evict on the access that observes the expiry. A later lookup of
		// the same ID reports not found.
		delete(s.sessions, sessionID)
		return nil, models.ErrSessionExpired
	}

	return session.Mapping, nil
}

func (s *Store) Delete(sessionID, ownerKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.NewNotFoundError("session " + sessionID)
	}
	if session.OwnerKey != ownerKey {
		return models.ErrUnauthorized
	}

	delete(s.sessions, sessionID)
	return nil
}

// Count returns the number of live sessions, expired or not.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
