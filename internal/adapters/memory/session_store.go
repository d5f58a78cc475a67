package memory

import (
	"context"
	"sync"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// SessionSlotStore keeps the single mirrored identity in process memory.
// It is the default slot backend when no Redis URL is configured.
type SessionSlotStore struct {
	mu       sync.Mutex
	identity domain.Identity
	occupied bool
}

func NewSessionSlotStore() *SessionSlotStore {
	return &SessionSlotStore{}
}

func (s *SessionSlotStore) Save(_ context.Context, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.occupied = true
	return nil
}

func (s *SessionSlotStore) Load(_ context.Context) (domain.Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.occupied {
		return domain.Identity{}, false, nil
	}
	return s.identity, true, nil
}

func (s *SessionSlotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = domain.Identity{}
	s.occupied = false
	return nil
}
