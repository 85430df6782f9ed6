package registry

import (
	"context"
	"sync"
)

// InMemoryStore is an in-memory implementation of Store. A single mutex
// guards the whole registry; every mutation is atomic with respect to all
// other operations.
type InMemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewInMemoryStore creates a registry seeded from the given catalog. The
// seed is deep-copied so the caller's map stays untouched.
func NewInMemoryStore(seed map[string]*Activity) *InMemoryStore {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		activities[name] = act.Clone()
	}
	return &InMemoryStore{activities: activities}
}

// List implements Store
func (s *InMemoryStore) List(ctx context.Context) (map[string]*Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return copies to avoid external mutations
	result := make(map[string]*Activity, len(s.activities))
	for name, act := range s.activities {
		result[name] = act.Clone()
	}
	return result, nil
}

// Get implements Store
func (s *InMemoryStore) Get(ctx context.Context, name string) (*Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, exists := s.activities[name]
	if !exists {
		return nil, ErrActivityNotFound
	}
	return act.Clone(), nil
}

// Signup implements Store
func (s *InMemoryStore) Signup(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, exists := s.activities[name]
	if !exists {
		return ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if act.IsFull() {
		return ErrActivityFull
	}

	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister implements Store
func (s *InMemoryStore) Unregister(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, exists := s.activities[name]
	if !exists {
		return ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}
