package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	state     *State
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions expire ttl after their last write.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[st.ID] = &memoryEntry{state: st.Clone(), expiresAt: s.expiry()}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.state.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, fn func(st *State) error) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	next := e.state.Clone()
	if err := fn(next); err != nil {
		return e.state.Clone(), err
	}

	next.UpdatedAt = s.now()
	e.state = next
	e.expiresAt = s.expiry()
	return next.Clone(), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// lookup must be called with mu held. Expired entries are evicted lazily.
func (s *MemoryStore) lookup(id string) (*memoryEntry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *MemoryStore) expiry() time.Time {
	return s.now().Add(s.ttl)
}
