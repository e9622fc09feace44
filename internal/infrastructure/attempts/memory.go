package attempts

import (
	"context"
	"sync"
	"time"

	"saukstas/internal/domain/model"
)

type entry struct {
	attempts  model.LoginAttempts
	expiresAt time.Time
}

// MemoryStore keeps counters in process. It is used when no redis is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, key string) (model.LoginAttempts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(key), nil
}

func (s *MemoryStore) Update(_ context.Context, key string, ttl time.Duration,
	fn func(model.LoginAttempts) model.LoginAttempts,
) (model.LoginAttempts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{attempts: fn(s.current(key))}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e

	return e.attempts, nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

// current must be called with mu held.
func (s *MemoryStore) current(key string) model.LoginAttempts {
	e, ok := s.entries[key]
	if !ok {
		return model.LoginAttempts{}
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)

		return model.LoginAttempts{}
	}

	return e.attempts
}
