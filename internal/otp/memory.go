package otp

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	n       int
	expires time.Time
}

// MemoryStore счетчик попыток в памяти процесса, для одного инстанса и тестов.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]counter
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]counter),
		now:      time.Now,
	}
}

func (s *MemoryStore) Attempt(_ context.Context, orderID string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.counters[orderID]
	if !ok || now.After(c.expires) {
		c = counter{expires: now.Add(window)}
	}
	c.n++
	s.counters[orderID] = c
	return c.n, nil
}

func (s *MemoryStore) Reset(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, orderID)
	return nil
}
