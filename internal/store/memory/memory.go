package memory

import (
	"context"
	"sync"
)

// Store keeps slots in process memory. It is used by tests and by the
// "memory" backend, where nothing survives a restart.
type Store struct {
	mu     sync.Mutex
	slots  map[string]string
	writes int
}

func New() *Store {
	return &Store{slots: make(map[string]string)}
}

// Seed returns a store whose key already holds value.
func Seed(key, value string) *Store {
	s := New()
	s.slots[key] = value
	return s
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = value
	s.writes++
	return nil
}

// Writes returns how many times Set has been called.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

func (s *Store) Close() error { return nil }
