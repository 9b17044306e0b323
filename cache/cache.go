package cache

import "sync"

// Store is a key→value memoization map guarded by a read/write mutex.
// The zero value is not usable; construct with New.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New returns an empty Store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]V)}
}

// Get returns the value stored under k, if present.
func (s *Store[K, V]) Get(k K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[k]

	return v, ok
}

// Put stores v under k, replacing any previous value.
func (s *Store[K, V]) Put(k K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k] = v
}

// Len returns the number of stored entries.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Keys returns the stored keys in unspecified order.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]K, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}

	return out
}

// Cleanup removes all entries. The store remains usable afterwards.
func (s *Store[K, V]) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[K]V)
}
