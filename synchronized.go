package vecindex

import (
	"cmp"
	"sync"

	"github.com/hupe1980/vecindex/point"
)

// Synchronized serializes writes to an index and lets reads run concurrently.
type Synchronized[K cmp.Ordered, P point.Point[P]] struct {
	mu  sync.RWMutex
	idx Index[K, P]
}

// Synchronize wraps idx for use from multiple goroutines. The caller must not
// use idx directly afterwards.
func Synchronize[K cmp.Ordered, P point.Point[P]](idx Index[K, P]) *Synchronized[K, P] {
	return &Synchronized[K, P]{idx: idx}
}

// Name returns the name of the wrapped index.
func (s *Synchronized[K, P]) Name() string { return name(s.idx) }

// Insert adds p under key while holding the write lock.
func (s *Synchronized[K, P]) Insert(key K, p P) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Insert(key, p)
}

// Find returns the n entries closest to query while holding a read lock.
func (s *Synchronized[K, P]) Find(query P, n int) ([]Result[K, P], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Find(query, n)
}

// FindKeys returns the keys of the n entries closest to query.
func (s *Synchronized[K, P]) FindKeys(query P, n int) ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.FindKeys(query, n)
}

// Len returns the number of entries.
func (s *Synchronized[K, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Len()
}

// Do runs fn with exclusive access to the wrapped index, for operations
// beyond the shared interface (e.g. hnsw Stats or Validate).
func (s *Synchronized[K, P]) Do(fn func(idx Index[K, P])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.idx)
}
