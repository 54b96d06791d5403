// Package memo provides a single-slot, time-bounded memo for fetch results.
// Repeated triggers inside the TTL window reuse the previous value instead of
// hitting the network again.
package memo

import (
	"sync"
	"time"

	"github.com/frnietz/newsletter-tr/internal/types"
)

// Slot caches one value with a TTL. The zero value is not usable; use New.
type Slot[T any] struct {
	mu    sync.Mutex
	value T
	setAt time.Time
	valid bool
	ttl   time.Duration
	clock types.Clock
}

// New creates a slot with the given TTL and clock.
func New[T any](ttl time.Duration, clock types.Clock) *Slot[T] {
	return &Slot[T]{ttl: ttl, clock: clock}
}

// Get returns the cached value if it is still inside the TTL window.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if !s.valid {
		return zero, false
	}
	if s.clock.Now().Sub(s.setAt) > s.ttl {
		s.valid = false
		return zero, false
	}
	return s.value, true
}

// Set stores a value and restarts the TTL window.
func (s *Slot[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.setAt = s.clock.Now()
	s.valid = true
}

// Invalidate drops the cached value.
func (s *Slot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
}
