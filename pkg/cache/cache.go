// Package cache provides an in-memory, TTL-bounded memoization store with an
// injected clock, plus the byte-level Cacher interface used by the HTTP layer.
package cache

import (
	"context"
	"sync"
	"time"
)

// entry holds one cached value with its creation time and lifetime.
type entry[T any] struct {
	value     T
	createdAt time.Time
	ttl       time.Duration
}

// Store is a typed, thread-safe TTL cache. Two lifetimes coexist: a long TTL
// for confident entries and a short TTL for low-confidence ones; both share
// the same eviction sweep. A read that observes an expired entry behaves as
// a miss and evicts it.
type Store[T any] struct {
	mu       sync.Mutex
	entries  map[string]entry[T]
	longTTL  time.Duration
	shortTTL time.Duration
	now      func() time.Time
}

// New creates a Store. now may be nil, in which case time.Now is used;
// tests inject a fake clock.
func New[T any](longTTL, shortTTL time.Duration, now func() time.Time) *Store[T] {
	if now == nil {
		now = time.Now
	}
	return &Store[T]{
		entries:  make(map[string]entry[T]),
		longTTL:  longTTL,
		shortTTL: shortTTL,
		now:      now,
	}
}

// Get returns the cached value for key. An entry past its TTL is evicted and
// reported as a miss.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if s.now().Sub(e.createdAt) > e.ttl {
		delete(s.entries, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Put stores a value under the long (confident) TTL.
// Writes are last-writer-wins and idempotent.
func (s *Store[T]) Put(key string, value T) {
	s.put(key, value, s.longTTL)
}

// PutShort stores a value under the short (low-confidence) TTL.
func (s *Store[T]) PutShort(key string, value T) {
	s.put(key, value, s.shortTTL)
}

func (s *Store[T]) put(key string, value T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[T]{value: value, createdAt: s.now(), ttl: ttl}
}

// Sweep evicts all expired entries and returns how many were removed.
// Safe to run concurrently with reads: it only removes entries past TTL.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.createdAt) > e.ttl {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on a fixed interval until ctx is cancelled.
func (s *Store[T]) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Len returns the number of entries, including any not yet swept.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
