package cache

import (
	"context"
	"sync"
	"time"
)

// Cacher is the byte-level caching interface used by the request client.
// The sqlite store provides the persistent implementation.
type Cacher interface {
	GetCache(ctx context.Context, key string) ([]byte, bool)
	SetCache(ctx context.Context, key string, val []byte) error
}

// Memory is an in-memory Cacher with a single TTL, used when no database is
// configured and in tests.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memEntry
	ttl     time.Duration
}

type memEntry struct {
	val       []byte
	createdAt time.Time
}

// NewMemory creates an in-memory byte cache. ttl <= 0 means entries never expire.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{entries: make(map[string]memEntry), ttl: ttl}
}

func (m *Memory) GetCache(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && time.Since(e.createdAt) > m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	return e.val, true
}

func (m *Memory) SetCache(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memEntry{val: val, createdAt: time.Now()}
	return nil
}

// Null is a Cacher that never hits. Used when caching is disabled.
type Null struct{}

func (Null) GetCache(context.Context, string) ([]byte, bool) { return nil, false }
func (Null) SetCache(context.Context, string, []byte) error  { return nil }
