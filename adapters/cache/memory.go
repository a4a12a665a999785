package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"offerforge/ports"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// Memory is an in-process CacheStore used in tests and when no redis
// URL is configured. Entries expire lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory builds an empty in-memory cache
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return ports.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return ports.ErrCacheMiss
	}

	if err := json.Unmarshal(entry.raw, dest); err != nil {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return ports.ErrCacheMiss
	}
	return nil
}

func (m *Memory) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var expires time.Time
	if ttl > 0 {
		expires = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{raw: raw, expiresAt: expires}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// SetClock overrides the time source for expiry tests
func (m *Memory) SetClock(now func() time.Time) {
	m.now = now
}

// Put injects a raw entry, for corrupt-value tests
func (m *Memory) Put(key string, raw []byte) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{raw: raw}
	m.mu.Unlock()
}
