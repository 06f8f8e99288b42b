// Package cache provides an in-memory implementation of ports.Cache.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
)

// entry is a stored value with its expiry instant.
type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Memory is a thread-safe in-memory cache with per-entry TTL.
// Expired entries are dropped lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   clock.Clock
}

// NewMemory creates an empty in-memory cache. A nil clock defaults to
// the system clock.
func NewMemory(clk clock.Clock) *Memory {
	if clk == nil {
		clk = clock.System{}
	}

	return &Memory{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

// Get retrieves a value. Returns domain.ErrNotFound for missing or
// expired keys. Implements ports.Cache.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.NewNotFoundError("cache entry", key)
	}

	if !e.expiresAt.IsZero() && !m.clock.Now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()

		return nil, domain.NewNotFoundError("cache entry", key)
	}

	value := make([]byte, len(e.value))
	copy(value, e.value)

	return value, nil
}

// Set stores a value with the given TTL. A TTL of 0 means no expiry.
// Implements ports.Cache.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = m.clock.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()

	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
// Implements ports.Cache.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

// Len reports the number of stored entries, including not-yet-evicted
// expired ones. Used by tests and status reporting.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
