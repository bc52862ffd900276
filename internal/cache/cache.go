// Package cache provides a generic in-memory key/value cache with
// per-entry absolute expiry and lazy eviction (no background sweeper).
package cache

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidTTL is returned by New when the configured TTL is not positive.
var ErrInvalidTTL = errors.New("cache: ttl must be positive")

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache maps string keys to values of type V. Every entry carries an
// absolute expiry stamped at insertion time. Safe for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache whose entries live for ttl after each Set.
func New[V any](ttl time.Duration) (*Cache[V], error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// SetNowFunc overrides the clock. Tests only.
func (c *Cache[V]) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Set stores value under key with expiry now+ttl, replacing any existing entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Get returns the value stored under key if it has not expired.
// An expired entry is deleted on this read; there is no scheduled sweep,
// so an entry that is never read again lingers until Get or Clear touches it.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Clear removes all entries. Idempotent.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[V])
}

// Len returns the number of physically stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
