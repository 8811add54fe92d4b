// Package cache provides a small TTL cache with an injected clock, so
// expiry is testable and no freshness state hides in package-level
// closures.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func RealClock() Clock {
	return realClock{}
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTL[V any] struct {
	mu      sync.Mutex
	clock   Clock
	ttl     time.Duration
	entries map[string]entry[V]
}

func NewTTL[V any](clock Clock, ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		clock:   clock,
		ttl:     ttl,
		entries: map[string]entry[V]{},
	}
}

// Get returns the cached value for key, or false when absent or
// expired. Expired entries are dropped on read.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTL[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}
