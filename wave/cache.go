// SPDX-License-Identifier: MIT
// Package: timewave/wave
//
// cache.go — memoized Recursive results keyed by (iterations, compression).
//
// Concurrency:
//   - Reads take the read lock; a miss computes outside any lock and then
//     stores under the write lock. Two concurrent misses for the same key
//     both compute; the results are identical so the last write is harmless.
//   - Stored waves are never handed out; Get returns clones.

package wave

import "sync"

// Cache memoizes Recursive. The zero value is not usable; call NewCache.
type Cache struct {
	mu     sync.RWMutex
	waves  map[config]Wave
	hits   int
	misses int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{waves: make(map[config]Wave)}
}

// Get returns Recursive(opts...), computing it at most once per key
// (barring concurrent first calls). Errors are not cached.
func (c *Cache) Get(opts ...Option) (Wave, error) {
	cfg := newConfig(opts...)

	c.mu.RLock()
	w, ok := c.waves[cfg]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()

		return w.Clone(), nil
	}

	w, _, err := generate(cfg, false)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.waves[cfg] = w
	c.misses++
	c.mu.Unlock()

	return w.Clone(), nil
}

// Len reports the number of memoized waves.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.waves)
}

// Stats reports cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits, c.misses
}
