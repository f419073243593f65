// SPDX-License-Identifier: MIT

// Package cart2sph: explicit memoization over CoeffsForL.
//
// The transform functions are referentially transparent, so caching is a
// legitimate optimization — but it is deliberately NOT baked into them.
// Cache is the opt-in wrapper: one instance per option set, safe for
// concurrent use, deterministic hit-or-compute semantics.

package cart2sph

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Cache memoizes CoeffsForL results per l for one fixed option set.
// The zero value is not usable; construct via NewCache.
//
// Returned matrices are shared across callers: treat them as read-only, or
// copy with mat.DenseCopyOf before mutating.
type Cache struct {
	mu   sync.RWMutex
	opts []Option
	byL  map[int]*mat.Dense
}

// NewCache returns an empty cache whose entries are built with the given
// options. The option set is fixed at construction so every cached matrix
// is consistent with every other.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		opts: opts,
		byL:  make(map[int]*mat.Dense),
	}
}

// CoeffsForL returns the cached matrix for l, computing and storing it on
// first use. Concurrent callers may race to compute the same l; both
// results are identical (pure function), so last-write-wins is harmless.
func (c *Cache) CoeffsForL(l int) (*mat.Dense, error) {
	c.mu.RLock()
	cached, ok := c.byL[l]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// Compute outside the lock: builds for large l are not cheap and must
	// not serialize unrelated lookups.
	built, err := CoeffsForL(l, c.opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byL[l] = built
	c.mu.Unlock()

	return built, nil
}

// Len reports how many shells are currently memoized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byL)
}

// Reset drops every memoized matrix, keeping the option set.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byL = make(map[int]*mat.Dense)
}
