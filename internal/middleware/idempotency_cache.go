// Package middleware provides HTTP middleware components for the box picker service.
package middleware

import (
	"sync"
	"time"
)

// idempotencyCache holds recorded responses keyed by request fingerprint.
// Entries expire after the TTL; a minutely sweeper reclaims them.
type idempotencyCache struct {
	mu    sync.RWMutex
	items map[string]*cachedResponse
	ttl   time.Duration
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[string]*cachedResponse),
		ttl:   ttl,
	}
	go c.sweepLoop()
	return c
}

// Get returns the recorded response for key, if it exists and is fresh.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set records a response under key, restarting its TTL.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = time.Now()
	c.items[key] = resp
}

func (c *idempotencyCache) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup drops every entry past its TTL.
func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.ttl)
	for key, resp := range c.items {
		if resp.Timestamp.Before(cutoff) {
			delete(c.items, key)
		}
	}
}
