// Package service contains the business logic for the box picker service.
package service

import (
	"container/list"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/metrics"
	"github.com/packlane/box-picker/internal/service/cache"
)

// cacheKey builds a deterministic fingerprint of an item list. Item order is
// part of the key: output order within each box depends on the input order.
func cacheKey(items []model.Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.SKU)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(it.Length))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(it.Width))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(it.Height))
		b.WriteByte('|')
	}
	return b.String()
}

// cacheEntry is one cached packing result with its expiration.
type cacheEntry struct {
	key       string
	value     model.PackingResult
	expiresAt time.Time
}

// ttlCache is a thread-safe LRU cache with TTL expiration, implementing the
// cache.Cache interface. Recency is tracked with a list whose elements hold
// *cacheEntry values; the map indexes list elements by key.
type ttlCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	order    *list.List
	stopCh   chan struct{}

	hits      int64
	misses    int64
	evictions int64
}

// newTTLCache creates an LRU cache with the given capacity and TTL and starts
// a background goroutine that sweeps expired entries.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get retrieves a value if it exists and has not expired.
func (c *ttlCache) Get(key string) (model.PackingResult, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.PackingResult{}, false
	}

	entry := elem.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if _, present := c.items[key]; present {
			c.evict(elem)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.PackingResult{}, false
	}

	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a value with the configured TTL, evicting the least recently
// used entry when the cache is full.
func (c *ttlCache) Set(key string, value model.PackingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	if len(c.items) >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.evict(oldest)
			atomic.AddInt64(&c.evictions, 1)
			metrics.RecordCacheOperation("set", "evicted")
		}
	}

	elem := c.order.PushFront(&cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.items[key] = elem
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// Invalidate removes a key from the cache.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.evict(elem)
	}
}

// Clear removes all entries from the cache.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop shuts down the sweep goroutine.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics returns current cache performance counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// sweepLoop periodically removes expired entries. Sweeps run at the TTL
// interval but never more often than once a minute.
func (c *ttlCache) sweepLoop() {
	interval := c.ttl
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) sweep() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	var next *list.Element
	for elem := c.order.Front(); elem != nil; elem = next {
		next = elem.Next()
		if now.After(elem.Value.(*cacheEntry).expiresAt) {
			c.evict(elem)
		}
	}
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// evict removes an element from the list and the index.
// Caller must hold the write lock.
func (c *ttlCache) evict(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).key)
}
