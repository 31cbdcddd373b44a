// Package cache provides an in-process memo of aggregation results with lazy
// absolute expiry. Entries live until their expiry instant passes; there is no
// background sweep and no eviction, so distinct keys accumulate for the life
// of the process.
package cache

import (
	"sync"
	"time"

	"github.com/amokewustl/belong-chivent/internal/metrics"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

// DefaultTTL is how long an aggregation result stays servable.
const DefaultTTL = time.Hour

type entry struct {
	data   models.EventsResult
	expiry time.Time
}

// Cache memoizes aggregation results by request key.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a cache whose entries expire ttl after being stored.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get returns the stored result for key if it exists and has not expired.
func (c *Cache) Get(key string) (models.EventsResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !time.Now().Before(e.expiry) {
		return models.EventsResult{}, false
	}
	return e.data, true
}

// Set stores a result under key with a fresh expiry.
func (c *Cache) Set(key string, data models.EventsResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		data:   data,
		expiry: time.Now().Add(c.ttl),
	}
}

// GetOrCompute returns the cached result for key, or runs compute and stores
// its result on a miss. A failed compute stores nothing, so the next call
// recomputes.
//
// The lock is not held across compute: two concurrent callers that both miss
// will both compute, and the last writer wins. Aggregation is idempotent and
// side-effect free against upstream, so the duplicate work is accepted rather
// than coordinated away.
func (c *Cache) GetOrCompute(key string, compute func() (models.EventsResult, error)) (models.EventsResult, error) {
	if data, ok := c.Get(key); ok {
		metrics.CacheHits.Inc()
		return data, nil
	}
	metrics.CacheMisses.Inc()

	data, err := compute()
	if err != nil {
		return models.EventsResult{}, err
	}

	c.Set(key, data)
	return data, nil
}

// Len reports how many entries the cache holds, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
