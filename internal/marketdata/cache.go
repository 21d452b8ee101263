package marketdata

import (
	"sync"
	"time"
)

type cacheEntry struct {
	series  Series
	expires time.Time
}

// seriesCache is a TTL map for fetched history. A zero or negative TTL
// disables caching entirely.
type seriesCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newSeriesCache(ttl time.Duration) *seriesCache {
	return &seriesCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *seriesCache) get(key string) (Series, bool) {
	if c.ttl <= 0 {
		return Series{}, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Series{}, false
	}
	return entry.series, true
}

func (c *seriesCache) set(key string, series Series) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{series: series, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
