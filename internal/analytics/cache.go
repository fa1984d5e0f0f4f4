package analytics

import (
	"sync"
	"time"
)

// statsCache holds the last aggregation until it expires or a call is recorded
type statsCache struct {
	mu          sync.RWMutex
	stats       []Stats
	lastRefresh time.Time
	valid       bool
	ttl         time.Duration
	// version advances on every invalidate; set drops aggregations read
	// under an older version
	version uint64
}

func newStatsCache(ttl time.Duration) *statsCache {
	return &statsCache{ttl: ttl}
}

// get returns the cached stats, or the version a fresh aggregation must
// pass to set
func (c *statsCache) get() ([]Stats, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid || time.Since(c.lastRefresh) > c.ttl {
		return nil, c.version, false
	}
	return c.stats, c.version, true
}

// set stores stats aggregated at version, unless a call was recorded since
func (c *statsCache) set(stats []Stats, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.version {
		return
	}
	c.stats = stats
	c.lastRefresh = time.Now()
	c.valid = true
}

func (c *statsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats = nil
	c.valid = false
	c.version++
}
