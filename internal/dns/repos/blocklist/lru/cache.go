package lru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/domcheck/internal/dns/domain"
	"github.com/haukened/domcheck/internal/dns/repos/blocklist"
)

// newLRU is swapped in tests to simulate construction failures.
var newLRU = func(size int, onEvict func(string, domain.Decision)) (*lru.Cache[string, domain.Decision], error) {
	return lru.NewWithEvict(size, onEvict)
}

// decisionCache is an LRU-backed implementation of blocklist.DecisionCache.
// It tracks basic metrics: hits, misses, and evictions.
type decisionCache struct {
	lru       *lru.Cache[string, domain.Decision]
	capacity  int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// disabledCache is a no-op DecisionCache used when size <= 0.
type disabledCache struct{}

// New creates a new DecisionCache with the given capacity. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no metrics.
func New(size int) (blocklist.DecisionCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}
	dc := &decisionCache{capacity: size}
	// Observe evictions, including Purge-induced ones.
	cache, err := newLRU(size, func(string, domain.Decision) {
		dc.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	dc.lru = cache
	return dc, nil
}

// Get looks up a decision by canonical key. When found, increments hits; otherwise increments misses.
func (c *decisionCache) Get(key string) (domain.Decision, bool) {
	if val, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return val, true
	}
	c.misses.Add(1)
	return domain.Decision{}, false
}

// Put stores a decision by canonical key.
func (c *decisionCache) Put(key string, d domain.Decision) {
	c.lru.Add(key, d)
}

// Len returns the number of entries in the cache.
func (c *decisionCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *decisionCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *decisionCache) Stats() blocklist.CacheStats {
	return blocklist.CacheStats{
		Capacity:  c.capacity,
		Size:      c.lru.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// disabledCache implementation

func (d *disabledCache) Get(string) (domain.Decision, bool) { return domain.Decision{}, false }
func (d *disabledCache) Put(string, domain.Decision)        {}
func (d *disabledCache) Len() int                           { return 0 }
func (d *disabledCache) Purge()                             {}
func (d *disabledCache) Stats() blocklist.CacheStats        { return blocklist.CacheStats{} }

var _ blocklist.DecisionCache = (*decisionCache)(nil)
var _ blocklist.DecisionCache = (*disabledCache)(nil)
