// Package projcache caches resolved weekly projections so repeated tool
// calls within the same refresh window don't rescore the whole pool.
package projcache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"lineup-advisor-mcp/internal/model"
)

// DefaultTTL is used when the league config doesn't set one.
const DefaultTTL = 30 * time.Minute

// Key names one cached projection set.
func Key(season, week int) string {
	return fmt.Sprintf("projections:%d:%d", season, week)
}

type entry struct {
	projections []model.Projection
	storedAt    time.Time
}

// Cache is an in-process projection cache. Reads take an atomic snapshot of
// the whole map and never block; writes copy the map under a mutex.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	snap atomic.Pointer[map[string]entry]
}

// New builds a cache with the given TTL; zero or negative falls back to
// DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{ttl: ttl, now: time.Now}
	empty := map[string]entry{}
	c.snap.Store(&empty)
	return c
}

// Get returns the cached projections for the key, or false when absent or
// older than the TTL. Stale entries stay in the map until overwritten.
func (c *Cache) Get(key string) ([]model.Projection, bool) {
	e, ok := (*c.snap.Load())[key]
	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.projections, true
}

// Put stores a projection set under the key.
func (c *Cache) Put(key string, projections []model.Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := *c.snap.Load()
	next := make(map[string]entry, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[key] = entry{projections: projections, storedAt: c.now()}
	c.snap.Store(&next)
}

// GetOrFetch returns the cached set or fills the cache from fetch. A fetch
// error is returned without caching, so the next call retries.
func (c *Cache) GetOrFetch(key string, fetch func() ([]model.Projection, error)) ([]model.Projection, error) {
	if p, ok := c.Get(key); ok {
		return p, nil
	}
	p, err := fetch()
	if err != nil {
		return nil, err
	}
	c.Put(key, p)
	return p, nil
}
