package mapcluster

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// DefaultTTL bounds staleness: long enough to absorb rapid pan/zoom
// repeats, short enough that new listings show up promptly.
const DefaultTTL = 30 * time.Second

type cacheEntry struct {
	payload   any
	createdAt time.Time
}

// resultCache memoizes computed responses per canonical query key.
// Expiry is lazy: stale entries are dropped on read, never swept.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *resultCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.createdAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.payload, true
}

func (c *resultCache) Set(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{payload: payload, createdAt: c.now()}
}

// fmtFloat is lossless: two parameter sets differing in any bit must
// not share a cache entry, so no rounding is allowed here.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fmtPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmtFloat(*p)
}

func fmtBox(b BoundingBox) string {
	return fmtFloat(b.SwLat) + "|" + fmtFloat(b.NeLat) + "|" +
		fmtFloat(b.SwLng) + "|" + fmtFloat(b.NeLng)
}

// clusterCacheKey serializes every validated parameter in a fixed order,
// so two semantically identical queries always hit the same entry.
func clusterCacheKey(p *ClusterParams) string {
	return fmt.Sprintf("clusters|%s|%d|%s|%s|%s|%s",
		fmtBox(p.Box), p.Zoom, fmtFloat(p.GridSize), p.Category,
		fmtPrice(p.MinPrice), fmtPrice(p.MaxPrice),
	)
}

func listingCacheKey(p *ListingParams) string {
	box := "-"
	if p.Box != nil {
		box = fmtBox(*p.Box)
	}
	return fmt.Sprintf("listings|%s|%s|%s|%s|%d",
		box, p.Category, fmtPrice(p.MinPrice), fmtPrice(p.MaxPrice), p.Limit,
	)
}
