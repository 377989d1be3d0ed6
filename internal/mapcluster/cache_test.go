package mapcluster

import (
	"testing"
	"time"
)

func TestResultCache_RoundTrip(t *testing.T) {
	cache := newResultCache(30 * time.Second)

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	cache.Set("key", "payload")

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.(string) != "payload" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestResultCache_TTLExpiry(t *testing.T) {
	cache := newResultCache(30 * time.Second)

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("key", "payload")

	current = current.Add(29 * time.Second)
	if _, ok := cache.Get("key"); !ok {
		t.Fatal("entry must still be fresh before the TTL")
	}

	current = current.Add(2 * time.Second)
	if _, ok := cache.Get("key"); ok {
		t.Fatal("entry older than the TTL must be treated as absent")
	}

	// Lazy eviction removed the stale entry.
	if len(cache.entries) != 0 {
		t.Errorf("expected stale entry dropped, have %d entries", len(cache.entries))
	}
}

func TestCacheKey_LosslessFloats(t *testing.T) {
	base := &ClusterParams{
		Box:  BoundingBox{SwLat: 40.7, NeLat: 40.85, SwLng: 30.7, NeLng: 30.8},
		Zoom: 14,
	}

	// A bbox differing far below any printf rounding step must still
	// produce its own key.
	shifted := *base
	shifted.Box.SwLat = base.Box.SwLat + 1e-9

	if clusterCacheKey(base) == clusterCacheKey(&shifted) {
		t.Error("distinct bounding boxes must not share a cache key")
	}

	finePrice := 1_000_000.000001
	coarsePrice := 1_000_000.0
	p1 := *base
	p1.MinPrice = &finePrice
	p2 := *base
	p2.MinPrice = &coarsePrice

	if clusterCacheKey(&p1) == clusterCacheKey(&p2) {
		t.Error("distinct price bounds must not share a cache key")
	}
}

func TestResultCache_OverwriteResetsAge(t *testing.T) {
	cache := newResultCache(30 * time.Second)

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("key", "old")
	current = current.Add(25 * time.Second)
	cache.Set("key", "new")
	current = current.Add(10 * time.Second)

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("overwrite must reset the entry age")
	}
	if got.(string) != "new" {
		t.Errorf("expected overwritten payload, got %v", got)
	}
}
