package mapcluster

import (
	"math"
	"sort"
	"testing"
)

func pricedPoint(id string, lat, lng, price float64) ListingPoint {
	return ListingPoint{
		ID:       id,
		Position: Coordinates{Lat: lat, Lng: lng},
		Price:    price,
		HasPrice: price > 0,
	}
}

func sortClusters(clusters []Cluster) {
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Position.Lat != clusters[j].Position.Lat {
			return clusters[i].Position.Lat < clusters[j].Position.Lat
		}
		return clusters[i].Position.Lng < clusters[j].Position.Lng
	})
}

func TestBuildClusters_MergesSameCell(t *testing.T) {
	// Both points sit inside the [40.7, 40.8) x [30.7, 30.8) cell.
	points := []ListingPoint{
		pricedPoint("a", 40.72, 30.74, 5000000),
		pricedPoint("b", 40.78, 30.76, 7000000),
	}

	clusters := BuildClusters(points, 0.1)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}

	c := clusters[0]
	if c.Count != 2 {
		t.Errorf("expected count 2, got %d", c.Count)
	}

	// Position is the mean of members, not the cell center.
	if math.Abs(c.Position.Lat-40.75) > 1e-9 {
		t.Errorf("expected mean lat 40.75, got %f", c.Position.Lat)
	}
	if math.Abs(c.Position.Lng-30.75) > 1e-9 {
		t.Errorf("expected mean lng 30.75, got %f", c.Position.Lng)
	}

	if c.Bounds.SwLat != 40.72 || c.Bounds.NeLat != 40.78 {
		t.Errorf("unexpected lat bounds: %+v", c.Bounds)
	}
	if c.Bounds.SwLng != 30.74 || c.Bounds.NeLng != 30.76 {
		t.Errorf("unexpected lng bounds: %+v", c.Bounds)
	}
}

func TestBuildClusters_SplitsDistantPoints(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("a", 40.72, 30.74, 5000000),
		pricedPoint("b", 40.88, 30.74, 7000000),
	}

	clusters := BuildClusters(points, 0.1)

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
}

func TestBuildClusters_PriceStats(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("a", 40.71, 30.71, 5000000),
		pricedPoint("b", 40.72, 30.72, 7500000),
		pricedPoint("c", 40.73, 30.73, 10000000),
	}

	clusters := BuildClusters(points, 0.1)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}

	prices := clusters[0].Prices
	if prices.Min != 5000000 {
		t.Errorf("expected min 5000000, got %f", prices.Min)
	}
	if prices.Max != 10000000 {
		t.Errorf("expected max 10000000, got %f", prices.Max)
	}
	if math.Abs(prices.Avg-7500000) > 1e-6 {
		t.Errorf("expected avg 7500000, got %f", prices.Avg)
	}
}

func TestBuildClusters_PricelessMembersExcludedFromStats(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("a", 40.71, 30.71, 4000000),
		{ID: "b", Position: Coordinates{Lat: 40.72, Lng: 30.72}}, // no price
	}

	clusters := BuildClusters(points, 0.1)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}

	c := clusters[0]
	if c.Count != 2 {
		t.Errorf("expected count 2, got %d", c.Count)
	}
	if c.Prices.Min != 4000000 || c.Prices.Max != 4000000 || c.Prices.Avg != 4000000 {
		t.Errorf("priceless member must not distort stats: %+v", c.Prices)
	}
}

func TestBuildClusters_AllPricelessReportsZeroStats(t *testing.T) {
	points := []ListingPoint{
		{ID: "a", Position: Coordinates{Lat: 40.71, Lng: 30.71}},
		{ID: "b", Position: Coordinates{Lat: 40.72, Lng: 30.72}},
	}

	clusters := BuildClusters(points, 0.1)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}

	prices := clusters[0].Prices
	if prices.Min != 0 || prices.Max != 0 || prices.Avg != 0 {
		t.Errorf("expected zero price stats, got %+v", prices)
	}
}

func TestBuildClusters_SingleListingDegenerateBounds(t *testing.T) {
	points := []ListingPoint{pricedPoint("a", 40.79, 30.74, 3000000)}

	clusters := BuildClusters(points, 0.1)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}

	c := clusters[0]
	if c.Count != 1 {
		t.Errorf("expected count 1, got %d", c.Count)
	}

	b := c.Bounds
	if b.SwLat != 40.79 || b.NeLat != 40.79 || b.SwLng != 30.74 || b.NeLng != 30.74 {
		t.Errorf("expected degenerate point bounds, got %+v", b)
	}
}

func TestBuildClusters_EmptyInput(t *testing.T) {
	clusters := BuildClusters(nil, 0.1)
	if len(clusters) != 0 {
		t.Fatalf("expected empty cluster list, got %d", len(clusters))
	}
}

func TestGridSizeForZoom_MonotonicallyDecreasing(t *testing.T) {
	prev := GridSizeForZoom(MinZoom)
	for zoom := MinZoom + 1; zoom <= MaxZoom; zoom++ {
		g := GridSizeForZoom(zoom)
		if g >= prev {
			t.Fatalf("grid size must shrink with zoom: zoom=%d g=%f prev=%f", zoom, g, prev)
		}
		prev = g
	}
}

func TestZoomMonotonicity_ClusterCountNeverDecreases(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("a", 40.71, 30.71, 1000000),
		pricedPoint("b", 40.72, 30.72, 2000000),
		pricedPoint("c", 40.74, 30.79, 3000000),
		pricedPoint("d", 40.81, 30.71, 4000000),
		pricedPoint("e", 40.95, 30.95, 5000000),
		pricedPoint("f", 41.20, 31.20, 6000000),
	}

	prevCount := 0
	for zoom := MinZoom; zoom <= MaxZoom; zoom++ {
		clusters := BuildClusters(points, GridSizeForZoom(zoom))
		if len(clusters) < prevCount {
			t.Fatalf("cluster count shrank while zooming in: zoom=%d count=%d prev=%d",
				zoom, len(clusters), prevCount)
		}
		prevCount = len(clusters)
	}

	// At maximum zoom every listing stands alone.
	finest := BuildClusters(points, GridSizeForZoom(MaxZoom))
	if len(finest) != len(points) {
		t.Errorf("expected %d singleton clusters at max zoom, got %d", len(points), len(finest))
	}
}

func TestBuildClusters_Idempotent(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("a", 40.71, 30.71, 1000000),
		pricedPoint("b", 40.72, 30.72, 2000000),
		pricedPoint("c", 40.91, 30.91, 3000000),
	}

	first := BuildClusters(points, 0.1)
	second := BuildClusters(points, 0.1)

	if len(first) != len(second) {
		t.Fatalf("cluster counts differ: %d vs %d", len(first), len(second))
	}

	sortClusters(first)
	sortClusters(second)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cluster %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEffectiveGridSize_OverrideWins(t *testing.T) {
	p := &ClusterParams{Zoom: 10, GridSize: 0.25}
	if g := EffectiveGridSize(p); g != 0.25 {
		t.Errorf("explicit gridSize must win, got %f", g)
	}

	p = &ClusterParams{Zoom: 10}
	if g := EffectiveGridSize(p); g != GridSizeForZoom(10) {
		t.Errorf("expected zoom-derived size, got %f", g)
	}
}
