package mapcluster

import "testing"

func TestFilterPoints_BoundingBox(t *testing.T) {
	box := &BoundingBox{SwLat: 40.7, NeLat: 40.85, SwLng: 30.7, NeLng: 30.8}

	points := []ListingPoint{
		pricedPoint("inside", 40.79, 30.74, 1000000),
		pricedPoint("outside", 41.00, 31.00, 1000000),
	}

	result := FilterPoints(points, box, "", nil, nil)

	if len(result) != 1 {
		t.Fatalf("expected 1 point, got %d", len(result))
	}
	if result[0].ID != "inside" {
		t.Errorf("wrong point passed the filter: %s", result[0].ID)
	}
}

func TestFilterPoints_EdgesInclusive(t *testing.T) {
	box := &BoundingBox{SwLat: 40.7, NeLat: 40.85, SwLng: 30.7, NeLng: 30.8}

	points := []ListingPoint{
		pricedPoint("sw-corner", 40.7, 30.7, 1),
		pricedPoint("ne-corner", 40.85, 30.8, 1),
	}

	result := FilterPoints(points, box, "", nil, nil)

	if len(result) != 2 {
		t.Fatalf("box edges must be inclusive, got %d of 2", len(result))
	}
}

func TestFilterPoints_NilBoxMeansUnbounded(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("a", 40.79, 30.74, 1),
		pricedPoint("b", -33.86, 151.20, 1),
	}

	result := FilterPoints(points, nil, "", nil, nil)

	if len(result) != 2 {
		t.Fatalf("expected all points without a box, got %d", len(result))
	}
}

func TestFilterPoints_CategoryExactMatch(t *testing.T) {
	points := []ListingPoint{
		{ID: "a", Position: Coordinates{Lat: 40.79, Lng: 30.74}, Category: "konut"},
		{ID: "b", Position: Coordinates{Lat: 40.79, Lng: 30.74}, Category: "arsa"},
	}

	result := FilterPoints(points, nil, "konut", nil, nil)

	if len(result) != 1 || result[0].ID != "a" {
		t.Fatalf("expected only the konut listing, got %d", len(result))
	}
}

func TestFilterPoints_PriceRangeConjunctive(t *testing.T) {
	points := []ListingPoint{
		pricedPoint("cheap", 40.79, 30.74, 900000),
		pricedPoint("mid", 40.79, 30.74, 2000000),
		pricedPoint("expensive", 40.79, 30.74, 9000000),
	}

	min := 1000000.0
	max := 5000000.0

	result := FilterPoints(points, nil, "", &min, &max)

	if len(result) != 1 || result[0].ID != "mid" {
		t.Fatalf("expected only the mid-priced listing, got %d", len(result))
	}
}

func TestFilterPoints_InvertedPriceRangeYieldsEmpty(t *testing.T) {
	points := []ListingPoint{pricedPoint("a", 40.79, 30.74, 2000000)}

	min := 5000000.0
	max := 1000000.0

	// minPrice > maxPrice is a caller error, not a validation failure:
	// the conjunction simply matches nothing.
	result := FilterPoints(points, nil, "", &min, &max)

	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d", len(result))
	}
}
