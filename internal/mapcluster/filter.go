package mapcluster

// matches applies the conjunctive viewport/attribute filter. It is pure:
// the cache depends on identical inputs producing identical results.
func matches(p ListingPoint, box *BoundingBox, category string, minPrice, maxPrice *float64) bool {
	if box != nil && !box.Contains(p.Position) {
		return false
	}
	if category != "" && p.Category != category {
		return false
	}
	if minPrice != nil && p.Price < *minPrice {
		return false
	}
	if maxPrice != nil && p.Price > *maxPrice {
		return false
	}
	return true
}

// FilterPoints returns the points inside the viewport that pass the
// attribute filters. A nil box means no viewport bound.
func FilterPoints(points []ListingPoint, box *BoundingBox, category string, minPrice, maxPrice *float64) []ListingPoint {
	result := make([]ListingPoint, 0, len(points))
	for _, p := range points {
		if matches(p, box, category, minPrice, maxPrice) {
			result = append(result, p)
		}
	}
	return result
}
