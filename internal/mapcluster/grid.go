package mapcluster

import "math"

// baseGridSize is the cell size in degrees at zoom 1. Each zoom step
// halves the cell: g = baseGridSize / 2^(zoom-1). At zoom 1 a whole
// region collapses into one cluster; at zoom 20 cells are ~1e-5 degrees
// so nearly every listing stands alone.
const baseGridSize = 5.12

// GridSizeForZoom derives the cell size from the zoom level.
func GridSizeForZoom(zoom int) float64 {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	return baseGridSize / math.Pow(2, float64(zoom-1))
}

// EffectiveGridSize resolves the cell size for a request: an explicit
// gridSize wins over the zoom-derived one.
func EffectiveGridSize(p *ClusterParams) float64 {
	if p.GridSize > 0 {
		return p.GridSize
	}
	return GridSizeForZoom(p.Zoom)
}

type cellKey struct {
	X int64
	Y int64
}

func keyFor(pos Coordinates, g float64) cellKey {
	return cellKey{
		X: int64(math.Floor(pos.Lat / g)),
		Y: int64(math.Floor(pos.Lng / g)),
	}
}

// BuildClusters buckets the points into a grid of cell size g and
// aggregates each non-empty cell. Output order is not guaranteed.
func BuildClusters(points []ListingPoint, g float64) []Cluster {
	cells := make(map[cellKey][]ListingPoint)
	for _, p := range points {
		k := keyFor(p.Position, g)
		cells[k] = append(cells[k], p)
	}

	clusters := make([]Cluster, 0, len(cells))
	for _, members := range cells {
		clusters = append(clusters, aggregate(members))
	}
	return clusters
}

func aggregate(members []ListingPoint) Cluster {
	first := members[0].Position

	c := Cluster{
		Count: len(members),
		Bounds: BoundingBox{
			SwLat: first.Lat,
			NeLat: first.Lat,
			SwLng: first.Lng,
			NeLng: first.Lng,
		},
	}

	var sumLat, sumLng float64
	var priceSum float64
	priced := 0

	for _, m := range members {
		sumLat += m.Position.Lat
		sumLng += m.Position.Lng

		c.Bounds.SwLat = math.Min(c.Bounds.SwLat, m.Position.Lat)
		c.Bounds.NeLat = math.Max(c.Bounds.NeLat, m.Position.Lat)
		c.Bounds.SwLng = math.Min(c.Bounds.SwLng, m.Position.Lng)
		c.Bounds.NeLng = math.Max(c.Bounds.NeLng, m.Position.Lng)

		if !m.HasPrice {
			continue
		}
		if priced == 0 {
			c.Prices.Min = m.Price
			c.Prices.Max = m.Price
		} else {
			c.Prices.Min = math.Min(c.Prices.Min, m.Price)
			c.Prices.Max = math.Max(c.Prices.Max, m.Price)
		}
		priceSum += m.Price
		priced++
	}

	n := float64(len(members))
	c.Position = Coordinates{Lat: sumLat / n, Lng: sumLng / n}

	// A cell whose members all lack a price reports zero-valued stats.
	if priced > 0 {
		c.Prices.Avg = priceSum / float64(priced)
	}

	return c
}
