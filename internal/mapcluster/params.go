package mapcluster

import (
	"errors"
	"net/url"
	"strconv"
)

// ErrInvalidParams covers every validation failure. Out-of-range values
// are rejected, never clamped: clamping would silently distort cluster
// boundaries.
var ErrInvalidParams = errors.New("Geçersiz parametreler")

const (
	DefaultZoom = 12
	MinZoom     = 1
	MaxZoom     = 20
	MaxLimit    = 5000
)

// ClusterParams is the validated query for /api/map/clusters.
type ClusterParams struct {
	Box      BoundingBox
	Zoom     int
	GridSize float64 // 0 = derive from Zoom
	Category string
	MinPrice *float64
	MaxPrice *float64
	NoCache  bool
}

// ListingParams is the validated query for /api/map/listings.
// The bounding box is optional: nil means no viewport bound.
type ListingParams struct {
	Box      *BoundingBox
	Category string
	MinPrice *float64
	MaxPrice *float64
	Limit    int // 0 = unlimited
	NoCache  bool
}

func parseFloat(q url.Values, key string) (float64, bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, ErrInvalidParams
	}
	return v, true, nil
}

func parseLat(q url.Values, key string) (float64, bool, error) {
	v, ok, err := parseFloat(q, key)
	if err != nil {
		return 0, false, err
	}
	if ok && (v < -90 || v > 90) {
		return 0, false, ErrInvalidParams
	}
	return v, ok, nil
}

func parseLng(q url.Values, key string) (float64, bool, error) {
	v, ok, err := parseFloat(q, key)
	if err != nil {
		return 0, false, err
	}
	if ok && (v < -180 || v > 180) {
		return 0, false, ErrInvalidParams
	}
	return v, ok, nil
}

func parsePriceBound(q url.Values, key string) (*float64, error) {
	v, ok, err := parseFloat(q, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if v < 0 {
		return nil, ErrInvalidParams
	}
	return &v, nil
}

func parseBool(q url.Values, key string) bool {
	raw := q.Get(key)
	return raw == "true" || raw == "1"
}

func parseBox(q url.Values) (*BoundingBox, error) {
	swLat, okSwLat, err := parseLat(q, "swLat")
	if err != nil {
		return nil, err
	}
	neLat, okNeLat, err := parseLat(q, "neLat")
	if err != nil {
		return nil, err
	}
	swLng, okSwLng, err := parseLng(q, "swLng")
	if err != nil {
		return nil, err
	}
	neLng, okNeLng, err := parseLng(q, "neLng")
	if err != nil {
		return nil, err
	}

	if !okSwLat && !okNeLat && !okSwLng && !okNeLng {
		return nil, nil
	}

	// Partial boxes are malformed.
	if !okSwLat || !okNeLat || !okSwLng || !okNeLng {
		return nil, ErrInvalidParams
	}

	if swLat > neLat {
		return nil, ErrInvalidParams
	}

	return &BoundingBox{SwLat: swLat, NeLat: neLat, SwLng: swLng, NeLng: neLng}, nil
}

// ParseClusterParams validates the /api/map/clusters query.
// The bounding box is required here.
func ParseClusterParams(q url.Values) (*ClusterParams, error) {
	box, err := parseBox(q)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrInvalidParams
	}

	p := &ClusterParams{
		Box:      *box,
		Zoom:     DefaultZoom,
		Category: q.Get("category"),
		NoCache:  parseBool(q, "noCache"),
	}

	if rawZoom := q.Get("zoom"); rawZoom != "" {
		zoom, err := strconv.Atoi(rawZoom)
		if err != nil || zoom < MinZoom || zoom > MaxZoom {
			return nil, ErrInvalidParams
		}
		p.Zoom = zoom
	}

	gridSize, ok, err := parseFloat(q, "gridSize")
	if err != nil {
		return nil, err
	}
	if ok {
		if gridSize <= 0 {
			return nil, ErrInvalidParams
		}
		p.GridSize = gridSize
	}

	if p.MinPrice, err = parsePriceBound(q, "minPrice"); err != nil {
		return nil, err
	}
	if p.MaxPrice, err = parsePriceBound(q, "maxPrice"); err != nil {
		return nil, err
	}

	return p, nil
}

// ParseListingParams validates the /api/map/listings query.
// All bounding box parameters are optional; absence means unfiltered.
func ParseListingParams(q url.Values) (*ListingParams, error) {
	box, err := parseBox(q)
	if err != nil {
		return nil, err
	}

	p := &ListingParams{
		Box:      box,
		Category: q.Get("category"),
		NoCache:  parseBool(q, "noCache"),
	}

	// zoom is accepted for symmetry with the clusters endpoint but has
	// no effect on an unclustered marker list.
	if rawZoom := q.Get("zoom"); rawZoom != "" {
		zoom, err := strconv.Atoi(rawZoom)
		if err != nil || zoom < MinZoom || zoom > MaxZoom {
			return nil, ErrInvalidParams
		}
	}

	if rawLimit := q.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 || limit > MaxLimit {
			return nil, ErrInvalidParams
		}
		p.Limit = limit
	}

	if p.MinPrice, err = parsePriceBound(q, "minPrice"); err != nil {
		return nil, err
	}
	if p.MaxPrice, err = parsePriceBound(q, "maxPrice"); err != nil {
		return nil, err
	}

	return p, nil
}
