package mapcluster

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox is a map viewport. SwLat <= NeLat always holds after
// validation. Boxes crossing the ±180° antimeridian are not supported.
type BoundingBox struct {
	SwLat float64 `json:"swLat"`
	NeLat float64 `json:"neLat"`
	SwLng float64 `json:"swLng"`
	NeLng float64 `json:"neLng"`
}

// Contains reports whether the point lies inside the box, edges inclusive.
func (b BoundingBox) Contains(p Coordinates) bool {
	return p.Lat >= b.SwLat && p.Lat <= b.NeLat &&
		p.Lng >= b.SwLng && p.Lng <= b.NeLng
}

// ListingPoint is the minimal projection of a listing the map needs.
// Points are only built for listings that actually have coordinates;
// rows without them are dropped at the source adapter.
type ListingPoint struct {
	ID              string
	Position        Coordinates
	Price           float64
	HasPrice        bool
	Category        string
	TransactionType string // sale | rent
	Title           string
	Slug            string
	Source          string
}

type PriceStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Cluster is one aggregated map marker. Position is the arithmetic mean
// of member positions, not the grid cell center.
type Cluster struct {
	Position Coordinates `json:"position"`
	Count    int         `json:"count"`
	Bounds   BoundingBox `json:"bounds"`
	Prices   PriceStats  `json:"prices"`
}

// MapMarker is the non-clustered representation used by /api/map/listings.
type MapMarker struct {
	ID              string      `json:"id"`
	Position        Coordinates `json:"position"`
	Title           string      `json:"title"`
	Price           float64     `json:"price"`
	Type            string      `json:"type"`
	TransactionType string      `json:"transactionType"`
	Slug            string      `json:"slug"`
	Source          string      `json:"source"`
}

type MarkerStats struct {
	Total int `json:"total"`
	Sale  int `json:"sale"`
	Rent  int `json:"rent"`
}
