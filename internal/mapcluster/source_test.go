package mapcluster

import (
	"context"
	"testing"

	"emlakk/internal/listing"
)

// stubListingRepo returns canned rows, including one without coordinates,
// to prove the adapter drops them instead of erroring.
type stubListingRepo struct {
	listing.Repository
	rows []*listing.Listing
}

func (s *stubListingRepo) ListMappable(ctx context.Context) ([]*listing.Listing, error) {
	return s.rows, nil
}

func TestListingSource_MapsRowsAndSkipsMissingCoordinates(t *testing.T) {
	repo := &stubListingRepo{rows: []*listing.Listing{
		{
			ID:              "l1",
			Title:           "Satılık Daire",
			Slug:            "satilik-daire",
			Category:        "konut",
			TransactionType: "sale",
			Price:           4500000,
			Source:          "office",
			Coordinates:     &listing.Coordinates{Lat: 40.79, Lng: 30.74},
		},
		{
			ID:              "l2",
			Title:           "Koordinatsız İlan",
			Category:        "konut",
			TransactionType: "sale",
			Price:           2000000,
			Coordinates:     nil,
		},
	}}

	source := NewListingSource(repo)

	points, err := source.FetchPoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}

	p := points[0]
	if p.ID != "l1" {
		t.Errorf("unexpected point: %s", p.ID)
	}
	if p.Position.Lat != 40.79 || p.Position.Lng != 30.74 {
		t.Errorf("unexpected position: %+v", p.Position)
	}
	if !p.HasPrice {
		t.Error("priced listing must be marked HasPrice")
	}
	if p.Category != "konut" {
		t.Errorf("unexpected category: %s", p.Category)
	}
}

func TestListingSource_ZeroPriceMeansNoPrice(t *testing.T) {
	repo := &stubListingRepo{rows: []*listing.Listing{
		{
			ID:          "l3",
			Title:       "Fiyat Sorunuz",
			Category:    "arsa",
			Price:       0,
			Coordinates: &listing.Coordinates{Lat: 40.70, Lng: 30.70},
		},
	}}

	points, err := NewListingSource(repo).FetchPoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].HasPrice {
		t.Error("zero price must be treated as absent for stats")
	}
}
