package mapcluster

import (
	"context"

	"emlakk/internal/listing"
)

// PointSource supplies the candidate points for one request.
// Implementations return a fresh snapshot; points are never mutated.
type PointSource interface {
	FetchPoints(ctx context.Context) ([]ListingPoint, error)
}

// ListingSource adapts the listing repository to PointSource, isolating
// the clustering core from the listing schema. Rows without coordinates
// are dropped here, silently.
type ListingSource struct {
	repo listing.Repository
}

func NewListingSource(repo listing.Repository) *ListingSource {
	return &ListingSource{repo: repo}
}

func (s *ListingSource) FetchPoints(ctx context.Context) ([]ListingPoint, error) {
	rows, err := s.repo.ListMappable(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]ListingPoint, 0, len(rows))
	for _, l := range rows {
		if l.Coordinates == nil {
			continue
		}
		points = append(points, ListingPoint{
			ID:              l.ID,
			Position:        Coordinates{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng},
			Price:           l.Price,
			HasPrice:        l.Price > 0,
			Category:        l.Category,
			TransactionType: l.TransactionType,
			Title:           l.Title,
			Slug:            l.Slug,
			Source:          l.Source,
		})
	}

	return points, nil
}
