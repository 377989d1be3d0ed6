package core

import "context"

// ListingSummary is the read-only projection shared across modules.
type ListingSummary struct {
	ID              string
	Title           string
	City            string
	District        string
	Category        string
	TransactionType string
	Price           float64
	Rooms           string
	Description     string
}

// ListingReader lets dependent modules read listings
// without importing the listing package directly.
type ListingReader interface {
	GetSummary(ctx context.Context, listingID string) (*ListingSummary, error)
}
