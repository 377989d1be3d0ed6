package listing

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Listing, error)
	GetBySlug(ctx context.Context, slug string) (*Listing, error)
	List(ctx context.Context, filter ListFilter) ([]*Listing, error)
	ListMappable(ctx context.Context) ([]*Listing, error)
	SaveImages(ctx context.Context, id string, images []string) error
}
