package listing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and the importer dry-run mode.
type InMemoryRepository struct {
	mu       sync.Mutex
	listings map[string]*Listing
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		listings: make(map[string]*Listing),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt

	for _, existing := range r.listings {
		if existing.Slug == l.Slug {
			return errors.New("slug already exists")
		}
	}

	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[l.ID]; !ok {
		return errors.New("listing not found")
	}
	l.UpdatedAt = time.Now()
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return errors.New("listing not found")
	}
	delete(r.listings, id)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return nil, errors.New("listing not found")
	}
	cp := *l
	return &cp, nil
}

func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (*Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.listings {
		if l.Slug == slug {
			cp := *l
			return &cp, nil
		}
	}
	return nil, errors.New("listing not found")
}

func (r *InMemoryRepository) List(ctx context.Context, filter ListFilter) ([]*Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Listing
	for _, l := range r.listings {
		if filter.City != "" && l.City != filter.City {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.TransactionType != "" && l.TransactionType != filter.TransactionType {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		cp := *l
		result = append(result, &cp)
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}
	}
	return result, nil
}

func (r *InMemoryRepository) ListMappable(ctx context.Context) ([]*Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Listing
	for _, l := range r.listings {
		if l.Status == "active" && l.Coordinates != nil {
			cp := *l
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) SaveImages(ctx context.Context, id string, images []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return errors.New("listing not found")
	}
	l.Images = append(l.Images, images...)
	return nil
}
