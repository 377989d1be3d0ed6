package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert or update snapshot for (city, category)
func (r *Repository) UpsertSnapshot(
	ctx context.Context,
	s Snapshot,
) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO market_snapshots (
			city,
			category,
			avg_price,
			median_price,
			sample_size
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (city, category)
		DO UPDATE SET
			avg_price = EXCLUDED.avg_price,
			median_price = EXCLUDED.median_price,
			sample_size = EXCLUDED.sample_size,
			updated_at = now()
	`,
		s.City,
		s.Category,
		s.AvgPrice,
		s.MedianPrice,
		s.SampleSize,
	)

	return err
}

// Fetch snapshot for API
func (r *Repository) GetSnapshot(
	ctx context.Context,
	city string,
	category string,
) (*Snapshot, error) {

	var s Snapshot
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			city,
			category,
			avg_price,
			median_price,
			sample_size,
			created_at,
			updated_at
		FROM market_snapshots
		WHERE city = $1 AND category = $2
	`, city, category).Scan(
		&s.ID,
		&s.City,
		&s.Category,
		&s.AvgPrice,
		&s.MedianPrice,
		&s.SampleSize,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &s, nil
}
