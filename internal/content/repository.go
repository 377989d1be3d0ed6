package content

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, gc *GeneratedContent) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO generated_contents (listing_id, kind, status)
		VALUES ($1, $2, 'PENDING')
		RETURNING id, status, created_at, updated_at
	`,
		gc.ListingID,
		gc.Kind,
	).Scan(&gc.ID, &gc.Status, &gc.CreatedAt, &gc.UpdatedAt)
}

// ClaimPending atomically claims the next PENDING job.
// Returns nil when no jobs are available (NOT an error).
func (r *Repository) ClaimPending(ctx context.Context) (*GeneratedContent, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var gc GeneratedContent

	err = tx.QueryRow(ctx, `
		SELECT id, listing_id, kind, status, created_at, updated_at
		FROM generated_contents
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&gc.ID, &gc.ListingID, &gc.Kind, &gc.Status, &gc.CreatedAt, &gc.UpdatedAt)
	if err != nil {
		// An empty queue is NOT an error; anything else must surface
		// so the worker does not idle silently through an outage.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE generated_contents
		SET status = 'PROCESSING', updated_at = now()
		WHERE id = $1
	`, gc.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *Repository) SaveBody(ctx context.Context, id int, body json.RawMessage) error {
	_, err := r.db.Exec(ctx, `
		UPDATE generated_contents
		SET body = $1,
		    status = 'GENERATED',
		    error = NULL,
		    updated_at = now()
		WHERE id = $2
	`, body, id)

	return err
}

func (r *Repository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE generated_contents
		SET status = 'FAILED',
		    error = $1,
		    updated_at = now()
		WHERE id = $2
	`, reason, id)

	return err
}

func (r *Repository) GetByID(ctx context.Context, id int) (*GeneratedContent, error) {
	var gc GeneratedContent

	err := r.db.QueryRow(ctx, `
		SELECT id, listing_id, kind, status, body, error, created_at, updated_at
		FROM generated_contents
		WHERE id = $1
	`, id).Scan(
		&gc.ID,
		&gc.ListingID,
		&gc.Kind,
		&gc.Status,
		&gc.Body,
		&gc.Error,
		&gc.CreatedAt,
		&gc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *Repository) ListByListing(ctx context.Context, listingID string) ([]*GeneratedContent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, listing_id, kind, status, body, error, created_at, updated_at
		FROM generated_contents
		WHERE listing_id = $1
		ORDER BY created_at DESC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []*GeneratedContent

	for rows.Next() {
		var gc GeneratedContent
		if err := rows.Scan(
			&gc.ID,
			&gc.ListingID,
			&gc.Kind,
			&gc.Status,
			&gc.Body,
			&gc.Error,
			&gc.CreatedAt,
			&gc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contents = append(contents, &gc)
	}

	return contents, nil
}
