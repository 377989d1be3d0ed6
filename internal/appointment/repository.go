package appointment

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

func (r *Repository) Create(ctx context.Context, a *Appointment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO appointments (name, phone, listing_id, requested_at, note, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`,
		a.Name,
		a.Phone,
		a.ListingID,
		a.RequestedAt,
		a.Note,
		a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *Repository) List(ctx context.Context, status string) ([]*Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, listing_id, requested_at, note, status, created_at, updated_at
		FROM appointments
		WHERE ($1 = '' OR status = $1)
		ORDER BY requested_at ASC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*Appointment

	for rows.Next() {
		var a Appointment
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Phone,
			&a.ListingID,
			&a.RequestedAt,
			&a.Note,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, &a)
	}

	return appointments, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE appointments
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, status)

	return err
}
