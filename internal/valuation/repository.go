package valuation

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

// --------------------------------------------------
// Create request
// --------------------------------------------------
func (r *Repository) Create(
	ctx context.Context,
	req *Request,
) error {

	return r.db.QueryRow(ctx, `
		INSERT INTO valuation_requests (
			name,
			phone,
			email,
			city,
			district,
			category,
			transaction_type,
			area_m2,
			rooms,
			expected_price,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at, updated_at
	`,
		req.Name,
		req.Phone,
		req.Email,
		req.City,
		req.District,
		req.Category,
		req.TransactionType,
		req.AreaM2,
		req.Rooms,
		req.ExpectedPrice,
		req.Status,
	).Scan(
		&req.ID,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
}

// --------------------------------------------------
// Get single request
// --------------------------------------------------
func (r *Repository) GetByID(
	ctx context.Context,
	id int,
) (*Request, error) {

	var req Request
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			name,
			phone,
			email,
			city,
			district,
			category,
			transaction_type,
			area_m2,
			rooms,
			expected_price,
			status,
			created_at,
			updated_at
		FROM valuation_requests
		WHERE id = $1
	`, id).Scan(
		&req.ID,
		&req.Name,
		&req.Phone,
		&req.Email,
		&req.City,
		&req.District,
		&req.Category,
		&req.TransactionType,
		&req.AreaM2,
		&req.Rooms,
		&req.ExpectedPrice,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// --------------------------------------------------
// List requests (admin inbox)
// --------------------------------------------------
func (r *Repository) List(
	ctx context.Context,
	status string,
) ([]*Request, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			phone,
			email,
			city,
			district,
			category,
			transaction_type,
			area_m2,
			rooms,
			expected_price,
			status,
			created_at,
			updated_at
		FROM valuation_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*Request

	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID,
			&req.Name,
			&req.Phone,
			&req.Email,
			&req.City,
			&req.District,
			&req.Category,
			&req.TransactionType,
			&req.AreaM2,
			&req.Rooms,
			&req.ExpectedPrice,
			&req.Status,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, &req)
	}

	return requests, nil
}

// --------------------------------------------------
// Update status
// --------------------------------------------------
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int,
	status string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE valuation_requests
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, status)

	return err
}
