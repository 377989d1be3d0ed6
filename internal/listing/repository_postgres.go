package listing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emlakk/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new listing
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, l *Listing) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	var lat, lng *float64
	if l.Coordinates != nil {
		lat = &l.Coordinates.Lat
		lng = &l.Coordinates.Lng
	}

	query := `
		INSERT INTO listings (
			id,
			title,
			slug,
			description,
			city,
			district,
			category,
			transaction_type,
			price,
			currency,
			lat,
			lng,
			images,
			source,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		l.ID,
		l.Title,
		l.Slug,
		l.Description,
		l.City,
		l.District,
		l.Category,
		l.TransactionType,
		l.Price,
		l.Currency,
		lat,
		lng,
		l.Images,
		l.Source,
		l.Status,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
}

// --------------------------------------------------
// Update listing
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, l *Listing) error {
	var lat, lng *float64
	if l.Coordinates != nil {
		lat = &l.Coordinates.Lat
		lng = &l.Coordinates.Lng
	}

	_, err := r.db.Exec(ctx, `
		UPDATE listings SET
			title = $2,
			slug = $3,
			description = $4,
			city = $5,
			district = $6,
			category = $7,
			transaction_type = $8,
			price = $9,
			currency = $10,
			lat = $11,
			lng = $12,
			source = $13,
			status = $14,
			updated_at = now()
		WHERE id = $1
	`,
		l.ID,
		l.Title,
		l.Slug,
		l.Description,
		l.City,
		l.District,
		l.Category,
		l.TransactionType,
		l.Price,
		l.Currency,
		lat,
		lng,
		l.Source,
		l.Status,
	)
	return err
}

// --------------------------------------------------
// Delete listing
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	return err
}

const listingColumns = `
	id,
	title,
	slug,
	description,
	city,
	district,
	category,
	transaction_type,
	price,
	currency,
	lat,
	lng,
	images,
	source,
	status,
	created_at,
	updated_at
`

func scanListing(row pgx.Row) (*Listing, error) {
	var l Listing
	var lat, lng *float64

	if err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Slug,
		&l.Description,
		&l.City,
		&l.District,
		&l.Category,
		&l.TransactionType,
		&l.Price,
		&l.Currency,
		&lat,
		&lng,
		&l.Images,
		&l.Source,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		l.Coordinates = &Coordinates{Lat: *lat, Lng: *lng}
	}

	return &l, nil
}

// --------------------------------------------------
// Get by ID / slug
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	return scanListing(row)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE slug = $1`, slug)
	return scanListing(row)
}

// --------------------------------------------------
// List with filter
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]*Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE ($1 = '' OR city = $1)
		  AND ($2 = '' OR category = $2)
		  AND ($3 = '' OR transaction_type = $3)
		  AND ($4 = '' OR status = $4)
		ORDER BY created_at DESC
	`
	args := []any{filter.City, filter.Category, filter.TransactionType, filter.Status}

	if filter.Limit > 0 {
		query += ` LIMIT $5`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// --------------------------------------------------
// Listings with coordinates, feeds the map subsystem
// --------------------------------------------------
func (r *PostgresRepository) ListMappable(ctx context.Context) ([]*Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE status = 'active'
		  AND lat IS NOT NULL
		  AND lng IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// --------------------------------------------------
// Save image URLs
// --------------------------------------------------
func (r *PostgresRepository) SaveImages(ctx context.Context, id string, images []string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE listings
		SET images = images || $2, updated_at = now()
		WHERE id = $1
	`, id, images)
	return err
}

// --------------------------------------------------
// core.ListingReader implementation
// --------------------------------------------------
func (r *PostgresRepository) GetSummary(
	ctx context.Context,
	listingID string,
) (*core.ListingSummary, error) {

	var s core.ListingSummary
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			title,
			city,
			district,
			category,
			transaction_type,
			price,
			COALESCE(description, '')
		FROM listings
		WHERE id = $1
	`, listingID).Scan(
		&s.ID,
		&s.Title,
		&s.City,
		&s.District,
		&s.Category,
		&s.TransactionType,
		&s.Price,
		&s.Description,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
