package message

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

func (r *Repository) Create(ctx context.Context, m *Message) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO messages (name, email, phone, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		m.Name,
		m.Email,
		m.Phone,
		m.Body,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *Repository) List(ctx context.Context, unreadOnly bool) ([]*Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, body, read, created_at
		FROM messages
		WHERE (NOT $1 OR read = FALSE)
		ORDER BY created_at DESC
	`, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*Message

	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Body,
			&m.Read,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}

	return messages, nil
}

func (r *Repository) MarkRead(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE messages SET read = TRUE WHERE id = $1
	`, id)

	return err
}
