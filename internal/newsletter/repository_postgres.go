package newsletter

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *Subscription) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO newsletter_subscriptions (id, name, email)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, s.ID, s.Name, s.Email).Scan(&s.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadySubscribed
	}
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Subscription, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, created_at
		FROM newsletter_subscriptions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	return subs, rows.Err()
}
