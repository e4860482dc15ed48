package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBlobStore struct {
	db *pgxpool.Pool
}

func NewPostgresBlobStore(db *pgxpool.Pool) *PostgresBlobStore {
	return &PostgresBlobStore{db: db}
}

func (s *PostgresBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRow(ctx, `
		SELECT value
		FROM blobs
		WHERE key = $1
	`, key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PostgresBlobStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()
	`, key, string(value))

	return err
}
