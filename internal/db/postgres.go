package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Info("connected to postgres")

	if err := InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Info("schema initialized")
	return pool, nil
}

// InitSchema creates or updates the database schema
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	// -------------------------------
	// KEYED BLOBS (cart and friends)
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`,

	// -------------------------------
	// USERS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`,

	// -------------------------------
	// NEWSLETTER
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`,

	// -------------------------------
	// ORDERS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			shopper_id VARCHAR(255) NOT NULL,
			gateway_order_id VARCHAR(255) NOT NULL,
			items JSONB NOT NULL,
			total NUMERIC(12, 2) NOT NULL,
			currency VARCHAR(8) NOT NULL DEFAULT 'INR',
			status VARCHAR(50) NOT NULL,
			receipt_url TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`,
	`CREATE INDEX IF NOT EXISTS orders_shopper_idx ON orders (shopper_id)`,
}
