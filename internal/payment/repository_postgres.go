package payment

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id,
			shopper_id,
			gateway_order_id,
			items,
			total,
			currency,
			status,
			receipt_url
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`,
		o.ID,
		o.ShopperID,
		o.GatewayOrderID,
		string(items),
		o.Total,
		o.Currency,
		o.Status,
		o.ReceiptURL,
	).Scan(&o.CreatedAt)
}

const selectOrders = `
	SELECT
		id,
		shopper_id,
		gateway_order_id,
		items,
		total::float8,
		currency,
		status,
		receipt_url,
		created_at
	FROM orders
`

func (r *PostgresRepository) ListByShopper(ctx context.Context, shopperID string) ([]Order, error) {
	rows, err := r.db.Query(ctx, selectOrders+`
		WHERE shopper_id = $1
		ORDER BY created_at DESC
	`, shopperID)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, selectOrders+`
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			o     Order
			items []byte
		)
		if err := rows.Scan(
			&o.ID,
			&o.ShopperID,
			&o.GatewayOrderID,
			&items,
			&o.Total,
			&o.Currency,
			&o.Status,
			&o.ReceiptURL,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
