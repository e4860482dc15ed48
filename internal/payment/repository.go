package payment

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByShopper(ctx context.Context, shopperID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
}
