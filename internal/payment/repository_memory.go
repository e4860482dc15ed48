package payment

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *InMemoryRepository) ListByShopper(_ context.Context, shopperID string) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Order
	for _, o := range r.orders {
		if o.ShopperID == shopperID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
