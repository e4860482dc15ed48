package core

import (
	"context"

	"prakruti/internal/cart"
)

// CartCheckout is the slice of the cart store that checkout needs: a
// locked load-charge-clear over one shopper's cart.
type CartCheckout interface {
	Checkout(ctx context.Context, shopperID string, charge cart.ChargeFunc) error
}
