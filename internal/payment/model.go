package payment

import (
	"time"

	"prakruti/internal/cart"
)

const (
	StatusPaid = "PAID"

	CurrencyINR = "INR"
)

// Order is a completed checkout.
type Order struct {
	ID             string          `json:"id"`
	ShopperID      string          `json:"shopper_id"`
	GatewayOrderID string          `json:"gateway_order_id"`
	Items          []cart.LineItem `json:"items"`
	Total          float64         `json:"total"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	ReceiptURL     *string         `json:"receipt_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// OrderRequest is what we ask the gateway to collect. Amount is in the
// currency's smallest unit (paise for INR).
type OrderRequest struct {
	Receipt  string
	Amount   int64
	Currency string
}

type GatewayOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}
