package cart

// LineItem is one product in the cart with its aggregated quantity.
// Quantity is always >= 1; a line that would drop to zero is removed.
type LineItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Product carries the fields copied into a new line item.
type Product struct {
	ID    int
	Name  string
	Price float64
	Image string
}

type Summary struct {
	Items         []LineItem `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalPrice    float64    `json:"total_price"`
}
