package cart

import "math"

func TotalQuantity(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity rounded to two decimals.
func TotalPrice(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return RoundPrice(sum)
}

func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

func Summarize(items []LineItem) Summary {
	if items == nil {
		items = []LineItem{}
	}
	return Summary{
		Items:         items,
		TotalQuantity: TotalQuantity(items),
		TotalPrice:    TotalPrice(items),
	}
}
