package catalog

// Product is a sellable item. Category is a dosha label or "all" for
// products suited to every constitution.
type Product struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Category    string  `json:"category" yaml:"category"`
	Image       string  `json:"image" yaml:"image"`
}

const CategoryAll = "all"
