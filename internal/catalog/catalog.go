package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrProductNotFound = errors.New("product not found")

//go:embed products.yaml
var defaultProducts []byte

type Catalog struct {
	products []Product
	byID     map[int]Product
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultProducts)
}

func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Products []Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Products)
}

func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: products,
		byID:     make(map[int]Product, len(products)),
	}

	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

func (c *Catalog) Get(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// Filter returns products for a dosha. "all" (or empty) returns every
// product; otherwise products of that category plus the "all" ones.
func (c *Catalog) Filter(category string) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category == "" || category == CategoryAll ||
			p.Category == category || p.Category == CategoryAll {
			out = append(out, p)
		}
	}
	return out
}
