// Package model defines the core data structures for larder.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Image is an opaque reference to a product picture.
type Image struct {
	URL  string `json:"url" yaml:"url"`
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"` // descriptive text for the picture
}

// LineItem is a single product entry with a quantity in the cart or the
// saved-for-later list.
type LineItem struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Quantity int             `json:"quantity" yaml:"quantity"`
	Stock    int             `json:"stock" yaml:"stock"`
	Category string          `json:"category" yaml:"category"`
	Image    Image           `json:"image" yaml:"image"`
}

// Subtotal returns price * quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Product is a catalog entry.
type Product struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Price       decimal.Decimal `yaml:"price"`
	Stock       int             `yaml:"stock"`
	Category    string          `yaml:"category"`
	Image       Image           `yaml:"image"`
}

// LineItem builds a candidate line item for qty units of the product.
// The product's stock travels with the item as its quantity ceiling.
func (p *Product) LineItem(qty int) LineItem {
	return LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: qty,
		Stock:    p.Stock,
		Category: p.Category,
		Image:    p.Image,
	}
}

// Catalog is the product list stored in .larder/catalog.yaml.
type Catalog struct {
	Products []Product `yaml:"products"`
}

// Find returns the product with the given id, or nil.
func (c *Catalog) Find(id string) *Product {
	id = NormalizeProductID(id)
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.Products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Order is a submitted checkout: a snapshot of the cart at submission time.
type Order struct {
	ID       string     `yaml:"id"`
	Customer string     `yaml:"customer"`
	Email    string     `yaml:"email,omitempty"`
	Notes    string     `yaml:"notes,omitempty"`
	Created  time.Time  `yaml:"created"`
	Items    []LineItem `yaml:"items"`
}

// Count returns the number of units in the order.
func (o *Order) Count() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// Total returns the sum of price * quantity over the order's items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
