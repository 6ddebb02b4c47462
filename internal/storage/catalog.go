package storage

import (
	"github.com/jacksmith/larder/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the products written to catalog.yaml by Init.
func DefaultCatalog() *model.Catalog {
	p := func(id, name, desc, price string, stock int, category, hint string) model.Product {
		return model.Product{
			ID:          id,
			Name:        name,
			Description: desc,
			Price:       decimal.RequireFromString(price),
			Stock:       stock,
			Category:    category,
			Image: model.Image{
				URL:  "https://placehold.co/600x400?text=" + id,
				Hint: hint,
			},
		}
	}
	return &model.Catalog{Products: []model.Product{
		p("1", "Aged Balsamic Vinegar", "Twelve-year balsamic from Modena.", "8.50", 20, "Pantry", "balsamic bottle"),
		p("2", "Black Truffle Oil", "Cold-pressed olive oil infused with black truffle.", "24.00", 12, "Pantry", "truffle oil"),
		p("3", "Saffron Threads", "Grade I Persian saffron, 2g tin.", "14.75", 30, "Spices", "saffron tin"),
		p("4", "Wildflower Honey", "Raw, unfiltered, small batch.", "11.25", 18, "Sweets", "honey jar"),
		p("5", "Comté 18 Month", "Aged alpine cheese, 250g wedge.", "16.90", 8, "Cheese", "cheese wedge"),
		p("6", "Iberico Ham", "Hand-carved jamón ibérico, 100g.", "32.00", 5, "Charcuterie", "sliced ham"),
		p("7", "Fleur de Sel", "Hand-harvested sea salt from Guérande.", "7.40", 40, "Spices", "salt crock"),
		p("8", "Dark Chocolate Bar", "72% single-origin Madagascar.", "6.20", 50, "Sweets", "chocolate bar"),
	}}
}
