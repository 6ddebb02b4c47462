// Package cli provides CLI infrastructure for larder.
package cli

import (
	"strings"

	"github.com/jacksmith/larder/internal/model"
)

// MatchProduct finds a unique product from user input.
// An exact id wins, then an exact name (case-insensitive), then a unique
// case-insensitive name prefix.
func MatchProduct(input string, products []model.Product) (*model.Product, error) {
	id := model.NormalizeProductID(input)
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	lower := strings.ToLower(id)
	for i := range products {
		if strings.ToLower(products[i].Name) == lower {
			return &products[i], nil
		}
	}

	var matches []int
	for i := range products {
		if strings.HasPrefix(strings.ToLower(products[i].Name), lower) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Type: "product", ID: input}
	case 1:
		return &products[matches[0]], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = products[m].ID
		}
		return nil, &AmbiguousError{Input: input, Matches: ids}
	}
}
