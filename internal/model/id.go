package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when an ID cannot be parsed.
var ErrInvalidID = errors.New("invalid ID format")

// NormalizeProductID trims surrounding whitespace from a product id.
// Product ids are otherwise compared exactly.
func NormalizeProductID(id string) string {
	return strings.TrimSpace(id)
}

// NewOrderID returns a fresh order id.
func NewOrderID() string {
	return uuid.NewString()
}

// ParseOrderID validates s as an order id and returns it in canonical form.
// Accepts upper or lower case; the canonical form is lower case.
func ParseOrderID(s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid order ID", ErrInvalidID, s)
	}
	return id.String(), nil
}

// ShortOrderID returns the first block of an order id for display.
func ShortOrderID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
