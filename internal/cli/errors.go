package cli

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a product, line item, or order was not found.
type NotFoundError struct {
	Type string // "product", "cart item", "saved item", or "order"
	ID   string // the ID that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// AmbiguousError indicates an input matched more than one product.
type AmbiguousError struct {
	Input   string   // what the user typed
	Matches []string // ids of the matching products
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous product %q matches: %s", e.Input, strings.Join(e.Matches, ", "))
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
