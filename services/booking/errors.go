package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports required booking fields that were absent from a
// request. Incomplete bookings are rejected up front rather than stored as-is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required booking fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError for the given field names.
func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}
