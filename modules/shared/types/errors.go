package types

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-level validation failures out of the
// application layer. The HTTP boundary maps it to an
// unprocessable-entity response with the field map as the body.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError wraps the accumulated field errors.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
