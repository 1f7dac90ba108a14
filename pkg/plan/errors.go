package plan

import (
	"errors"
	"fmt"
)

// ValidationError describes a plan that cannot be admitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid plan: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a plan validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a plan validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
