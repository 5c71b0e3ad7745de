package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *ValidationError under errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError names the field of a Video that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
