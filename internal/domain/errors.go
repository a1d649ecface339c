package domain

import (
	"errors"
	"fmt"
)

// Character errors
var (
	ErrCharacterNotFound     = errors.New("character not found")
	ErrMissingRequiredFields = errors.New("name and image_url required")
)

// FieldError reports a recognized field whose value has the wrong shape.
type FieldError struct {
	Field string
	Want  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s must be %s", e.Field, e.Want)
}

// IsValidationError reports whether err should be rejected before storage is touched.
func IsValidationError(err error) bool {
	var fe *FieldError
	return errors.Is(err, ErrMissingRequiredFields) || errors.As(err, &fe)
}
