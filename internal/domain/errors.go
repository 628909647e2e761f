package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist or is soft-deleted.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries every field-level problem found in a payload so a
// client can fix all of them in one round trip. It is returned before any
// write happens; a ValidationError never has side effects.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

// NewValidationError builds a ValidationError from one or more reasons.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
