package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrUsernameTaken        = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrFileNameTaken        = fmt.Errorf("%w: file name already exists", ErrConflict)
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrMessageFiltered      = errors.New("message contains a forbidden word")
	ErrValidation           = errors.New("validation failed")
)

var (
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
	ErrTokenMismatch = errors.New("refresh token mismatch")
	ErrInvalidToken  = errors.New("invalid token")
)

// ValidationError reports malformed or missing input for a single field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
