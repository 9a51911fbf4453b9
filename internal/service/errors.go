package service

import (
	"errors"
	"fmt"
)

var (
	ErrLogNotFound  = errors.New("log entry not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrInternal     = errors.New("internal error")
)

// ValidationError reports a single offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func internalErr(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
