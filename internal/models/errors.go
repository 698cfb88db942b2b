package models

import "errors"

// ErrNotFound is returned by services when an id or slug has no live record.
var ErrNotFound = errors.New("record not found")

// ValidationError marks missing or malformed caller input. The message is
// safe to return to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
