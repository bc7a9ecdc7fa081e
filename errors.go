package main

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a missing record and a record owned by someone
// else, so non-owners cannot probe for existence.
var ErrNotFound = errors.New("record not found")

// ErrStoreUnavailable is returned while the database connection has not been
// established yet. The server keeps listening in that state.
var ErrStoreUnavailable = errors.New("database unavailable")

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
