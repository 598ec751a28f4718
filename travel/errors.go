package travel

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals an absent destination id.
	ErrNotFound = errors.New("destination not found")
	// ErrStoreUnavailable signals a write attempted while the backing store
	// is unreachable. Reads never return it; they degrade to sample data.
	ErrStoreUnavailable = errors.New("destination store unavailable")
)

// ValidationKind names the rule a write payload violated.
type ValidationKind string

const (
	ValidationMissingField    ValidationKind = "missing_field"
	ValidationInvalidCategory ValidationKind = "invalid_category"
	ValidationOutOfRange      ValidationKind = "out_of_range"
	ValidationNegative        ValidationKind = "negative"
)

// ValidationError is a client-input fault naming the violated field and rule.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Hint  string
}

func (e *ValidationError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("validation failed: %s %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("validation failed: %s %s: %s", e.Field, e.Kind, e.Hint)
}

func newValidationError(kind ValidationKind, field, hint string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Hint: hint}
}
