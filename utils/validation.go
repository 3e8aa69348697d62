package utils

import "fmt"

// ValidationError rejects a request before any computation, naming the
// offending field. It is the only error class that propagates to callers;
// upstream data problems degrade results instead of failing them.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidField builds a ValidationError for a named input field.
func InvalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
