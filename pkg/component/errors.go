package component

import "fmt"

// ValidationError reports a constructor argument that violates a component
// invariant. Constructors fail atomically: no partially built component is
// ever returned alongside a ValidationError.
type ValidationError struct {
	Component Kind
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("component %s: %s: %s", e.Component, e.Field, e.Reason)
}

func newValidationError(kind Kind, field, reason string) error {
	return &ValidationError{Component: kind, Field: field, Reason: reason}
}
