package models

import "fmt"

// ValidationError reports a patient field that failed a domain rule after
// request binding. It maps to a 422 at the HTTP layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ComputationError wraps a failure inside the prediction pipeline. Errors
// are surfaced to the caller; there is no canned fallback prediction.
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}
