package sortbench

import (
	"fmt"
)

// InvalidInputError represents benchmark parameters rejected before any
// engine runs.
type InvalidInputError struct {
	// Field is the name of the parameter that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewInvalidInputError creates an InvalidInputError
func NewInvalidInputError(field string, value interface{}, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// SortError represents a failure inside a sort engine during one trial.
// Engines cannot fail on well-formed input, so this surfaces recovered
// panics from a misbehaving engine; the failed trial is excluded from
// aggregation and never aborts the rest of the run.
type SortError struct {
	// Algorithm is the engine that failed
	Algorithm Algorithm
	// Trial is the zero-based trial index within the run
	Trial int
	// Cause is the original panic or error that occurred during the sort
	Cause interface{}
}

func (e *SortError) Error() string {
	return fmt.Sprintf("sort panic in %s trial %d: %v", e.Algorithm, e.Trial, e.Cause)
}

func (e *SortError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewSortError creates a SortError
func NewSortError(alg Algorithm, trial int, cause interface{}) error {
	return &SortError{Algorithm: alg, Trial: trial, Cause: cause}
}

// FitError represents a regression that failed to produce coefficients for
// one algorithm's growth model. Fit failures are reported per algorithm and
// do not block fitting the others.
type FitError struct {
	// Algorithm is the algorithm whose means were being fit
	Algorithm Algorithm
	// Model is the growth model that was attempted
	Model Model
	// Reason explains the numeric or structural failure
	Reason string
	// Cause is the underlying numeric error, if any
	Cause error
}

func (e *FitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fit error for %s with model %s: %s: %v", e.Algorithm, e.Model, e.Reason, e.Cause)
	}
	return fmt.Sprintf("fit error for %s with model %s: %s", e.Algorithm, e.Model, e.Reason)
}

func (e *FitError) Unwrap() error {
	return e.Cause
}

// NewFitError creates a FitError
func NewFitError(alg Algorithm, model Model, reason string, cause error) error {
	return &FitError{Algorithm: alg, Model: model, Reason: reason, Cause: cause}
}
