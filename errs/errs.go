// Package errs defines the sentinel errors shared across quadex packages.
//
// Callers match these with errors.Is. Call sites that add context wrap them
// with fmt.Errorf and the %w verb, so a wrapped error still matches its
// sentinel.
package errs

import "errors"

var (
	// ErrZeroLeadingCoeff indicates a quadratic whose leading coefficient is
	// exactly zero, degenerating the curve to a line.
	ErrZeroLeadingCoeff = errors.New("leading coefficient must not be zero")

	// ErrInvalidStepCount indicates a sweep configured with fewer than one step.
	ErrInvalidStepCount = errors.New("step count must be at least 1")

	// ErrInvalidStepSize indicates a sweep step size that is not a positive
	// finite number.
	ErrInvalidStepSize = errors.New("step size must be positive and finite")

	// ErrNilEmit indicates a sweep run without an emit callback.
	ErrNilEmit = errors.New("emit callback must not be nil")

	// ErrNotEnoughRows indicates an analysis over too few usable rows.
	ErrNotEnoughRows = errors.New("not enough rows to analyze")

	// ErrInvalidLaw indicates a law selection that is empty or names an
	// unknown law.
	ErrInvalidLaw = errors.New("invalid law selection")
)
