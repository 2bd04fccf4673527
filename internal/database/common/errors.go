package common

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation marks unique, foreign key, not-null and check failures.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrConnectivity marks failures to reach the store.
	ErrConnectivity = errors.New("database unreachable")
)

// ConstraintError keeps the driver error while matching ErrConstraintViolation.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s (%s): %v", ErrConstraintViolation, e.Constraint, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrConstraintViolation, e.Err)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{ErrConstraintViolation, e.Err}
}

// Unreachable wraps a connect or ping failure.
func Unreachable(err error) error {
	return fmt.Errorf("%w: %w", ErrConnectivity, err)
}
