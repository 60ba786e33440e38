// Package argerr defines the error returned when a caller passes a
// parameter outside the domain of a generator or analysis routine.
//
// Errors are matched with errors.Is:
//	if errors.Is(err, argerr.ErrInvalidArgument) {
//		...
//	}
package argerr

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation error in this module.
var ErrInvalidArgument = errors.New("invalid argument")

// New returns an error which wraps ErrInvalidArgument.
// The message should name the parameter and the offending value.
func New(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Positive returns an error if x is not strictly positive.
func Positive(name string, x float64) error {
	if !(x > 0) {
		return New("%s must be positive: %g", name, x)
	}
	return nil
}

// PositiveInt returns an error if n is not strictly positive.
func PositiveInt(name string, n int) error {
	if n <= 0 {
		return New("%s must be positive: %d", name, n)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
