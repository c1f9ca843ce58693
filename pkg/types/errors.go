package types

import (
	"errors"
	"fmt"
)

// Demonstration errors.
var (
	// ErrUnsupportedOperation is returned by a variant that was forced to
	// implement an operation it cannot honor.
	ErrUnsupportedOperation = errors.New("operation not supported")

	// ErrNilCollaborator is returned when a coordinator is built without the
	// collaborator it delegates to.
	ErrNilCollaborator = errors.New("collaborator must not be nil")

	// ErrInvalidDimension is returned for negative, infinite or NaN shape dimensions.
	ErrInvalidDimension = errors.New("invalid shape dimension")
)

// OpError records which variant failed which operation.
// It wraps a sentinel from this package so callers can use errors.Is.
type OpError struct {
	Variant string // Concrete variant name, e.g. "Penguin".
	Op      string // Operation name, e.g. "Fly".
	Reason  string // Optional human-readable reason.
	Err     error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s.%s: %v", e.Variant, e.Op, e.Err)
	if e.Reason != "" {
		base += ": " + e.Reason
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Unsupported returns an OpError wrapping ErrUnsupportedOperation.
func Unsupported(variant, op, reason string) error {
	return &OpError{Variant: variant, Op: op, Reason: reason, Err: ErrUnsupportedOperation}
}

// IsUnsupported reports whether err is, or wraps, ErrUnsupportedOperation.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}
