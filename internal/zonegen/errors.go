package zonegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected input. Use errors.Is to classify.
var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidDomain  = errors.New("invalid domain")
)

// ValidationError records which input was rejected and why.
type ValidationError struct {
	Kind  error
	Value string
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Kind, ErrInvalidAddress) {
		return fmt.Sprintf("%q is not a valid IPv4 address", e.Value)
	}
	return fmt.Sprintf("%q does not appear to be a valid domain name", e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// IsValidationError reports whether err was produced by the input gate.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAddress) || errors.Is(err, ErrInvalidDomain)
}
