package aero

import (
	"errors"
	"fmt"
)

// ErrDomain marks an input outside the formula's physical domain.
var ErrDomain = errors.New("input outside physical domain")

// DomainError names the offending quantity.
// It unwraps to ErrDomain.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrDomain, e.Quantity, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainError(quantity string, value float64, reason string) error {
	return &DomainError{Quantity: quantity, Value: value, Reason: reason}
}
