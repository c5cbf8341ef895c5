package method

import (
	"errors"
	"strings"
)

// Sentinel errors for methods.
var (
	// ErrNoResult is returned (via ExhaustedError) when no provider
	// produced a result: every registered provider failed, or none were
	// registered at all.
	ErrNoResult = errors.New("no provider produced a result")

	// ErrNilProvider is returned when RegisterProvider is given a nil
	// callable.
	ErrNilProvider = errors.New("provider cannot be nil")
)

// diagnosticSeparator joins provider diagnostics in an ExhaustedError.
const diagnosticSeparator = `","`

// ExhaustedError reports that a method call tried every provider without
// success. Diagnostics appear in provider order; an empty list means the
// method had no providers at all.
type ExhaustedError struct {
	// Errs holds one failure per attempted provider, in the order the
	// resolution policy tried them.
	Errs []error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	diags := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		diags[i] = err.Error()
	}
	return "no result available, all providers failed [" + strings.Join(diags, diagnosticSeparator) + "]"
}

// Is allows errors.Is to match an ExhaustedError with ErrNoResult.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrNoResult
}

// Unwrap exposes the individual provider failures to errors.Is/As.
func (e *ExhaustedError) Unwrap() []error {
	return e.Errs
}
