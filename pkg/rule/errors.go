package rule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyNotFound is returned by Get when the context does not hold the
	// requested key.
	ErrKeyNotFound = errors.New("rule: context key not found")

	// ErrTypeMismatch is returned by Get when the stored value cannot be
	// asserted to the requested type.
	ErrTypeMismatch = errors.New("rule: context value type mismatch")

	// ErrMissingCondition is returned by the builder when Build is called
	// without a broken-condition predicate.
	ErrMissingCondition = errors.New("rule: builder requires a condition")

	// ErrMissingCode is returned by the builder when Build is called
	// without a rule code.
	ErrMissingCode = errors.New("rule: builder requires a non-empty code")

	// ErrUnknownSeverity is returned by ParseSeverity for labels it does
	// not recognize.
	ErrUnknownSeverity = errors.New("rule: unknown severity")
)

// ValidationError aggregates the violations found by a check. It is the sole
// mechanism for reporting broken rules to callers and is never constructed
// with an empty violation list.
type ValidationError struct {
	Violations []Result
}

// NewValidationError builds a ValidationError from the given violations.
// It returns nil when no violations are passed; callers must not wrap the
// result in an error interface without checking for nil first.
func NewValidationError(violations ...Result) *ValidationError {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Code, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether the error chain contains a ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
