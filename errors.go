package symexpr

import (
	"errors"
	"fmt"
)

// Error represents a fatal failure in substitution or construction.
//
// Fatal errors include:
//   - Unknown variable: full substitution referenced a variable absent
//     from the binding map
//   - Non-integer result: a subtraction underflowed, a division was not
//     exact, or a rational leaf evaluated to a non-integer
//   - Malformed rational: a RationalExpr was constructed with an empty
//     denominator term list
//
// All of these are caller errors and are not recoverable within the
// failing call. Indeterminate equivalence is NOT an error; see
// Equivalence.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Variable names the offending variable (for unknown-variable
	// errors).
	Variable string
}

// ErrorCode categorizes fatal errors.
type ErrorCode string

const (
	// ErrCodeUnknownVariable indicates a full substitution referenced a
	// variable missing from the bindings.
	ErrCodeUnknownVariable ErrorCode = "UNKNOWN_VARIABLE"

	// ErrCodeNonIntegerResult indicates a substitution result left the
	// non-negative integer domain.
	ErrCodeNonIntegerResult ErrorCode = "NON_INTEGER_RESULT"

	// ErrCodeMalformedRational indicates a RationalExpr with an empty
	// denominator.
	ErrCodeMalformedRational ErrorCode = "MALFORMED_RATIONAL"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("%s: %s (variable=%q)", e.Code, e.Message, e.Variable)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownVariable returns true if the error is an unknown-variable
// error. Uses errors.As to handle wrapped errors.
func IsUnknownVariable(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeUnknownVariable
	}
	return false
}

// IsNonIntegerResult returns true if the error is a non-integer-result
// error. Uses errors.As to handle wrapped errors.
func IsNonIntegerResult(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeNonIntegerResult
	}
	return false
}

// IsMalformedRational returns true if the error is a malformed-rational
// construction error. Uses errors.As to handle wrapped errors.
func IsMalformedRational(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeMalformedRational
	}
	return false
}

// newUnknownVariableError creates an Error for a variable missing from
// the bindings.
func newUnknownVariableError(name string) *Error {
	return &Error{
		Code:     ErrCodeUnknownVariable,
		Message:  "variable not present in bindings",
		Variable: name,
	}
}

// newNonIntegerResultError creates an Error for a substitution that
// left the non-negative integer domain.
func newNonIntegerResultError(msg string) *Error {
	return &Error{
		Code:    ErrCodeNonIntegerResult,
		Message: msg,
	}
}

// newMalformedRationalError creates an Error for an empty denominator.
func newMalformedRationalError() *Error {
	return &Error{
		Code:    ErrCodeMalformedRational,
		Message: "denominator term list must not be empty",
	}
}
