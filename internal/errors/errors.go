// Package errors defines the stable error code system for repogen.
//
// Every failure surfaced to the user carries a Code, and every Code maps to
// one of the documented exit signals. Planning and validation errors are
// fail-fast; apply errors may leave partial output (see the engine package).
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes. The exit-code mapping in ExitCode is a public contract.
const (
	// EValidation covers malformed specifications, unresolved strict-mode
	// placeholders, and unused strict-mode parameters.
	EValidation Code = "E_VALIDATION"

	// EUsage covers missing required flags, invalid flag values, overwrite
	// without --force, apply without --confirm, and apply into an existing
	// output root without --allow-existing-root.
	EUsage Code = "E_USAGE"

	// ESecurity covers destinations escaping the output root and
	// destinations rejected by the allow-path list.
	ESecurity Code = "E_SECURITY"

	// EMissingComponent indicates the template library lacks a declared
	// component. This is a packaging error, not a specification error.
	EMissingComponent Code = "E_MISSING_COMPONENT"

	// EConflict indicates a pre-existing destination file under the "fail"
	// conflict policy.
	EConflict Code = "E_CONFLICT"

	// EInternal covers any other unexpected failure.
	EInternal Code = "E_INTERNAL"
)

// Error is the standard error type for repogen errors.
type Error struct {
	Code  Code
	Msg   string
	Cause error
}

// Error returns the stable error format: "CODE: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Cause: err}
}

// Coded reports whether the error carries a Code anywhere in its chain.
func Coded(err error) bool {
	var re *Error
	return errors.As(err, &re)
}

// GetCode extracts the error code from an error, or EInternal if the error
// does not carry one.
func GetCode(err error) Code {
	var re *Error
	if errors.As(err, &re) {
		return re.Code
	}
	return EInternal
}

// ExitCode returns the exit signal for an error.
//
//	0 success, 2 validation/usage/security, 3 conflict,
//	4 missing component, 5 internal.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case EValidation, EUsage, ESecurity:
		return 2
	case EConflict:
		return 3
	case EMissingComponent:
		return 4
	default:
		return 5
	}
}
