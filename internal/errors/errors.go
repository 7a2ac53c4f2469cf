// Package errors defines the stable error code system for cmdkit.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Argument validation error codes
	ENullArgument    Code = "E_NULL_ARGUMENT"    // required input was absent (nil)
	EInvalidArgument Code = "E_INVALID_ARGUMENT" // input present but not acceptable
)

// CmdError is the standard error type for cmdkit errors.
type CmdError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *CmdError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CmdError) Unwrap() error {
	return e.Cause
}

// New creates a new CmdError with the given code and message.
func New(code Code, msg string) error {
	return &CmdError{Code: code, Msg: msg}
}

// NewWithDetails creates a new CmdError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &CmdError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new CmdError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &CmdError{Code: code, Msg: msg, Cause: err}
}

// WithDetails returns a copy of err with extra details merged in.
// Existing keys win. Non-CmdError values are returned unchanged.
func WithDetails(err error, extra map[string]string) error {
	ce, ok := AsCmdError(err)
	if !ok {
		return err
	}
	merged := make(map[string]string, len(ce.Details)+len(extra))
	for k, v := range extra {
		merged[k] = v
	}
	for k, v := range ce.Details {
		merged[k] = v
	}
	return &CmdError{Code: ce.Code, Msg: ce.Msg, Cause: ce.Cause, Details: copyDetails(merged)}
}

// GetCode extracts the error code from an error, or empty string if not a CmdError.
func GetCode(err error) Code {
	var ce *CmdError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// AsCmdError returns (*CmdError, true) if err is or wraps a CmdError.
func AsCmdError(err error) (*CmdError, bool) {
	var ce *CmdError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// copyDetails returns a copy of the details map, or nil if empty/nil.
func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ce *CmdError
	if errors.As(err, &ce) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", ce.Code)
		_, _ = fmt.Fprintln(w, ce.Msg)
	} else {
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
