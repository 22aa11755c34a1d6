// Package errors defines the structured error type used throughout gcssh.
// Every failure the provisioning workflow can hit maps onto exactly one code,
// so callers can tell a command-execution failure apart from a data-contract
// failure without parsing message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes. One per provisioning failure condition, plus ambient codes
// for configuration, process execution, and update checking.
const (
	// ErrHomeDir means the operator's home directory could not be resolved.
	ErrHomeDir = "HOME"
	// ErrIO means a local filesystem operation failed (create/read/permission).
	ErrIO = "IO"
	// ErrKeyGen means the external key-generation command exited non-zero.
	ErrKeyGen = "KEYGEN"
	// ErrListing means the external instance-listing command exited non-zero.
	ErrListing = "LIST"
	// ErrDecoding means the listing succeeded but its output did not match
	// the expected JSON shape. Deliberately distinct from ErrListing.
	ErrDecoding = "DECODE"
	// ErrNoInstances means the listing decoded to zero instances.
	ErrNoInstances = "EMPTY"
	// ErrSelectionAborted means the operator cancelled the interactive prompt.
	ErrSelectionAborted = "ABORT"
	// ErrDeploy means the remote key-deployment command exited non-zero.
	ErrDeploy = "DEPLOY"
	// ErrNoExternalIP means the selected instance has no reachable address.
	ErrNoExternalIP = "NOIP"

	// ErrConfig covers configuration loading and validation problems.
	ErrConfig = "CONFIG"
	// ErrExec covers local process spawning failures (binary missing etc).
	ErrExec = "EXEC"
	// ErrUpdate covers update-check failures.
	ErrUpdate = "UPDATE"
)

// Error is a structured error carrying a code, an operator-facing message,
// an optional suggestion, and an optional underlying cause. The cause holds
// raw diagnostic detail (typically captured stderr) verbatim.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WithDetail creates a structured error whose cause is the raw detail text,
// kept verbatim for diagnostics. Used for external-command stderr capture.
func WithDetail(code, message, detail string) *Error {
	e := &Error{
		Code:    code,
		Message: message,
	}
	if detail != "" {
		e.Cause = errors.New(detail)
	}
	return e
}

// Wrap wraps an existing error with a specific code, message, and suggestion.
func Wrap(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface:
//
//	✗ <what failed>
//
//	  <why it failed — raw detail>
//
//	  <how to fix it>
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", strings.TrimSpace(e.Cause.Error())))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is (or wraps) a structured Error with the code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// Detail returns the raw cause text of a structured error, or "" if there
// is none. Used by tests and by the workflow's failure report.
func Detail(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Cause != nil {
		return se.Cause.Error()
	}
	return ""
}
