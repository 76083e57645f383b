// Package errors defines the stable error code system for shelf.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; scripts match on these.
const (
	EUsage    Code = "E_USAGE"    // wrong argument shape or conflicting options
	EInternal Code = "E_INTERNAL" // unexpected local failure (cwd, home dir)

	// Command-level validation
	ENoShelves       Code = "E_NO_SHELVES"       // youngest shelf requested but none exist
	EInvalidTarget   Code = "E_INVALID_TARGET"   // target is a URL, or no targets given
	EInvalidEncoding Code = "E_INVALID_ENCODING" // name argument is not valid UTF-8
	EInvalidConfig   Code = "E_INVALID_CONFIG"   // config.json unreadable or invalid
	ELogMessage      Code = "E_LOG_MESSAGE"      // log message could not be obtained

	// Store (svn backend) error codes
	EInvalidName      Code = "E_INVALID_NAME"      // shelf name cannot be used as a file name
	EShelfNotFound    Code = "E_SHELF_NOT_FOUND"   // no shelf with that name
	EShelfExists      Code = "E_SHELF_EXISTS"      // shelf name already in use
	ENoChanges        Code = "E_NO_CHANGES"        // nothing to shelve under the targets
	EPatchConflict    Code = "E_PATCH_CONFLICT"    // svn patch reported conflicts
	ESvnFailed        Code = "E_SVN_FAILED"        // svn exited non-zero
	ESvnNotInstalled  Code = "E_SVN_NOT_INSTALLED" // svn binary not found
	ENotWorkingCopy   Code = "E_NOT_WORKING_COPY"  // path is not inside an svn working copy
	EPersistFailed    Code = "E_PERSIST_FAILED"    // patch file could not be written or removed
	EShelvesDirFailed Code = "E_SHELVES_DIR"       // shelves directory unreadable
)

// ShelfError is the standard error type for shelf errors.
type ShelfError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *ShelfError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ShelfError) Unwrap() error {
	return e.Cause
}

// New creates a new ShelfError with the given code and message.
func New(code Code, msg string) error {
	return &ShelfError{Code: code, Msg: msg}
}

// NewWithDetails creates a new ShelfError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &ShelfError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new ShelfError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &ShelfError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new ShelfError wrapping an underlying error with details.
// Details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &ShelfError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// WithDetail returns err with one extra detail key set. Non-shelf errors are
// wrapped as E_INTERNAL so the detail is not lost.
func WithDetail(err error, key, value string) error {
	if err == nil {
		return nil
	}
	se, ok := AsShelfError(err)
	if !ok {
		return WrapWithDetails(EInternal, err.Error(), err, map[string]string{key: value})
	}
	details := copyDetails(se.Details)
	if details == nil {
		details = make(map[string]string, 1)
	}
	details[key] = value
	return &ShelfError{Code: se.Code, Msg: se.Msg, Cause: se.Cause, Details: details}
}

// GetCode extracts the error code from an error, or empty string if not a ShelfError.
func GetCode(err error) Code {
	var se *ShelfError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// AsShelfError returns (*ShelfError, true) if err is or wraps a ShelfError.
func AsShelfError(err error) (*ShelfError, bool) {
	var se *ShelfError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

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

// ExitCode returns the process exit code for an error.
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
