// Package errors provides structured error types for pydepsync.
//
// This package defines error codes and types that enable:
//   - Consistent handling of fatal conditions across the pipeline and CLI
//   - Machine-readable error codes for the JSON/YAML report
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (manifest, path, config)
//   - *_NOT_FOUND: Resource not found
//   - NETWORK_*: Network-related errors
//   - MANIFEST_*: Failures while patching the manifest
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidManifest, "missing [project] table in %s", path)
//	if errors.Is(err, errors.ErrCodeInvalidManifest) {
//	    // Handle manifest error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPath, origErr, "read project root %s", root)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidRemap    Code = "INVALID_REMAP"

	// Resource not found errors
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeManifestNotFound Code = "MANIFEST_NOT_FOUND"

	// Network errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Manifest patch errors
	ErrCodeManifestWrite Code = "MANIFEST_WRITE"
	ErrCodeVerifyFailed  Code = "VERIFY_FAILED"
	ErrCodeChangesFound  Code = "CHANGES_PENDING"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first coded error in err's chain has the given code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// The first *Error in the chain wins; a *RateLimitedError reports
// RATE_LIMITED. Returns empty string otherwise.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.Code()
	}
	return ""
}

// UserMessage returns the error text with code prefixes stripped.
// For *Error types, the message is followed by the cause's own user message.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}

// RateLimitedError is returned when an index kept answering 429 after every
// retry.
type RateLimitedError struct {
	RetryAfter int // Seconds the index asked us to wait; zero if unknown
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
