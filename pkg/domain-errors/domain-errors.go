// Package domainerrors defines the error vocabulary shared by the
// service, store, and handler layers. Errors carry a stable Code that
// the HTTP layer maps to a status without inspecting messages.
package domainerrors

import "errors"

// Code classifies a failure in business terms rather than transport
// terms.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeBadRequest         Code = "bad_request"
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation_failed"
	CodeInternal           Code = "internal_error"
	CodeConflict           Code = "conflict"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeTimeout            Code = "timeout"
	CodeInvariantViolation Code = "invariant_violation"

	// Submission lifecycle codes.
	CodeFileNotReady     Code = "file_not_ready"     // submit-time guard denied: file chain is not fully valid
	CodeUnknownEventKind Code = "unknown_event_kind" // append rejected: event kind missing from the dispatch table
	CodeAlreadySubmitted Code = "already_submitted"  // submission cycle already finalized for this file
)

// Error is the concrete error type returned by all consign layers.
// Err, when set, holds the underlying cause for errors.Is/As chains.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two domain errors when their codes agree, so
// errors.Is(err, New(CodeNotFound, "")) works as a code test.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New builds a domain error from a code and a caller-facing message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap annotates err with a message while keeping it reachable through
// Unwrap. When err is already a domain error its original code wins,
// so the outermost classification never masks the root cause.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		code = existing.Code
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether err carries the given code anywhere in its
// chain.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the code from err, or CodeInternal for errors that
// did not originate in a consign layer.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
