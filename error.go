package url2md

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"     // malformed input (bad URL scheme); never retried
	EUNAVAILABLE = "unavailable" // network failure (DNS, reset, TLS, hard HTTP error)
	ETIMEOUT     = "timeout"     // request deadline exceeded
	EEMPTY       = "empty"       // empty response body or failed title/text invariant
	EPARSE       = "parse"       // structural extraction failure on fetched HTML
	EEXHAUSTED   = "exhausted"   // retry budget consumed
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application error with a machine-readable code.
// Err, when set, carries the underlying cause for unwrapping.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("url2md error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("url2md error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError constructs an Error that carries err as its cause.
func WrapError(err error, code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode returns the code of the first Error in err's chain,
// or EINTERNAL for non-application errors. Returns an empty string for nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the first Error in err's chain,
// or a generic message for non-application errors. Returns an empty string for nil.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Retryable reports whether err represents a transient condition that may
// succeed on a later attempt. Invalid input and exhausted budgets are final.
func Retryable(err error) bool {
	switch ErrorCode(err) {
	case EUNAVAILABLE, ETIMEOUT, EEMPTY, EPARSE:
		return true
	}
	return false
}
