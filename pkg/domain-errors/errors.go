// Package domainerrors carries the error codes shared by services and transports.
//
// Services return *Error (or a type implementing Coder) so handlers and consumers can
// classify failures without inspecting messages:
//
//	return dErrors.New(dErrors.CodeValidation, "status is required")
//	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist notification")
//
// Callers check codes with Is/HasCode, which see through wrapping.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, transport-agnostic error classification.
type Code string

const (
	CodeValidation         Code = "validation_error"
	CodeBadRequest         Code = "bad_request"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeInvalidState       Code = "invalid_state"
	CodeInvariantViolation Code = "invariant_violation"
	CodeUnavailable        Code = "unavailable"
	CodeTimeout            Code = "timeout"
	CodeUnauthorized       Code = "unauthorized"
	CodeInternal           Code = "internal_error"
)

// Coder is implemented by errors that know their own code.
type Coder interface {
	DomainCode() Code
}

// Error is the generic coded error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// DomainCode implements Coder.
func (e *Error) DomainCode() Code { return e.Code }

// New creates a coded error.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// Is reports whether the outermost coded error in err's chain has the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// HasCode reports whether any coded error in err's chain has the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if c, ok := err.(Coder); ok && c.DomainCode() == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// CodeOf returns the code of the outermost coded error, or "" when err carries none.
func CodeOf(err error) Code {
	var c Coder
	if errors.As(err, &c) {
		return c.DomainCode()
	}
	return ""
}
