// Package domainerrors provides coded errors shared by the domain and
// transport layers.
//
// Domain code returns these errors so that callers can branch on the Code
// without string matching, and so the HTTP layer can translate a code into a
// status without knowing which package produced it.
//
// Usage:
//
//	return dErrors.New(dErrors.CodeInvalidFormat, "invalid CPF")
//	if dErrors.HasCode(err, dErrors.CodeInvalidFormat) { ... }
package domainerrors

import (
	"errors"
)

// Code classifies an error.
type Code string

const (
	// CodeInvalidArgument is a caller contract violation, such as a check-digit
	// root slice of the wrong length.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeInvalidFormat means a value or text fails the structural pattern or
	// the check-digit validation for its kind.
	CodeInvalidFormat Code = "invalid_format"
	// CodeAmbiguousOrInvalid means a document could not be classified as any
	// supported kind.
	CodeAmbiguousOrInvalid Code = "ambiguous_or_invalid"

	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_error"
	CodeNotFound   Code = "not_found"
	CodeTimeout    Code = "timeout"
	CodeInternal   Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
// Wrapping a nil error returns nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the outermost coded error in err's chain,
// or CodeInternal if there is none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is an alias for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
