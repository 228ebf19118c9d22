package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is a wrapper around a codec error [Code], with a customizable
// error message.
type CodecError interface {
	error
	Code() Code
	Unwrap() error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type codecError struct {
	code          Code
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e codecError) Error() string {
	if e.message != "" {
		return e.message
	}
	return StrError(e.code)
}

func (e codecError) Code() Code {
	return e.code
}

func (e codecError) Unwrap() error {
	return e.originalError
}

// Is reports whether target is a codec error with the same code. This lets
// callers compare any detailed error against the bare sentinels, e.g.
// `errors.Is(err, ErrFormatInvalid)`.
func (e codecError) Is(target error) bool {
	other, ok := target.(CodecError)
	return ok && other.Code() == e.code
}

func (e codecError) WithMessage(message string) CodecError {
	return codecError{
		code:          e.code,
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

func (e codecError) Wrap(err error) CodecError {
	return codecError{
		code:          e.code,
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// New creates a new [CodecError] with a default message derived from the
// error code.
func New(code Code) CodecError {
	return codecError{
		code:    code,
		message: StrError(code),
	}
}

// NewFromError creates a new [CodecError] caused by another error. Both the
// code and `originalError` can be matched with errors.Is.
func NewFromError(code Code, originalError error) CodecError {
	return New(code).Wrap(originalError)
}

// NewWithMessage creates a new CodecError from an error code with a custom
// message.
func NewWithMessage(code Code, message string) CodecError {
	return codecError{
		code:    code,
		message: fmt.Sprintf("%s: %s", StrError(code), message),
	}
}

// Newf is [NewWithMessage] with a format string.
func Newf(code Code, format string, args ...any) CodecError {
	return NewWithMessage(code, fmt.Sprintf(format, args...))
}

// CodeOf returns the code carried by err, [Success] for nil, and
// [StandardLibraryError] for errors that didn't originate in the codec.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	for e := err; e != nil; {
		if ce, ok := e.(CodecError); ok {
			return ce.Code()
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return StandardLibraryError
}
