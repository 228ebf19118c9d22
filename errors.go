package pinto

import (
	"github.com/GeekHorse/Pinto/errors"
)

// ErrorCode identifies the kind of failure behind an error returned by this
// package. See [CodeOf].
type ErrorCode = errors.Code

var ErrPrecondition = errors.ErrPrecondition
var ErrMemoryAllocationFailed = errors.ErrMemoryAllocationFailed
var ErrStandardLibrary = errors.ErrStandardLibrary
var ErrImageBadSize = errors.ErrImageBadSize
var ErrImageTooManyColors = errors.ErrImageTooManyColors
var ErrImagePartialTransparency = errors.ErrImagePartialTransparency
var ErrImageTooSmall = errors.ErrImageTooSmall
var ErrFormatInvalid = errors.ErrFormatInvalid
var ErrFormatTooLong = errors.ErrFormatTooLong

// StrError returns the human-readable description of an error code, or
// "Unknown Error" if the code isn't one this package defines.
func StrError(code ErrorCode) string {
	return errors.StrError(code)
}

// CodeOf returns the code of an error returned by this package. It returns
// Success for nil.
func CodeOf(err error) ErrorCode {
	return errors.CodeOf(err)
}
