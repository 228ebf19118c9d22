// Error codes returned by every part of the codec. The numeric values are
// stable so they can be used as process exit statuses by the command-line
// tools.

package errors

import "fmt"

type Code int

const (
	Success Code = iota
	Precondition
	MemoryAllocationFailed
	StandardLibraryError
	ImageBadSize
	ImageTooManyColors
	ImagePartialTransparency
	ImageTooSmall
	FormatInvalid
	FormatTooLong
)

// MaxCode is the highest defined code.
const MaxCode = FormatTooLong

const unknownErrorMessage = "Unknown Error"

var errorMessagesByCode = [...]string{
	Success:                  "Success",
	Precondition:             "Precondition Error",
	MemoryAllocationFailed:   "Memory Allocation Error",
	StandardLibraryError:     "Standard Library Error",
	ImageBadSize:             "Image Bad Size Error",
	ImageTooManyColors:       "Image Too Many Colors Error",
	ImagePartialTransparency: "Image Partial Transparency Error",
	ImageTooSmall:            "Image Too Small Error",
	FormatInvalid:            "Format Invalid Error",
	FormatTooLong:            "Format Too Long Error",
}

var ErrPrecondition = New(Precondition)
var ErrMemoryAllocationFailed = New(MemoryAllocationFailed)
var ErrStandardLibrary = New(StandardLibraryError)
var ErrImageBadSize = New(ImageBadSize)
var ErrImageTooManyColors = New(ImageTooManyColors)
var ErrImagePartialTransparency = New(ImagePartialTransparency)
var ErrImageTooSmall = New(ImageTooSmall)
var ErrFormatInvalid = New(FormatInvalid)
var ErrFormatTooLong = New(FormatTooLong)

// StrError returns the human-readable description of an error code. Codes
// outside the defined range give "Unknown Error".
func StrError(code Code) string {
	if code < Success || code > MaxCode {
		return unknownErrorMessage
	}
	return errorMessagesByCode[code]
}

// String implements [fmt.Stringer].
func (code Code) String() string {
	if code < Success || code > MaxCode {
		return fmt.Sprintf("%s (%d)", unknownErrorMessage, int(code))
	}
	return errorMessagesByCode[code]
}
