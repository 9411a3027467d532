// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package errors

// ErrCode is type for multiple reconizable errors.
type ErrCode int

// error codes
const (
	// if error is unknown
	Unknown ErrCode = 0

	// if the item not found in the space
	NotFound ErrCode = 1

	// if the item already present in the space
	AlreadyExists ErrCode = 2

	// if the argument is not valid
	InvalidArgument ErrCode = 3

	// if the host could not provide the memory or the
	// identifier space is used up
	ResourceExhausted ErrCode = 4

	// if the item falls outside the range managed by the space
	OutOfRange ErrCode = 5
)

// String returns a readable name for the error code
func (c ErrCode) String() string {
	switch c {
	case NotFound:
		return "NotFound"
	case AlreadyExists:
		return "AlreadyExists"
	case InvalidArgument:
		return "InvalidArgument"
	case ResourceExhausted:
		return "ResourceExhausted"
	case OutOfRange:
		return "OutOfRange"
	}
	return "Unknown"
}
