// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package errors

import (
	"errors"
	"fmt"
)

// GetErrCode returns the error code if the error, or any error it
// wraps, is associated to recognizable error types
func GetErrCode(err error) ErrCode {
	var val *Error
	if errors.As(err, &val) {
		return val.code
	}
	return Unknown
}

// base error structure
type Error struct {
	code ErrCode
	msg  string
}

// Error() prints out the error message string
func (e *Error) Error() string {
	return e.msg
}

// Code returns the error code carried by the error
func (e *Error) Code() ErrCode {
	return e.code
}

// Creates a new error msg without error code
func New(msg string) error {
	return &Error{
		msg: msg,
	}
}

// Wraps the error msg with recognized error codes
func Wrap(code ErrCode, msg string) error {
	return &Error{
		code: code,
		msg:  msg,
	}
}

// Wrapf formats the error msg and wraps it with recognized error codes
func Wrapf(code ErrCode, format string, args ...any) error {
	return &Error{
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// Is reports whether any error in err's chain matches target,
// re-exported so callers need not import both errors packages
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsNotFound returns true if err
// item isn't found in the space
func IsNotFound(err error) bool {
	return GetErrCode(err) == NotFound
}

// IsAlreadyExists returns true if err
// item already exists in the space
func IsAlreadyExists(err error) bool {
	return GetErrCode(err) == AlreadyExists
}

// IsInvalidArgument returns true if err
// item is invalid argument
func IsInvalidArgument(err error) bool {
	return GetErrCode(err) == InvalidArgument
}

// IsResourceExhausted returns true if err
// indicates the space could not grow any further
func IsResourceExhausted(err error) bool {
	return GetErrCode(err) == ResourceExhausted
}

// IsOutOfRange returns true if err
// item is outside the range of the space
func IsOutOfRange(err error) bool {
	return GetErrCode(err) == OutOfRange
}
