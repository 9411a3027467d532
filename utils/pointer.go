// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package utils

// Pointer returns a pointer to the given value.
// Usage:
//
//	ptr := utils.Pointer(true) // *bool pointing to true
func Pointer[T any](val T) *T {
	return &val
}

// Dereference returns the value of a pointer, or the zero value of
// the type if the pointer is nil.
// Usage:
//
//	val := utils.Dereference(ptr) // value pointed by ptr, or zero value if ptr is nil
func Dereference[T any](ptr *T) T {
	var val T
	if ptr != nil {
		val = *ptr
	}
	return val
}
