// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Aditya Harindar <aditya.harindar@gmail.com>

package utils

import (
	"testing"
)

func TestPointer(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		ptr := Pointer(true)
		if ptr == nil || *ptr != true {
			t.Errorf("Pointer(true) failed")
		}
	})

	t.Run("uint16", func(t *testing.T) {
		ptr := Pointer(uint16(100))
		if ptr == nil || *ptr != 100 {
			t.Errorf("Pointer(uint16(100)) failed")
		}
	})

	t.Run("independent copy", func(t *testing.T) {
		val := 42
		ptr := Pointer(val)
		val = 7
		if *ptr != 42 {
			t.Errorf("Pointer aliased its argument, got %d", *ptr)
		}
	})
}

func TestDereference(t *testing.T) {
	t.Run("non-nil", func(t *testing.T) {
		val := "hello"
		if Dereference(&val) != val {
			t.Errorf("Dereference(&\"hello\") = %q", Dereference(&val))
		}
	})

	t.Run("nil", func(t *testing.T) {
		var ptr *int64
		if Dereference(ptr) != 0 {
			t.Errorf("Dereference(nil *int64) = %d; want 0", Dereference(ptr))
		}
	})

	t.Run("struct nil", func(t *testing.T) {
		type testStruct struct {
			Name string
			Age  int
		}
		var ptr *testStruct
		result := Dereference(ptr)
		if result.Name != "" || result.Age != 0 {
			t.Errorf("Dereference(nil *testStruct) = %v; want zero value", result)
		}
	})
}
