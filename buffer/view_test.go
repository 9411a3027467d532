// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package buffer

import (
	"fmt"
	"testing"
)

type recordSink struct {
	msgs []string
}

func (r *recordSink) Printf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func TestNewView(t *testing.T) {
	v := NewView(make([]byte, 16))
	if v.Length() != 16 || v.Capacity() != 16 {
		t.Errorf("unexpected view, length %d capacity %d", v.Length(), v.Capacity())
	}
	if len(v.Buf()) != 16 || len(v.Bytes()) != 16 {
		t.Errorf("unexpected regions, buf %d bytes %d", len(v.Buf()), len(v.Bytes()))
	}
}

func TestZeroView(t *testing.T) {
	var v View
	if v.Length() != 0 || v.Capacity() != 0 || v.Buf() != nil {
		t.Errorf("unexpected zero view, length %d capacity %d", v.Length(), v.Capacity())
	}
	if v.SetLength(4) != 0 {
		t.Errorf("zero view accepted a length beyond its capacity")
	}
}

func TestSetLength(t *testing.T) {
	rec := &recordSink{}
	v := NewView([]byte("hello world"), WithDiagnostics(rec))

	tests := []struct {
		length int
		want   int
		warned bool
	}{
		{5, 5, false},
		{0, 0, false},
		{11, 11, false},
		{12, 11, true},
		{1000, 11, true},
		{-1, 0, true},
	}

	for _, test := range tests {
		warnings := len(rec.msgs)
		if got := v.SetLength(test.length); got != test.want {
			t.Errorf("SetLength(%d) = %d; want %d", test.length, got, test.want)
		}
		if v.Length() != test.want {
			t.Errorf("Length() = %d after SetLength(%d); want %d", v.Length(), test.length, test.want)
		}
		if warned := len(rec.msgs) > warnings; warned != test.warned {
			t.Errorf("SetLength(%d) warned = %v; want %v", test.length, warned, test.warned)
		}
	}

	v.SetLength(5)
	if string(v.Bytes()) != "hello" {
		t.Errorf("Bytes() = %q; want %q", v.Bytes(), "hello")
	}
	if v.Capacity() != 11 {
		t.Errorf("Capacity() changed to %d", v.Capacity())
	}
}
