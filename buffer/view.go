// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package buffer

import (
	"github.com/go-core-stack/embedcore/diag"
)

// View describes a partially filled buffer, typically used for transmit
// and receive frames. It pairs a memory region with its capacity and
// the length currently in use. View does not own or allocate the
// region, that is left to the caller.
type View struct {
	buf    []byte
	length int
	sink   diag.Sink
}

// Option configures a View
type Option func(*View)

// WithDiagnostics sets the sink notified when a length gets clamped
func WithDiagnostics(sink diag.Sink) Option {
	return func(v *View) {
		v.sink = sink
	}
}

// NewView wraps buf, with both capacity and length set to len(buf)
func NewView(buf []byte, opts ...Option) *View {
	v := &View{
		buf:    buf,
		length: len(buf),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Buf returns the whole region, regardless of the current length
func (v *View) Buf() []byte {
	return v.buf
}

// Bytes returns the part of the region in use
func (v *View) Bytes() []byte {
	return v.buf[:v.length]
}

// Length returns the current length
func (v *View) Length() int {
	return v.length
}

// Capacity returns the size of the region
func (v *View) Capacity() int {
	return len(v.buf)
}

// SetLength sets the current length, clamping it within the capacity.
// It returns the length actually set.
func (v *View) SetLength(n int) int {
	switch {
	case n > len(v.buf):
		diag.Printf(v.sink, "* buffer length %d exceeds capacity %d", n, len(v.buf))
		n = len(v.buf)
	case n < 0:
		diag.Printf(v.sink, "* buffer length %d is negative", n)
		n = 0
	}
	v.length = n
	return n
}
