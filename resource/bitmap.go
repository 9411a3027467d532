// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Initial reference and motivation taken from
// https://github.com/cilium/ipam/blob/master/service/allocator/bitmap.go
// However, storage here grows in fixed chunks on demand, and is
// obtained from a HostAllocator so that exhaustion of a small heap can
// be reported instead of crashing

package resource

import (
	"math"
	"math/bits"

	"github.com/go-core-stack/embedcore/diag"
	"github.com/go-core-stack/embedcore/errors"
)

// Id is an identifier handed out by the IdAllocator
type Id uint16

// ChunkSize is the number of bytes the bitmap grows by when exhausted
const ChunkSize = 4

var defaultSink = diag.NewLogSink(nil)

// IdAllocator hands out the lowest free identifier starting at a
// configured base, tracking used identifiers in a bitmap where bit i
// of byte j represents identifier base + j*8 + i.
//
// Example:
//
//	ids := resource.NewIdAllocator(100)
//	ids.Allocate() // 100
//	ids.Allocate() // 101
//	ids.Allocate() // 102
//	ids.Release(101)
//	ids.Allocate() // 101, recycled
//	ids.Allocate() // 103
//
// The bitmap never shrinks while the allocator is in use, even if all
// the identifiers are released. The zero value is an allocator with
// base 0 backed by the Go heap.
//
// An IdAllocator is not safe for concurrent use.
type IdAllocator struct {
	base Id
	bits []byte
	host HostAllocator
	sink diag.Sink
}

// Option configures an IdAllocator
type Option func(*IdAllocator)

// WithHostAllocator sets the allocator providing the bitmap storage
func WithHostAllocator(host HostAllocator) Option {
	return func(a *IdAllocator) {
		a.host = host
	}
}

// WithDiagnostics sets the sink receiving warnings on allocation
// failures and invalid releases, use diag.Discard to silence them
func WithDiagnostics(sink diag.Sink) Option {
	return func(a *IdAllocator) {
		a.sink = sink
	}
}

// NewIdAllocator creates an allocator handing out identifiers starting
// at base. No storage is touched until the first Allocate.
func NewIdAllocator(base Id, opts ...Option) *IdAllocator {
	a := &IdAllocator{
		base: base,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *IdAllocator) hostAllocator() HostAllocator {
	if a.host == nil {
		return HeapAllocator
	}
	return a.host
}

func (a *IdAllocator) diagnostics() diag.Sink {
	if a.sink == nil {
		return defaultSink
	}
	return a.sink
}

// highest offset from base that still fits in an Id
func (a *IdAllocator) maxOffset() int {
	return math.MaxUint16 - int(a.base)
}

// Base returns the first identifier the allocator can hand out
func (a *IdAllocator) Base() Id {
	return a.base
}

// Capacity returns the size of the bitmap in bytes
func (a *IdAllocator) Capacity() int {
	return len(a.bits)
}

// InUse returns the number of identifiers currently allocated
func (a *IdAllocator) InUse() int {
	count := 0
	for _, b := range a.bits {
		count += bits.OnesCount8(b)
	}
	return count
}

// IsAllocated reports whether id is currently handed out
func (a *IdAllocator) IsAllocated(id Id) bool {
	if id < a.base {
		return false
	}
	off := int(id - a.base)
	if off/8 >= len(a.bits) {
		return false
	}
	return a.bits[off/8]&(1<<(off%8)) != 0
}

// claim marks the first clear bit, scanning bytes from the lowest
// index and bits from the least significant
func (a *IdAllocator) claim() (Id, bool) {
	for i, b := range a.bits {
		if b == 0xff {
			continue
		}
		bit := bits.TrailingZeros8(^b)
		off := i*8 + bit
		if off > a.maxOffset() {
			return 0, false
		}
		a.bits[i] |= 1 << bit
		return a.base + Id(off), true
	}
	return 0, false
}

// grow extends the bitmap by one chunk, leaving it untouched if the
// host cannot provide the memory
func (a *IdAllocator) grow() error {
	if len(a.bits)*8 > a.maxOffset() {
		return errors.Wrapf(errors.ResourceExhausted, "no identifier left above base %d", a.base)
	}
	size := len(a.bits) + ChunkSize
	host := a.hostAllocator()
	buf, err := host.Alloc(size)
	if err != nil {
		diag.Printf(a.diagnostics(), "* IdAllocator alloc of %d out of memory", size)
		return errors.Wrapf(errors.ResourceExhausted, "id allocator grow to %d bytes: %s", size, err)
	}
	n := copy(buf, a.bits)
	clear(buf[n:])
	if a.bits != nil {
		host.Free(a.bits)
	}
	a.bits = buf
	return nil
}

// Allocate returns the lowest free identifier, growing the bitmap by
// one chunk if every identifier it covers is in use. On failure the
// allocator is left as it was, and the call can be retried later.
func (a *IdAllocator) Allocate() (Id, error) {
	// a fresh chunk always has a clear bit, so one growth is enough
	for grown := false; ; grown = true {
		if id, ok := a.claim(); ok {
			return id, nil
		}
		if grown {
			return 0, errors.Wrapf(errors.ResourceExhausted, "no identifier left above base %d", a.base)
		}
		if err := a.grow(); err != nil {
			return 0, err
		}
	}
}

// Release marks id as free for reuse. Releasing an identifier outside
// the range covered by the bitmap or one that is already free changes
// nothing and is reported to the diagnostics sink.
func (a *IdAllocator) Release(id Id) error {
	if id < a.base || int(id-a.base)/8 >= len(a.bits) {
		diag.Printf(a.diagnostics(), "* IdAllocator invalid release of %d, base %d size %d", id, a.base, len(a.bits))
		return errors.Wrapf(errors.OutOfRange, "id %d outside allocator range", id)
	}
	off := int(id - a.base)
	mask := byte(1) << (off % 8)
	if a.bits[off/8]&mask == 0 {
		diag.Printf(a.diagnostics(), "* IdAllocator release of free id %d", id)
		return errors.Wrapf(errors.NotFound, "id %d is not allocated", id)
	}
	a.bits[off/8] &^= mask
	return nil
}

// copyBits replaces the bitmap with a private copy of src
func (a *IdAllocator) copyBits(src []byte) error {
	if len(src) == 0 {
		return nil
	}
	buf, err := a.hostAllocator().Alloc(len(src))
	if err != nil {
		diag.Printf(a.diagnostics(), "* IdAllocator alloc of %d out of memory", len(src))
		return errors.Wrapf(errors.ResourceExhausted, "id allocator copy of %d bytes: %s", len(src), err)
	}
	copy(buf, src)
	a.bits = buf
	return nil
}

// Clone returns an independent copy of the allocator, sharing no
// storage with it
func (a *IdAllocator) Clone() (*IdAllocator, error) {
	c := &IdAllocator{
		base: a.base,
		host: a.host,
		sink: a.sink,
	}
	if err := c.copyBits(a.bits); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom releases the current storage and makes the allocator an
// independent copy of src. If the copy cannot be allocated, the
// allocator ends up empty with the base of src.
func (a *IdAllocator) CopyFrom(src *IdAllocator) error {
	if src == a {
		return nil
	}
	a.Close()
	a.base = src.base
	return a.copyBits(src.bits)
}

// Move transfers the storage to a new allocator, leaving this one
// empty with the same base
func (a *IdAllocator) Move() *IdAllocator {
	m := &IdAllocator{
		base: a.base,
		bits: a.bits,
		host: a.host,
		sink: a.sink,
	}
	a.bits = nil
	return m
}

// Close gives the storage back to the host allocator, every
// identifier is considered free afterwards
func (a *IdAllocator) Close() {
	if a.bits != nil {
		a.hostAllocator().Free(a.bits)
		a.bits = nil
	}
}
