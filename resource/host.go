// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package resource

import (
	"github.com/go-core-stack/embedcore/errors"
)

// HostAllocator provides the backing memory for the resource
// allocators. A failing Alloc is a recoverable condition and must be
// reported through the returned error, never by panicking.
type HostAllocator interface {
	// Alloc returns a zero-initialized block of exactly n bytes
	Alloc(n int) ([]byte, error)

	// Free gives back a block previously returned by Alloc
	Free(b []byte)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(errors.InvalidArgument, "invalid alloc size %d", n)
	}
	return make([]byte, n), nil
}

func (heapAllocator) Free([]byte) {}

// HeapAllocator allocates from the Go heap and never reports failure
var HeapAllocator HostAllocator = heapAllocator{}

// BudgetAllocator hands out memory from a fixed byte budget, modelling
// the small heap of a microcontroller. Requests beyond the remaining
// budget fail with ResourceExhausted.
//
// A BudgetAllocator is not safe for concurrent use.
type BudgetAllocator struct {
	limit int
	used  int
}

// NewBudgetAllocator creates an allocator with limit bytes available
func NewBudgetAllocator(limit int) *BudgetAllocator {
	return &BudgetAllocator{
		limit: limit,
	}
}

func (b *BudgetAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(errors.InvalidArgument, "invalid alloc size %d", n)
	}
	if n > b.limit-b.used {
		return nil, errors.Wrapf(errors.ResourceExhausted, "alloc of %d bytes exceeds remaining %d", n, b.limit-b.used)
	}
	b.used += n
	return make([]byte, n), nil
}

func (b *BudgetAllocator) Free(buf []byte) {
	b.used -= len(buf)
	if b.used < 0 {
		b.used = 0
	}
}

// InUse returns the number of bytes currently handed out
func (b *BudgetAllocator) InUse() int {
	return b.used
}

// Remaining returns the number of bytes still available
func (b *BudgetAllocator) Remaining() int {
	return b.limit - b.used
}
