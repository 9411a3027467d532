// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package resource

import (
	"github.com/go-core-stack/embedcore/errors"
)

// State is the storable form of an IdAllocator
type State struct {
	Base Id     `bson:"base"`
	Bits []byte `bson:"bits,omitempty"`
}

// Snapshot returns a copy of the allocator state
func (a *IdAllocator) Snapshot() *State {
	s := &State{
		Base: a.base,
	}
	if len(a.bits) != 0 {
		s.Bits = make([]byte, len(a.bits))
		copy(s.Bits, a.bits)
	}
	return s
}

// Restore replaces the allocator state with the given one. The
// allocator is left unchanged if the state is invalid or the storage
// cannot be allocated.
func (a *IdAllocator) Restore(s *State) error {
	if s == nil {
		return errors.Wrapf(errors.InvalidArgument, "no state to restore")
	}
	if len(s.Bits)%ChunkSize != 0 {
		return errors.Wrapf(errors.InvalidArgument, "state size %d is not a multiple of chunk size %d", len(s.Bits), ChunkSize)
	}

	r := &IdAllocator{
		host: a.host,
		sink: a.sink,
	}
	if err := r.copyBits(s.Bits); err != nil {
		return err
	}

	a.Close()
	a.base = s.Base
	a.bits = r.bits
	return nil
}
