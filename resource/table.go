// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package resource

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/go-core-stack/embedcore/db"
	"github.com/go-core-stack/embedcore/errors"
)

type stateKey struct {
	Name string `bson:"name,omitempty"`
}

type stateEntry struct {
	State      *State    `bson:"state,omitempty"`
	Owner      uuid.UUID `bson:"owner,omitempty"`
	UpdateTime int64     `bson:"updateTime,omitempty"`
}

// StateTable persists named IdAllocator states in a store collection,
// allowing a restarted process to continue handing out identifiers
// without colliding with the ones it handed out before.
type StateTable struct {
	// collection object for the database store
	col db.StoreCollection

	// identity of this writer, recorded with every save
	owner uuid.UUID
}

// NewStateTable creates a state table on top of the collection, a nil
// owner is replaced with a random one
func NewStateTable(col db.StoreCollection, owner uuid.UUID) (*StateTable, error) {
	if col == nil {
		return nil, errors.Wrapf(errors.InvalidArgument, "state table requires a collection")
	}
	if owner == uuid.Nil {
		owner = uuid.New()
	}
	return &StateTable{
		col:   col,
		owner: owner,
	}, nil
}

// Owner returns the identity recorded by this table on save
func (t *StateTable) Owner() uuid.UUID {
	return t.owner
}

func (t *StateTable) newEntry(name string, a *IdAllocator) (*stateEntry, error) {
	if name == "" {
		return nil, errors.Wrapf(errors.InvalidArgument, "state name not specified")
	}
	if a == nil {
		return nil, errors.Wrapf(errors.InvalidArgument, "no allocator to store for %q", name)
	}
	return &stateEntry{
		State:      a.Snapshot(),
		Owner:      t.owner,
		UpdateTime: time.Now().Unix(),
	}, nil
}

// Create stores the state of the allocator under name, failing with
// AlreadyExists if some owner already stored a state under that name
func (t *StateTable) Create(ctx context.Context, name string, a *IdAllocator) error {
	entry, err := t.newEntry(name, a)
	if err != nil {
		return err
	}
	return t.col.InsertOne(ctx, &stateKey{Name: name}, entry)
}

// Save stores the current state of the allocator under name,
// replacing any previous state
func (t *StateTable) Save(ctx context.Context, name string, a *IdAllocator) error {
	entry, err := t.newEntry(name, a)
	if err != nil {
		return err
	}
	return t.col.UpdateOne(ctx, &stateKey{Name: name}, entry, true)
}

// Count returns the number of allocator states stored
func (t *StateTable) Count(ctx context.Context) (int64, error) {
	return t.col.Count(ctx, nil)
}

func (t *StateTable) find(ctx context.Context, name string) (*stateEntry, error) {
	entry := &stateEntry{}
	err := t.col.FindOne(ctx, &stateKey{Name: name}, entry)
	if err != nil {
		return nil, err
	}
	if entry.State == nil {
		return nil, errors.Wrapf(errors.NotFound, "no allocator state stored for %q", name)
	}
	return entry, nil
}

// Load creates an allocator from the state stored under name
func (t *StateTable) Load(ctx context.Context, name string, opts ...Option) (*IdAllocator, error) {
	entry, err := t.find(ctx, name)
	if err != nil {
		return nil, err
	}
	a := NewIdAllocator(entry.State.Base, opts...)
	if err := a.Restore(entry.State); err != nil {
		return nil, err
	}
	return a, nil
}

// LastWriter returns the owner that saved the state stored under name
func (t *StateTable) LastWriter(ctx context.Context, name string) (uuid.UUID, error) {
	entry, err := t.find(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	return entry.Owner, nil
}

// Delete removes the state stored under name
func (t *StateTable) Delete(ctx context.Context, name string) error {
	return t.col.DeleteOne(ctx, &stateKey{Name: name})
}
