// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage provides the append-only object stores that hold the
// objects of a shape, and the handles that refer to them.
//
// Identity is the central concept here: a [Handle] refers to an object by
// identity, not by value. Two objects can be equal in every field and still
// be distinct objects of a shape; conversely the same object can be reached
// through many paths and must compare equal through all of them. Stores hand
// out identities through a two-phase protocol: [Store.Reserve] allocates a
// fresh identity with no content bound, enabling forward references, and
// [Store.Insert] binds the content exactly once.
//
// Identities are never reused and objects are never removed, so a handle,
// once its content is bound, stays valid for the lifetime of its store.
package storage

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrIdentityReuse is returned when inserting content for an identity
	// that already has content bound. This signals a bug in the calling
	// code, not bad user input.
	ErrIdentityReuse = errors.New("content already inserted for this identity")

	// ErrNotFound is returned when a handle does not belong to the store
	// it is used with.
	ErrNotFound = errors.New("handle not found in this store")
)

// slot holds the canonical content for one identity. There is exactly one
// slot per identity ever issued, which is what makes handle comparison an
// identity comparison.
type slot[T any] struct {
	owner   *Store[T]
	id      uint64
	content *T
}

// Handle is a reference to an object stored in a [Store].
//
// Handles compare by identity: two handles are equal if and only if they
// refer to the same stored object, regardless of whether the contents are
// equal as values. Handles are cheap to copy and copying never duplicates
// the referenced object.
//
// The zero Handle refers to nothing.
type Handle[T any] struct {
	slot *slot[T]
}

// ID returns the numeric identity of the referenced object, unique within
// its store. It panics on the zero handle.
func (h Handle[T]) ID() uint64 {
	if h.slot == nil {
		panic("storage: ID of zero handle")
	}
	return h.slot.id
}

// IsZero returns whether this is the zero handle, referring to nothing.
func (h Handle[T]) IsZero() bool {
	return h.slot == nil
}

// Value returns the content of the referenced object.
//
// Value panics if the handle is the zero handle, or if the identity was
// reserved but no content has been inserted yet. Both are bugs in the
// calling code: a reservation must not be dereferenced before the insert
// that completes it.
func (h Handle[T]) Value() *T {
	if h.slot == nil {
		panic("storage: dereference of zero handle")
	}
	if h.slot.content == nil {
		panic(fmt.Sprintf(
			"storage: dereference of reserved but uninserted identity %d",
			h.slot.id))
	}
	return h.slot.content
}

// Store is an append-only repository of objects of one type.
//
// Each store issues identities from its own monotonic counter; there is no
// identity space shared across types or across stores. The zero Store is
// ready to use.
type Store[T any] struct {
	slots []*slot[T]
	next  uint64
}

// Reserve allocates a fresh identity and returns a handle to it, without
// binding any content. The handle can be embedded in other objects right
// away, which is how forward references to objects that are not fully built
// yet are expressed. It must not be dereferenced until [Store.Insert]
// completes it.
func (s *Store[T]) Reserve() Handle[T] {
	sl := &slot[T]{owner: s, id: s.next}
	s.next++
	s.slots = append(s.slots, sl)
	return Handle[T]{slot: sl}
}

// Insert binds content to a previously reserved identity.
//
// It returns [ErrNotFound] if the handle does not come from this store, and
// [ErrIdentityReuse] if content has already been bound to the identity.
// Objects are immutable once inserted; there is no way to rebind.
func (s *Store[T]) Insert(h Handle[T], content T) error {
	if h.slot == nil || h.slot.owner != s {
		return ErrNotFound
	}
	if h.slot.content != nil {
		return fmt.Errorf("identity %d: %w", h.slot.id, ErrIdentityReuse)
	}
	h.slot.content = &content
	return nil
}

// Get returns the content bound to the given handle.
//
// It returns [ErrNotFound] if the handle does not come from this store,
// which can only happen when a handle from one modeling session is misused
// against another. Get panics on a reserved but uninserted identity, like
// [Handle.Value].
func (s *Store[T]) Get(h Handle[T]) (*T, error) {
	if h.slot == nil || h.slot.owner != s {
		return nil, ErrNotFound
	}
	return h.Value(), nil
}

// Len returns the number of identities issued by this store, inserted or
// not.
func (s *Store[T]) Len() int {
	return len(s.slots)
}

// All returns an iterator over all handles issued by this store, in
// reservation order. Handles whose content has not been inserted yet are
// included.
func (s *Store[T]) All() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for _, sl := range s.slots {
			if !yield(Handle[T]{slot: sl}) {
				return
			}
		}
	}
}
