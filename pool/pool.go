// Package pool provides buffer reuse for the snapshot layer's fork path.
// Two variants are offered: Unpooled, which allocates fresh on every
// request and drops returns, and SingleSlot, a CAS-guarded single cached
// instance. Neither variant ever hands the same instance to two
// concurrent requesters.
package pool

import "sync/atomic"

// Pool is consulted whenever a version record needs a fresh buffer. The
// snapshot package returns a buffer to it only when a session discards a
// pending record that is still a private copy; buffers superseded by a
// commit are not returned.
type Pool[T any] interface {
	Get() T
	Put(v T)
}

// Unpooled allocates on every Get and discards every Put. It is the
// correct choice when pooling overhead isn't worth it, or as a baseline
// to compare SingleSlot against.
type Unpooled[T any] struct {
	New func() T
}

// Get returns a freshly allocated T.
func (p Unpooled[T]) Get() T {
	return p.New()
}

// Put discards v.
func (p Unpooled[T]) Put(v T) {}

// SingleSlot caches exactly one returned instance, taken by the first
// subsequent requester; all others fall back to allocation. The slot is
// guarded by atomic compare-and-swap so concurrent Get/Put pairs can
// never hand the same instance to two requesters.
type SingleSlot[T any] struct {
	// New allocates a fresh T when the slot is empty.
	New func() T

	slot atomic.Pointer[T]
}

// Get takes the cached instance if one is present, else allocates.
func (p *SingleSlot[T]) Get() T {
	for {
		cur := p.slot.Load()
		if cur == nil {
			return p.New()
		}
		if p.slot.CompareAndSwap(cur, nil) {
			return *cur
		}
	}
}

// Put offers v as the cached instance. If the slot is already occupied
// (a racing Put won), v is dropped rather than overwriting the occupant.
func (p *SingleSlot[T]) Put(v T) {
	p.slot.CompareAndSwap(nil, &v)
}
