package snapshot

import (
	"sync"

	"github.com/dshills/textbuf/pool"
)

// Syncable is the fork primitive a chain's buffer type must provide:
// overwrite the receiver's content with src's. A plain deep copy
// satisfies this trivially; the replay package provides a variant that
// can instead replay a compacted diff window.
type Syncable[T any] interface {
	SyncFrom(src T)
}

// record is one version in a chain. privateCopy marks a record whose
// buffer is exclusively owned — never aliased by any other record — and
// therefore safe to return to the pool when the record is abandoned.
type record[T any] struct {
	buf         T
	privateCopy bool
}

// Chain owns a record chain for one top-level storage. Outside any
// Session, Read/Write operate directly on the chain's head: writes
// promote the head to a private copy if it isn't already one ("promote
// or create a top-level private record").
type Chain[T Syncable[T]] struct {
	pool pool.Pool[T]

	mu   sync.Mutex
	head *record[T]
}

// NewChain creates a chain whose head is the given initial buffer,
// already treated as a private copy (nothing else can alias it yet).
func NewChain[T Syncable[T]](p pool.Pool[T], initial T) *Chain[T] {
	return &Chain[T]{pool: p, head: &record[T]{buf: initial, privateCopy: true}}
}

func (c *Chain[T]) currentHead() *record[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.head
}

// Read returns the chain's current committed buffer.
func (c *Chain[T]) Read() T {
	return c.currentHead().buf
}

// Write returns a buffer safe for in-place mutation, forking from the
// pool first if the current head isn't already a private copy.
func (c *Chain[T]) Write() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.head.privateCopy {
		buf := c.pool.Get()
		buf.SyncFrom(c.head.buf)
		c.head = &record[T]{buf: buf, privateCopy: true}
	}
	return c.head.buf
}

// Begin opens a snapshot context whose base is the chain's current head.
// The head is then shared with the session, so it stops being a private
// copy and the next top-level Write forks instead of mutating it in place.
func (c *Chain[T]) Begin() *Session[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.head.privateCopy = false
	return &Session[T]{chain: c, base: c.head}
}
