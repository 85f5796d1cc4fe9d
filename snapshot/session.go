package snapshot

// Session is a transactional read/write context: a snapshot of its
// parent's state at Begin time, plus any writes made since. Sessions may
// nest arbitrarily; siblings begun from the same parent (or chain) never
// observe each other's pending writes, only whatever was committed
// before each began.
type Session[T Syncable[T]] struct {
	chain  *Chain[T]
	parent *Session[T]
	base   *record[T]
	own    *record[T]
}

// currentRecord returns the record this session currently reads from:
// its own pending record if it has written, else its base.
func (s *Session[T]) currentRecord() *record[T] {
	if s.own != nil {
		return s.own
	}
	return s.base
}

// Begin opens a nested session whose base is s's current state. That
// record is then shared with the nested session, so it stops being a
// private copy and s's next Write forks instead of mutating it in place.
func (s *Session[T]) Begin() *Session[T] {
	cur := s.currentRecord()
	cur.privateCopy = false
	return &Session[T]{chain: s.chain, parent: s, base: cur}
}

// Read returns this session's currently visible buffer.
func (s *Session[T]) Read() T {
	return s.currentRecord().buf
}

// Write returns a buffer private to this session, forking one from the
// pool via Syncable on first call, and again whenever the session's
// current record is no longer a private copy.
func (s *Session[T]) Write() T {
	if s.own == nil || !s.own.privateCopy {
		buf := s.chain.pool.Get()
		buf.SyncFrom(s.currentRecord().buf)
		s.own = &record[T]{buf: buf, privateCopy: true}
	}
	return s.own.buf
}

// Commit merges this session's pending record, if any, into its parent
// (or the chain, for a top-level session). It fails with ErrStaleBase if
// the parent has moved on since this session's Begin — a concurrent
// sibling committed first. A session with no pending writes commits as a
// no-op. After a successful Commit the session has no pending writes of
// its own; a further Write forks a new private record from the (now
// updated) parent state.
//
// The record superseded by this commit is deliberately never returned to
// the pool, even if it was itself a private copy: another, still-live
// sibling session may hold that exact record as its base, and recycling
// its buffer out from under that reference would corrupt the sibling's
// view. Only Discard of a record that was never shared is safe to pool.
func (s *Session[T]) Commit() error {
	if s.own == nil {
		return nil
	}
	if s.parent != nil {
		if s.parent.currentRecord() != s.base {
			return ErrStaleBase
		}
		committed := &record[T]{buf: s.own.buf, privateCopy: false}
		s.parent.own = committed
		s.base = committed
		s.own = nil
		return nil
	}

	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	if s.chain.head != s.base {
		return ErrStaleBase
	}
	committed := &record[T]{buf: s.own.buf, privateCopy: false}
	s.chain.head = committed
	s.base = committed
	s.own = nil
	return nil
}

// Discard abandons this session's pending writes, if any, without
// affecting its parent. The discarded record's buffer is returned to the
// pool only while it is still a private copy; a record that a nested
// session has taken as its base is no longer private and is not pooled.
func (s *Session[T]) Discard() {
	if s.own != nil && s.own.privateCopy {
		s.chain.pool.Put(s.own.buf)
	}
	s.own = nil
}
