package textbuf

import (
	"fmt"

	"github.com/dshills/textbuf/charsource"
	"github.com/dshills/textbuf/marks"
	"github.com/dshills/textbuf/pool"
	"github.com/dshills/textbuf/rangeval"
	"github.com/dshills/textbuf/replay"
	"github.com/dshills/textbuf/snapshot"
)

// Buffer is the constraint a storage's underlying buffer type must
// satisfy: the marks-aware read/write surface, plus the snapshot
// package's fork primitive. *marks.Buffer and *replay.Buffer both
// satisfy it.
type Buffer[T any] interface {
	Length() int
	Text() string
	String() string
	Get(i int, sourceMark marks.Mark) (rune, error)
	GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int, sourceMark marks.Mark) error
	Replace(r rangeval.Range, source charsource.Source, subStart, subEnd int, sourceMark marks.Mark) error
	MarkRange(r rangeval.Range, newMark marks.Mark, sourceMark marks.Mark) error
	Unmark(mark marks.Mark)
	GetRangeForMark(mark marks.Mark, sourceMark marks.Mark) (rangeval.Range, error)
	GetMarksIntersecting(r rangeval.Range, sourceMark marks.Mark, predicate func(marks.Mark, rangeval.Range) any) ([]any, error)
	snapshot.Syncable[T]
}

// view is satisfied by both *snapshot.Chain[T] and *snapshot.Session[T]:
// whatever currently resolves reads and whatever currently resolves
// writes, without Storage or Snapshot needing to know which.
type view[T Buffer[T]] interface {
	Read() T
	Write() T
}

// Storage is the top-level facade: TextStorage (§6) wired over a version
// chain. Outside any Begin'd snapshot, reads see the latest committed
// state and writes promote-or-create a top-level private record.
type Storage[T Buffer[T]] struct {
	chain        *snapshot.Chain[T]
	marksEnabled bool
}

// NewTextStorage creates a plain (non-replaying) TextStorage.
func NewTextStorage(opts ...Option) *Storage[*marks.Buffer] {
	cfg := newConfig(opts)
	initial := marks.FromString(cfg.initial, cfg.gapOpts...)
	p := pool.Pool[*marks.Buffer](pool.Unpooled[*marks.Buffer]{
		New: func() *marks.Buffer { return marks.New(cfg.gapOpts...) },
	})
	return &Storage[*marks.Buffer]{
		chain:        snapshot.NewChain[*marks.Buffer](p, initial),
		marksEnabled: cfg.marksEnabled,
	}
}

// NewReplayingTextStorage creates a TextStorage over replaying buffers
// (§4.5), which track a compacted diff window of their edits. Each fork
// takes a freshly allocated buffer from an Unpooled pool; no diff window
// was ever recorded against a fresh buffer, so its SyncFrom does a full
// copy and the targeted replay path is not taken.
func NewReplayingTextStorage(opts ...Option) *Storage[*replay.Buffer] {
	cfg := newConfig(opts)
	initial := replay.FromString(cfg.initial, cfg.gapOpts...)
	p := pool.Pool[*replay.Buffer](pool.Unpooled[*replay.Buffer]{
		New: func() *replay.Buffer { return replay.New(cfg.gapOpts...) },
	})
	return &Storage[*replay.Buffer]{
		chain:        snapshot.NewChain[*replay.Buffer](p, initial),
		marksEnabled: cfg.marksEnabled,
	}
}

func (s *Storage[T]) Length() int {
	return length[T](s.chain)
}

func (s *Storage[T]) Get(index int, sourceMark marks.Mark) (rune, error) {
	return get[T](s.chain, s.marksEnabled, index, sourceMark)
}

func (s *Storage[T]) GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int, sourceMark marks.Mark) error {
	return getChars[T](s.chain, s.marksEnabled, srcBegin, srcEnd, dst, dstBegin, sourceMark)
}

// ReplaceChar replaces r with a single character — the §6 "replace(range,
// charReplacement, sourceMark?)" overload.
func (s *Storage[T]) ReplaceChar(r rangeval.Range, c rune, sourceMark marks.Mark) error {
	return replaceOp[T](s.chain, s.marksEnabled, r, charsource.Char(c), 0, 1, sourceMark)
}

// Replace replaces r with the [subStart, subEnd) subrange of source — the
// §6 "replace(range, value, valueRange, charSource, sourceMark?)" overload.
func (s *Storage[T]) Replace(r rangeval.Range, source charsource.Source, subStart, subEnd int, sourceMark marks.Mark) error {
	return replaceOp[T](s.chain, s.marksEnabled, r, source, subStart, subEnd, sourceMark)
}

func (s *Storage[T]) MarkRange(r rangeval.Range, newMark marks.Mark, sourceMark marks.Mark) error {
	return markRange[T](s.chain, s.marksEnabled, r, newMark, sourceMark)
}

func (s *Storage[T]) Unmark(mark marks.Mark) error {
	return unmark[T](s.chain, s.marksEnabled, mark)
}

func (s *Storage[T]) GetRangeForMark(mark marks.Mark, sourceMark marks.Mark) (rangeval.Range, error) {
	return getRangeForMark[T](s.chain, s.marksEnabled, mark, sourceMark)
}

func (s *Storage[T]) GetMarksIntersecting(r rangeval.Range, sourceMark marks.Mark, predicate func(marks.Mark, rangeval.Range) any) ([]any, error) {
	return getMarksIntersecting[T](s.chain, s.marksEnabled, r, sourceMark, predicate)
}

// Begin opens a snapshot context: a transactional view that may be
// applied (Commit) or Discarded without affecting this storage until
// then.
func (s *Storage[T]) Begin() *Snapshot[T] {
	return &Snapshot[T]{session: s.chain.Begin(), marksEnabled: s.marksEnabled}
}

func (s *Storage[T]) String() string {
	return fmt.Sprintf("TextStorage(%q)", s.chain.Read().Text())
}

// Snapshot is a transactional read/write context opened by Storage.Begin
// or by another Snapshot's Begin. Until Commit, its writes are invisible
// to its parent; Discard abandons them.
type Snapshot[T Buffer[T]] struct {
	session      *snapshot.Session[T]
	marksEnabled bool
}

func (s *Snapshot[T]) Length() int {
	return length[T](s.session)
}

func (s *Snapshot[T]) Get(index int, sourceMark marks.Mark) (rune, error) {
	return get[T](s.session, s.marksEnabled, index, sourceMark)
}

func (s *Snapshot[T]) GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int, sourceMark marks.Mark) error {
	return getChars[T](s.session, s.marksEnabled, srcBegin, srcEnd, dst, dstBegin, sourceMark)
}

func (s *Snapshot[T]) ReplaceChar(r rangeval.Range, c rune, sourceMark marks.Mark) error {
	return replaceOp[T](s.session, s.marksEnabled, r, charsource.Char(c), 0, 1, sourceMark)
}

func (s *Snapshot[T]) Replace(r rangeval.Range, source charsource.Source, subStart, subEnd int, sourceMark marks.Mark) error {
	return replaceOp[T](s.session, s.marksEnabled, r, source, subStart, subEnd, sourceMark)
}

func (s *Snapshot[T]) MarkRange(r rangeval.Range, newMark marks.Mark, sourceMark marks.Mark) error {
	return markRange[T](s.session, s.marksEnabled, r, newMark, sourceMark)
}

func (s *Snapshot[T]) Unmark(mark marks.Mark) error {
	return unmark[T](s.session, s.marksEnabled, mark)
}

func (s *Snapshot[T]) GetRangeForMark(mark marks.Mark, sourceMark marks.Mark) (rangeval.Range, error) {
	return getRangeForMark[T](s.session, s.marksEnabled, mark, sourceMark)
}

func (s *Snapshot[T]) GetMarksIntersecting(r rangeval.Range, sourceMark marks.Mark, predicate func(marks.Mark, rangeval.Range) any) ([]any, error) {
	return getMarksIntersecting[T](s.session, s.marksEnabled, r, sourceMark, predicate)
}

// Begin opens a nested snapshot context whose base is s's current state.
func (s *Snapshot[T]) Begin() *Snapshot[T] {
	return &Snapshot[T]{session: s.session.Begin(), marksEnabled: s.marksEnabled}
}

// Commit merges this snapshot's writes into its parent. See
// snapshot.Session.Commit for the stale-base failure mode.
func (s *Snapshot[T]) Commit() error {
	return s.session.Commit()
}

// Discard abandons this snapshot's writes without affecting its parent.
func (s *Snapshot[T]) Discard() {
	s.session.Discard()
}

func (s *Snapshot[T]) String() string {
	return fmt.Sprintf("Snapshot(%q)", s.session.Read().Text())
}

func length[T Buffer[T]](v view[T]) int {
	return v.Read().Length()
}

func get[T Buffer[T]](v view[T], marksEnabled bool, index int, sourceMark marks.Mark) (rune, error) {
	if sourceMark != nil && !marksEnabled {
		return 0, ErrMarksUnsupported
	}
	return v.Read().Get(index, sourceMark)
}

func getChars[T Buffer[T]](v view[T], marksEnabled bool, srcBegin, srcEnd int, dst []rune, dstBegin int, sourceMark marks.Mark) error {
	if sourceMark != nil && !marksEnabled {
		return ErrMarksUnsupported
	}
	return v.Read().GetChars(srcBegin, srcEnd, dst, dstBegin, sourceMark)
}

func replaceOp[T Buffer[T]](v view[T], marksEnabled bool, r rangeval.Range, source charsource.Source, subStart, subEnd int, sourceMark marks.Mark) error {
	if sourceMark != nil && !marksEnabled {
		return ErrMarksUnsupported
	}
	return v.Write().Replace(r, source, subStart, subEnd, sourceMark)
}

func markRange[T Buffer[T]](v view[T], marksEnabled bool, r rangeval.Range, newMark marks.Mark, sourceMark marks.Mark) error {
	if !marksEnabled {
		return ErrMarksUnsupported
	}
	return v.Write().MarkRange(r, newMark, sourceMark)
}

func unmark[T Buffer[T]](v view[T], marksEnabled bool, mark marks.Mark) error {
	if !marksEnabled {
		return ErrMarksUnsupported
	}
	v.Write().Unmark(mark)
	return nil
}

func getRangeForMark[T Buffer[T]](v view[T], marksEnabled bool, mark marks.Mark, sourceMark marks.Mark) (rangeval.Range, error) {
	if !marksEnabled {
		return rangeval.Range{}, ErrMarksUnsupported
	}
	return v.Read().GetRangeForMark(mark, sourceMark)
}

func getMarksIntersecting[T Buffer[T]](v view[T], marksEnabled bool, r rangeval.Range, sourceMark marks.Mark, predicate func(marks.Mark, rangeval.Range) any) ([]any, error) {
	if !marksEnabled {
		return nil, ErrMarksUnsupported
	}
	return v.Read().GetMarksIntersecting(r, sourceMark, predicate)
}
