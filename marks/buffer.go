package marks

import (
	"github.com/dshills/textbuf/charsource"
	"github.com/dshills/textbuf/gapbuffer"
	"github.com/dshills/textbuf/rangeval"
)

// Buffer layers a mark registry on top of a gap buffer. Every read/write
// operation accepts an optional sourceMark (nil when absent) whose
// absolute range establishes the coordinate origin for the call's range
// argument, per §4.3's coordinate resolution rule.
type Buffer struct {
	*gapbuffer.Buffer
	registry *Registry
}

// New creates an empty marks-aware buffer.
func New(opts ...gapbuffer.Option) *Buffer {
	return &Buffer{Buffer: gapbuffer.New(opts...), registry: NewRegistry()}
}

// FromString creates a marks-aware buffer initialized with s.
func FromString(s string, opts ...gapbuffer.Option) *Buffer {
	return &Buffer{Buffer: gapbuffer.FromString(s, opts...), registry: NewRegistry()}
}

// resolvePoint resolves a single logical index relative to sourceMark.
func (b *Buffer) resolvePoint(i int, sourceMark Mark) (int, error) {
	if sourceMark == nil {
		return i, nil
	}
	s, ok := b.registry.lookup(sourceMark)
	if !ok {
		return 0, ErrUnknownMark
	}
	return s.Start + i, nil
}

// Get returns the character at i, relative to sourceMark if given.
func (b *Buffer) Get(i int, sourceMark Mark) (rune, error) {
	abs, err := b.resolvePoint(i, sourceMark)
	if err != nil {
		return 0, err
	}
	return b.Buffer.Get(abs)
}

// GetChars copies [srcBegin, srcEnd), relative to sourceMark if given.
func (b *Buffer) GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int, sourceMark Mark) error {
	r, err := b.registry.resolveAbsolute(rangeval.New(srcBegin, srcEnd), sourceMark)
	if err != nil {
		return err
	}
	return b.Buffer.GetChars(r.Start, r.End, dst, dstBegin)
}

// Replace resolves r relative to sourceMark, applies the edit to the
// underlying gap buffer, and — on success — updates every registered
// mark's range per §4.3's update-on-edit rules.
func (b *Buffer) Replace(r rangeval.Range, source charsource.Source, subStart, subEnd int, sourceMark Mark) error {
	abs, err := b.resolveEditRange(r, sourceMark)
	if err != nil {
		return err
	}
	if err := b.Buffer.Replace(abs, source, subStart, subEnd); err != nil {
		return err
	}
	b.registry.applyEdit(abs.Start, abs.End, subEnd-subStart)
	return nil
}

// ResolveRange exposes resolveEditRange to other packages in this module
// (the replay package needs the absolute edit range to maintain its diff
// window independently of whatever sourceMark a caller used).
func (b *Buffer) ResolveRange(r rangeval.Range, sourceMark Mark) (rangeval.Range, error) {
	return b.resolveEditRange(r, sourceMark)
}

// resolveEditRange is like the registry's resolveAbsolute, but also
// resolves the unspecified sentinel against the buffer's own length when
// no sourceMark is given (the registry alone cannot do this, since it has
// no notion of buffer length).
func (b *Buffer) resolveEditRange(r rangeval.Range, sourceMark Mark) (rangeval.Range, error) {
	if sourceMark == nil {
		if r.IsUnspecified() {
			return rangeval.New(0, b.Buffer.Length()), nil
		}
		return r, nil
	}
	return b.registry.resolveAbsolute(r, sourceMark)
}

// MarkRange binds newMark to the range r (relative to sourceMark if
// given). It fails with ErrDuplicateMark if newMark is already bound.
func (b *Buffer) MarkRange(r rangeval.Range, newMark Mark, sourceMark Mark) error {
	if r.IsUnspecified() && sourceMark == nil {
		r = rangeval.New(0, b.Buffer.Length())
	}
	return b.registry.MarkRange(r, newMark, sourceMark)
}

// Unmark removes mark's entry; silent if absent.
func (b *Buffer) Unmark(mark Mark) {
	b.registry.Unmark(mark)
}

// GetRangeForMark returns mark's range, relative to sourceMark if given.
func (b *Buffer) GetRangeForMark(mark Mark, sourceMark Mark) (rangeval.Range, error) {
	return b.registry.GetRangeForMark(mark, sourceMark)
}

// GetMarksIntersecting enumerates marks intersecting r (relative to
// sourceMark if given); see Registry.GetMarksIntersecting.
func (b *Buffer) GetMarksIntersecting(r rangeval.Range, sourceMark Mark, predicate func(Mark, rangeval.Range) any) ([]any, error) {
	return b.registry.GetMarksIntersecting(r, sourceMark, predicate)
}

// Clone returns a deep copy of b, including an independent copy of its
// mark registry.
func (b *Buffer) Clone() *Buffer {
	reg := NewRegistry()
	reg.entries = make([]entry, len(b.registry.entries))
	copy(reg.entries, b.registry.entries)
	for mark, i := range b.registry.index {
		reg.index[mark] = i
	}
	return &Buffer{Buffer: b.Buffer.Clone(), registry: reg}
}

// SyncFrom overwrites b's content and mark registry with a deep copy of
// src's. It implements the snapshot package's Syncable constraint for
// the plain (non-replaying) fork strategy, which is always a full copy.
func (b *Buffer) SyncFrom(src *Buffer) {
	b.CloneFrom(src)
}

// CloneFrom overwrites b's content and mark registry with a deep copy of
// src's, for reuse of a pooled instance without reallocating b itself.
func (b *Buffer) CloneFrom(src *Buffer) {
	b.Buffer.CloneFrom(src.Buffer)
	reg := NewRegistry()
	reg.entries = make([]entry, len(src.registry.entries))
	copy(reg.entries, src.registry.entries)
	for mark, i := range src.registry.index {
		reg.index[mark] = i
	}
	b.registry = reg
}
