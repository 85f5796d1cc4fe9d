package gapbuffer

import (
	"fmt"

	"github.com/dshills/textbuf/charsource"
	"github.com/dshills/textbuf/rangeval"
)

// Buffer is the gap-buffer engine: a contiguous []rune array with a
// movable gap [gapStart, gapEnd) of unused cells. Logical index i maps to
// physical index i if i < gapStart, else i + (gapEnd - gapStart).
//
// A Buffer is not safe for concurrent use; the core is single-threaded per
// logical snapshot context (see the snapshot package for the layer that
// arbitrates concurrent contexts).
type Buffer struct {
	data       []rune
	gapStart   int
	gapEnd     int
	minGap     int
	generation uint64
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{minGap: DefaultMinimumGapLength}
	for _, opt := range opts {
		opt(b)
	}
	b.data = make([]rune, b.minGap)
	b.gapStart = 0
	b.gapEnd = b.minGap
	return b
}

// FromRunes creates a buffer initialized with a copy of src.
func FromRunes(src []rune, opts ...Option) *Buffer {
	b := &Buffer{minGap: DefaultMinimumGapLength}
	for _, opt := range opts {
		opt(b)
	}
	total := len(src) + b.minGap
	b.data = make([]rune, total)
	copy(b.data, src)
	b.gapStart = len(src)
	b.gapEnd = total
	return b
}

// FromString creates a buffer initialized with the runes of s.
func FromString(s string, opts ...Option) *Buffer {
	return FromRunes([]rune(s), opts...)
}

// Length returns the number of logical characters in the buffer.
func (b *Buffer) Length() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// Generation returns a counter incremented on every successful Replace.
// It is cheap to compare and lets higher layers detect "unchanged since"
// without a content comparison.
func (b *Buffer) Generation() uint64 {
	return b.generation
}

// physical translates a logical index into a physical array index. The
// caller must have already validated i is in range.
func (b *Buffer) physical(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + (b.gapEnd - b.gapStart)
}

// Get returns the character at logical index i.
func (b *Buffer) Get(i int) (rune, error) {
	if i < 0 || i >= b.Length() {
		return 0, ErrOffsetOutOfRange
	}
	return b.data[b.physical(i)], nil
}

// GetChars copies the logical range [srcBegin, srcEnd) into dst starting
// at dst[dstBegin].
func (b *Buffer) GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int) error {
	length := b.Length()
	if srcBegin < 0 || srcEnd < srcBegin || srcEnd > length {
		return ErrInvalidRange
	}
	n := srcEnd - srcBegin
	if dstBegin < 0 || dstBegin > len(dst)-n {
		return ErrInvalidDestination
	}
	copyLogical(b.data, b.gapStart, b.gapEnd, srcBegin, srcEnd, dst, dstBegin)
	return nil
}

// copyLogical copies the logical range [srcBegin, srcEnd) of a gap-buffer
// array into dst at dstBegin, handling the three cases: entirely before
// the gap, entirely after it, or straddling it. It does not validate its
// arguments; callers must do so first.
func copyLogical(data []rune, gapStart, gapEnd, srcBegin, srcEnd int, dst []rune, dstBegin int) {
	if srcBegin >= srcEnd {
		return
	}
	switch {
	case srcEnd <= gapStart:
		copy(dst[dstBegin:], data[srcBegin:srcEnd])
	case srcBegin >= gapStart:
		off := gapEnd - gapStart
		copy(dst[dstBegin:], data[srcBegin+off:srcEnd+off])
	default:
		n1 := gapStart - srcBegin
		copy(dst[dstBegin:dstBegin+n1], data[srcBegin:gapStart])
		off := gapEnd - gapStart
		copy(dst[dstBegin+n1:], data[gapEnd:srcEnd+off])
	}
}

// Replace is the core edit primitive. It replaces the logical range r
// (resolving the unspecified sentinel to the full content) with the
// [subStart, subEnd) subrange copied from source. Passing a nil source
// with subStart == subEnd performs a pure deletion.
func (b *Buffer) Replace(r rangeval.Range, source charsource.Source, subStart, subEnd int) error {
	length := b.Length()
	rr := r.Resolve(length)
	if !rr.IsValid() || rr.Start < 0 || rr.End > length {
		return ErrInvalidRange
	}
	if subStart < 0 || subEnd < subStart {
		return ErrInvalidRange
	}
	if source == nil {
		if subEnd != subStart {
			return ErrInvalidRange
		}
	} else if err := source.Validate(subStart, subEnd); err != nil {
		return err
	}

	start, end := rr.Start, rr.End
	delLen := end - start
	insLen := subEnd - subStart
	if delLen == 0 && insLen == 0 {
		return nil
	}

	gapLen := b.gapEnd - b.gapStart
	newGapLen := gapLen + delLen - insLen
	if newGapLen < b.minGap {
		b.grow(start, end, length, insLen)
	} else {
		b.slideAndDelete(start, end, delLen)
	}

	if insLen > 0 {
		source.CopyInto(b.data, b.gapStart, subStart, subEnd)
	}
	b.gapStart += insLen
	b.generation++
	return nil
}

// grow reallocates the backing array, placing the retained prefix
// [0, start) at the head, the retained suffix [end, length) at the tail,
// and the entire new gap (sized to absorb insLen plus a fresh minimumGap
// of headroom) in between, adjacent to the edit point.
func (b *Buffer) grow(start, end, length, insLen int) {
	delLen := end - start
	need := length - delLen + insLen + b.minGap*2
	newCap := len(b.data) * 2
	if need > newCap {
		newCap = need
	}
	newData := make([]rune, newCap)
	copyLogical(b.data, b.gapStart, b.gapEnd, 0, start, newData, 0)
	suffixLen := length - end
	newGapEnd := newCap - suffixLen
	copyLogical(b.data, b.gapStart, b.gapEnd, end, length, newData, newGapEnd)

	b.data = newData
	b.gapStart = start
	b.gapEnd = newGapEnd
}

// slideAndDelete moves the gap to the edit site (if needed) and grows it
// to absorb the deleted range, without reallocating.
func (b *Buffer) slideAndDelete(start, end, delLen int) {
	switch {
	case b.gapStart < start:
		shift := start - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+shift], b.data[b.gapEnd:b.gapEnd+shift])
		b.gapStart += shift
		b.gapEnd += shift
		b.gapEnd += delLen
	case b.gapStart > end:
		shift := b.gapStart - end
		copy(b.data[b.gapEnd-shift:b.gapEnd], b.data[end:b.gapStart])
		b.gapStart -= shift
		b.gapEnd -= shift
		b.gapStart -= delLen
	default:
		// The gap already sits inside [start, end]; absorb whatever
		// logical characters remain on each side of it.
		leftoverRight := end - b.gapStart
		b.gapStart = start
		b.gapEnd += leftoverRight
	}
}

// Text returns the buffer's full contents.
func (b *Buffer) Text() string {
	length := b.Length()
	runes := make([]rune, length)
	copyLogical(b.data, b.gapStart, b.gapEnd, 0, length, runes, 0)
	return string(runes)
}

// String implements fmt.Stringer with the spec's <TypeName>("<contents>")
// rendering.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%q)", b.Text())
}

// Clone returns a deep copy of b, independent of the original.
func (b *Buffer) Clone() *Buffer {
	data := make([]rune, len(b.data))
	copy(data, b.data)
	return &Buffer{
		data:       data,
		gapStart:   b.gapStart,
		gapEnd:     b.gapEnd,
		minGap:     b.minGap,
		generation: b.generation,
	}
}

// SyncFrom overwrites b's content with a deep copy of src's. It
// implements the snapshot package's Syncable constraint for the plain
// (non-replaying) fork strategy, which is always a full copy.
func (b *Buffer) SyncFrom(src *Buffer) {
	b.CloneFrom(src)
}

// CloneFrom overwrites b's content with a deep copy of src's, for reuse of
// a pooled instance without reallocating b itself.
func (b *Buffer) CloneFrom(src *Buffer) {
	if cap(b.data) < len(src.data) {
		b.data = make([]rune, len(src.data))
	} else {
		b.data = b.data[:len(src.data)]
	}
	copy(b.data, src.data)
	b.gapStart = src.gapStart
	b.gapEnd = src.gapEnd
	b.minGap = src.minGap
	b.generation = src.generation
}
