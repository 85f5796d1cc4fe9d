// Package charsource provides the bulk-copy capability that bridges
// user-supplied sequences into the gap-buffer core without the core ever
// needing to know the concrete representation of the input.
//
// A Source is consulted in two steps: Validate checks that a requested
// subrange makes sense for this source (so a failing replace never mutates
// the destination buffer), then CopyInto performs the actual copy once the
// caller has confirmed Validate succeeded.
package charsource

import "errors"

// ErrInvalidSubrange indicates a requested [subStart, subEnd) subrange is
// not valid for the source being copied from.
var ErrInvalidSubrange = errors.New("charsource: invalid subrange")

// Source is the capability a gap-buffer replace consults to fill in newly
// inserted cells. Implementations must not retain dst beyond the call.
type Source interface {
	// Validate reports whether [subStart, subEnd) is a legal subrange for
	// this source. It performs no mutation and must be safe to call before
	// committing to an edit.
	Validate(subStart, subEnd int) error

	// CopyInto writes exactly subEnd-subStart runes into dst, starting at
	// dst[dstOffset]. The caller must have already called Validate with the
	// same subStart, subEnd and confirmed it returned nil.
	CopyInto(dst []rune, dstOffset, subStart, subEnd int)
}

// Char is a Source wrapping a single rune. It is valid only for the
// subrange [0, 1) (or the trivial empty subrange [0, 0)).
type Char rune

// Validate implements Source.
func (c Char) Validate(subStart, subEnd int) error {
	if subStart == subEnd {
		return nil
	}
	if subStart == 0 && subEnd == 1 {
		return nil
	}
	return ErrInvalidSubrange
}

// CopyInto implements Source.
func (c Char) CopyInto(dst []rune, dstOffset, subStart, subEnd int) {
	if subEnd > subStart {
		dst[dstOffset] = rune(c)
	}
}

// Runes is a Source backed directly by an owned rune slice, copied via a
// plain slice copy.
type Runes []rune

// Validate implements Source.
func (r Runes) Validate(subStart, subEnd int) error {
	if subStart < 0 || subEnd < subStart || subEnd > len(r) {
		return ErrInvalidSubrange
	}
	return nil
}

// CopyInto implements Source.
func (r Runes) CopyInto(dst []rune, dstOffset, subStart, subEnd int) {
	copy(dst[dstOffset:], r[subStart:subEnd])
}

// String is a convenience Source constructor backed by a Go string,
// decoded to runes once at construction time.
func String(s string) Runes {
	return Runes([]rune(s))
}

// CharReader is the minimal capability a buffer must expose to be used as
// a Source for another buffer's replace — the bridge described in spec
// section 4.1's third provider ("the buffer's own content").
type CharReader interface {
	Length() int
	GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int) error
}

// BufferSource adapts any CharReader (gapbuffer.Buffer and the types built
// on top of it all satisfy this through method promotion) into a Source,
// so one buffer's content can be replayed or copied into another without
// the core depending on any concrete buffer type.
type BufferSource struct {
	Reader CharReader
}

// Validate implements Source.
func (s BufferSource) Validate(subStart, subEnd int) error {
	if subStart < 0 || subEnd < subStart || subEnd > s.Reader.Length() {
		return ErrInvalidSubrange
	}
	return nil
}

// CopyInto implements Source.
func (s BufferSource) CopyInto(dst []rune, dstOffset, subStart, subEnd int) {
	if err := s.Reader.GetChars(subStart, subEnd, dst, dstOffset); err != nil {
		// Validate is required to have been called first with the same
		// arguments; reaching here means that contract was violated.
		panic("charsource: BufferSource.CopyInto called without a prior successful Validate: " + err.Error())
	}
}
