// Package rangeval provides the Range value used throughout textbuf to
// describe a span of a character sequence.
package rangeval

import "fmt"

// Range is an inclusive-start, exclusive-end index pair: [Start, End).
// Start == End denotes an empty range (an insertion point).
type Range struct {
	Start int
	End   int
}

// New creates a Range from start and end offsets.
func New(start, end int) Range {
	return Range{Start: start, End: end}
}

// Zero returns the zero range (0, 0): an empty range at the origin.
func Zero() Range {
	return Range{Start: 0, End: 0}
}

// Unspecified returns the sentinel meaning "default to the full current
// content". It is distinct from Zero.
func Unspecified() Range {
	return Range{Start: -1, End: -1}
}

// IsUnspecified reports whether r is the unspecified sentinel.
func (r Range) IsUnspecified() bool {
	return r.Start == -1 && r.End == -1
}

// IsZero reports whether r is the zero range (0, 0).
func (r Range) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// IsEmpty reports whether the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid reports whether Start <= End. The unspecified sentinel is valid.
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Len returns the length of the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Resolve returns r unchanged unless r is the unspecified sentinel, in which
// case it returns the full-content range (0, length).
func (r Range) Resolve(length int) Range {
	if r.IsUnspecified() {
		return Range{Start: 0, End: length}
	}
	return r
}

// Contains reports whether offset lies within [Start, End).
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsPoint reports whether offset lies within [Start, End], inclusive
// of both endpoints. This is the convention used for empty-range
// (point) intersection queries against marks.
func (r Range) ContainsPoint(offset int) bool {
	return offset >= r.Start && offset <= r.End
}

// Intersects reports whether r and other overlap: [a,b) and [c,d) intersect
// iff a < d && c < b.
func (r Range) Intersects(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Intersect returns the intersection of r and other, or an empty range
// (positioned at the later of the two starts) if they do not overlap.
func (r Range) Intersect(other Range) Range {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Range{Start: start, End: start}
	}
	return Range{Start: start, End: end}
}

// Shift returns a new range with both endpoints shifted by delta.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	if r.IsUnspecified() {
		return "[unspecified)"
	}
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}
