// Package marks layers stable range tracking on top of a gap buffer. A
// Mark is an opaque, caller-supplied identity token bound to a live range
// that is kept consistent across edits: ranges entirely before or after
// an edit shift or stay put, ranges overlapping an edit boundary trim to
// the boundary, and ranges straddling an edit grow or shrink with it.
// Insertions exactly at a mark's boundary follow the sticky-outside
// convention — they extend the neighboring text, not the mark.
//
// Every read and write on a Buffer accepts an optional sourceMark; when
// given, the call's range argument is interpreted relative to that mark's
// current start instead of the buffer's absolute origin.
package marks
