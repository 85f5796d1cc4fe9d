// Package replay adds a compacted diff-window optimization on top of a
// marks-aware buffer. Instead of cloning the full content on every
// copy-on-write fork, a Buffer tracks the single run of edits applied
// since its last sync and, when the opportunity arises, replays just
// that run into the buffer being synced rather than copying everything.
//
// The window holds exactly one merged (sourceRange, resultRange) pair.
// Edits that extend it (strict append or strict prepend adjacent to the
// running window) are folded in; any other edit — a gap, an overlap, a
// deletion spanning it — invalidates the window until the next sync.
// This single-window limit is a hard constraint, not a current
// simplification: a later extension could track more, but nothing here
// is built assuming that will happen.
package replay
