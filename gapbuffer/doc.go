// Package gapbuffer implements the fundamental editable character sequence:
// a flat array with a movable unused "gap" that sits at the most recent
// edit site, giving O(1) amortized localized edits and O(n) worst-case
// random edits.
//
// The package provides:
//
//   - Length, Get, and GetChars for reading the logical sequence
//   - Replace, the single core editing primitive every insert/delete/
//     replace reduces to
//   - A configurable minimum gap length and doubling growth policy
//   - A Generation counter so higher layers can cheaply detect "unchanged
//     since I last looked" without a full content compare
//
// Basic usage:
//
//	buf := gapbuffer.FromString("foobar")
//	buf.Replace(rangeval.New(1, 5), charsource.String("baz"), 0, 3)
//	buf.String() // Buffer("fbazr")
//
// A plain Buffer keeps no mark registry; see the marks package for a
// buffer that layers one on top.
package gapbuffer
