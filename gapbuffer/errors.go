package gapbuffer

import "errors"

// Errors returned by gap-buffer operations. All index and range inputs are
// validated before any mutation occurs, so a failing call leaves the
// buffer in its pre-call state.
var (
	// ErrOffsetOutOfRange indicates an offset is outside [0, length).
	ErrOffsetOutOfRange = errors.New("gapbuffer: offset out of range")

	// ErrInvalidRange indicates a range is outside [0, length], has
	// Start > End, or (for operations that disallow it) is the
	// unspecified sentinel.
	ErrInvalidRange = errors.New("gapbuffer: invalid range")

	// ErrInvalidDestination indicates GetChars's destination offset or
	// size is incompatible with the requested length.
	ErrInvalidDestination = errors.New("gapbuffer: invalid destination")

	// ErrMarksUnsupported indicates a mark operation was attempted
	// directly against a plain gap buffer, which keeps no registry.
	// See the marks package for a buffer that adds one.
	ErrMarksUnsupported = errors.New("gapbuffer: marks are not supported on a plain buffer")
)
