package textbuf

import (
	"errors"

	"github.com/dshills/textbuf/gapbuffer"
	"github.com/dshills/textbuf/marks"
)

// Named error kinds, re-exported at the facade so callers need not import
// the subpackages that originate them to do an errors.Is check.
var (
	// ErrInvalidRange indicates a supplied range is outside [0, length],
	// has start > end, or (for operations that disallow it) is the
	// unspecified sentinel.
	ErrInvalidRange = gapbuffer.ErrInvalidRange

	// ErrInvalidDestination indicates GetChars's destination offset or
	// size is incompatible with the requested length.
	ErrInvalidDestination = gapbuffer.ErrInvalidDestination

	// ErrUnknownMark indicates a mark operation referenced an id never
	// registered.
	ErrUnknownMark = marks.ErrUnknownMark

	// ErrDuplicateMark indicates MarkRange was called with an id already
	// registered.
	ErrDuplicateMark = marks.ErrDuplicateMark

	// ErrMarksUnsupported indicates a mark operation, or a sourceMark
	// argument, was used against a storage configured with marks
	// disabled (see WithMarksDisabled).
	ErrMarksUnsupported = gapbuffer.ErrMarksUnsupported

	// ErrAllocationFailure would report a failure from the underlying
	// allocator. Go's runtime does not expose allocation failure as a
	// recoverable error — make panics and the process dies — so this
	// exists only to round out the named error-kind set from the source
	// design; no code path in this module returns it.
	ErrAllocationFailure = errors.New("textbuf: allocation failure")
)
