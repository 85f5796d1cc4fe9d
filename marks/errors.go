package marks

import "errors"

// Errors returned by mark registry operations.
var (
	// ErrUnknownMark indicates getRangeForMark was called with an id never
	// registered.
	ErrUnknownMark = errors.New("marks: unknown mark")

	// ErrDuplicateMark indicates markRange was called with an id already
	// present in the registry.
	ErrDuplicateMark = errors.New("marks: mark already registered")
)
