package snapshot

import "errors"

// ErrStaleBase indicates a Commit was attempted whose session's base
// record is no longer the current record of its parent (or of the
// chain, for a top-level session) — a concurrent commit landed first.
// The ambient snapshot service this package stands in for may choose to
// retry (re-Begin and replay) rather than surface this to the caller.
var ErrStaleBase = errors.New("snapshot: session's base is no longer the current record")
