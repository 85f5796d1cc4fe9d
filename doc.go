// Package textbuf is the facade over the storage core: a gap-buffer
// sequence, a mark registry tracking stable ranges across edits, and a
// snapshot/MVCC layer giving multiple callers consistent concurrent
// views with transactional commit/discard.
//
// Storage is generic over its underlying buffer type — *marks.Buffer for
// the plain variant, *replay.Buffer for the one whose buffers also track
// a compacted diff window of their edits (see the replay package). The
// storage forks into freshly allocated buffers, so its own copy-on-write
// forks always take replay.Buffer.SyncFrom's full-copy path, not the
// targeted replay. NewTextStorage and NewReplayingTextStorage construct
// each.
//
// Basic usage:
//
//	s := textbuf.NewTextStorage(textbuf.WithInitialText("foobar"))
//	s.Replace(rangeval.New(1, 5), charsource.String("baz"), 0, 3, nil)
//	s.String() // TextStorage("fbazr")
//
//	snap := s.Begin()
//	snap.Replace(rangeval.New(0, 0), charsource.Char('X'), 0, 1, nil)
//	snap.Discard() // s is unaffected
//
// Every read/write operation accepts an optional sourceMark; when given,
// the call's range argument is interpreted relative to that mark's
// current position rather than the buffer's absolute origin.
package textbuf
