package replay

import (
	"github.com/dshills/textbuf/charsource"
	"github.com/dshills/textbuf/gapbuffer"
	"github.com/dshills/textbuf/marks"
	"github.com/dshills/textbuf/rangeval"
)

// diffWindow is the single compacted run of edits applied to a Buffer
// since its last sync. sourceBuffer identifies which buffer sourceRange's
// coordinates are meaningful against — the buffer this one most recently
// synced from.
type diffWindow struct {
	sourceRange  rangeval.Range
	resultRange  rangeval.Range
	sourceBuffer *Buffer
	valid        bool
}

// Buffer wraps a marks-aware buffer with a diff window, letting a
// subsequent fork target replay the window instead of copying the full
// content when this buffer turns out to be the fork's source.
type Buffer struct {
	*marks.Buffer
	window diffWindow
}

func freshWindow() diffWindow {
	return diffWindow{sourceRange: rangeval.Unspecified(), valid: true}
}

// New creates an empty replaying buffer.
func New(opts ...gapbuffer.Option) *Buffer {
	return &Buffer{Buffer: marks.New(opts...), window: freshWindow()}
}

// FromString creates a replaying buffer initialized with s.
func FromString(s string, opts ...gapbuffer.Option) *Buffer {
	return &Buffer{Buffer: marks.FromString(s, opts...), window: freshWindow()}
}

// Replace applies the edit via the embedded marks buffer, then folds it
// into the diff window.
func (b *Buffer) Replace(r rangeval.Range, source charsource.Source, subStart, subEnd int, sourceMark marks.Mark) error {
	abs, err := b.Buffer.ResolveRange(r, sourceMark)
	if err != nil {
		return err
	}
	if err := b.Buffer.Replace(abs, source, subStart, subEnd, nil); err != nil {
		return err
	}
	b.trackEdit(abs, subEnd-subStart)
	return nil
}

// trackEdit folds an absolute edit (deleting [r.Start, r.End), inserting
// insLen characters at r.Start) into the window per §4.5's merge rules.
func (b *Buffer) trackEdit(r rangeval.Range, insLen int) {
	w := &b.window
	if !w.valid {
		return
	}
	delLen := r.Len()

	switch {
	case w.sourceRange.IsUnspecified():
		w.sourceRange = r
		w.resultRange = rangeval.New(r.Start, r.Start+insLen)

	case r.Start == w.resultRange.End:
		// Strict append adjacent to the running window.
		newSourceEnd := r.End - w.resultRange.Len() + w.sourceRange.Len()
		w.sourceRange = rangeval.New(w.sourceRange.Start, newSourceEnd)
		w.resultRange = rangeval.New(w.resultRange.Start, r.Start+insLen)

	case r.End == w.resultRange.Start:
		// Strict prepend adjacent to the running window.
		w.sourceRange = rangeval.New(r.Start, w.sourceRange.End)
		w.resultRange = rangeval.New(r.Start, w.resultRange.End+insLen-delLen)

	default:
		w.valid = false
	}
}

// SyncFrom replaces b's content with source's. If source's own diff
// window was built by syncing from b (source.window.sourceBuffer == b)
// and is still valid, b replays just that window — this.Replace(source's
// sourceRange, source, source's resultRange) — instead of a full copy;
// this is only correct if b has not changed since source last synced
// from it, which the window's existence already presupposes. The replay
// goes through the embedded marks.Buffer (not the raw gap buffer), so b's
// own mark registry — which, under that same precondition, still holds
// whatever marks source forked with — shifts per the edit exactly as it
// would have had the edit been applied to b directly, keeping marks
// consistent with content per §5's "marks are copied with the buffer"
// rule. Otherwise a full copy (content and registry both) is performed.
// Either way, b's own window is reset to "no edits yet" with sourceBuffer
// set to source.
func (b *Buffer) SyncFrom(source *Buffer) {
	sw := source.window
	if sw.sourceBuffer == b && sw.valid && !sw.sourceRange.IsUnspecified() {
		src := charsource.BufferSource{Reader: source.Buffer.Buffer}
		_ = b.Buffer.Replace(sw.sourceRange, src, sw.resultRange.Start, sw.resultRange.End, nil)
	} else {
		b.Buffer.CloneFrom(source.Buffer)
	}
	b.window = diffWindow{sourceRange: rangeval.Unspecified(), sourceBuffer: source, valid: true}
}

// Clone returns a deep copy of b, including its marks and content but
// not its diff window (a clone starts with a fresh one, since it has no
// prior sync to be a continuation of).
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Buffer: b.Buffer.Clone(), window: freshWindow()}
}
