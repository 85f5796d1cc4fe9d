package replay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/textbuf/charsource"
	"github.com/dshills/textbuf/rangeval"
)

func TestReplaceTracksFirstEdit(t *testing.T) {
	b := FromString("foobar")
	require.NoError(t, b.Replace(rangeval.New(1, 5), charsource.String("baz"), 0, 3, nil))
	require.Equal(t, "fbazr", b.Text())
	require.Equal(t, rangeval.New(1, 5), b.window.sourceRange)
	require.Equal(t, rangeval.New(1, 4), b.window.resultRange)
}

func TestAppendAdjacentEditsExtendWindow(t *testing.T) {
	b := FromString("")
	require.NoError(t, b.Replace(rangeval.New(0, 0), charsource.String("ab"), 0, 2, nil))
	require.NoError(t, b.Replace(rangeval.New(2, 2), charsource.String("cd"), 0, 2, nil))
	require.True(t, b.window.valid, "expected window to remain valid across adjacent appends")
	require.Equal(t, "abcd", b.Text())
	require.Equal(t, rangeval.New(0, 4), b.window.resultRange, "expected merged resultRange (0,4)")
}

func TestNonAdjacentEditInvalidatesWindow(t *testing.T) {
	b := FromString("0123456789")
	require.NoError(t, b.Replace(rangeval.New(0, 1), charsource.String("X"), 0, 1, nil))
	require.NoError(t, b.Replace(rangeval.New(5, 6), charsource.String("Y"), 0, 1, nil))
	require.False(t, b.window.valid, "expected window to be invalidated by a non-adjacent edit")
}

func TestSyncFromFullCopyWhenNoWindowRelationship(t *testing.T) {
	src := FromString("hello")
	dst := New()
	dst.SyncFrom(src)
	require.Equal(t, "hello", dst.Text())
}

func TestSyncFromReplaysWindowWhenSourceForkedFromThis(t *testing.T) {
	base := FromString("foobar")
	fork := New()
	fork.SyncFrom(base) // fork now == "foobar", fork.window.sourceBuffer == base

	require.NoError(t, fork.Replace(rangeval.New(1, 5), charsource.String("baz"), 0, 3, nil))
	require.Equal(t, "fbazr", fork.Text())

	// base has not changed since fork forked from it, so base.SyncFrom(fork)
	// should be eligible for the targeted replay path.
	base.SyncFrom(fork)
	require.Equal(t, "fbazr", base.Text(), "expected replayed sync to reach target text")
}

func TestSyncFromReplayKeepsMarksConsistentWithContent(t *testing.T) {
	base := FromString("foobar")
	tail := new(int)
	require.NoError(t, base.MarkRange(rangeval.New(5, 6), tail, nil)) // marks "r"

	fork := New()
	fork.SyncFrom(base) // full copy: fork's marks now also include tail at (5,6)

	require.NoError(t, fork.Replace(rangeval.New(1, 5), charsource.String("baz"), 0, 3, nil))
	require.Equal(t, "fbazr", fork.Text())

	// Replays the recorded edit directly onto base, which must shift base's
	// own tail mark the same way an equivalent direct edit would, not leave
	// it stale at its pre-edit offset.
	base.SyncFrom(fork)
	require.Equal(t, "fbazr", base.Text())

	got, err := base.GetRangeForMark(tail, nil)
	require.NoError(t, err)
	require.Equal(t, rangeval.New(4, 5), got, "expected tail mark to shift left by one with the content")
}

func TestSyncFromResetsWindow(t *testing.T) {
	src := FromString("abc")
	dst := New()
	dst.SyncFrom(src)
	require.True(t, dst.window.sourceRange.IsUnspecified(), "expected reset window to have unspecified sourceRange")
	require.Same(t, src, dst.window.sourceBuffer)
}

func TestCloneStartsWithFreshWindow(t *testing.T) {
	b := FromString("foobar")
	_ = b.Replace(rangeval.New(0, 0), charsource.String("X"), 0, 1, nil)
	c := b.Clone()
	require.True(t, c.window.sourceRange.IsUnspecified(), "expected clone to start with a fresh window")
}
