package marks

import (
	"testing"

	"github.com/dshills/textbuf/rangeval"
)

func TestMarkRangeAndGet(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	if err := reg.MarkRange(rangeval.New(3, 7), m, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := reg.GetRangeForMark(m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != rangeval.New(3, 7) {
		t.Errorf("expected (3,7), got %v", r)
	}
}

func TestMarkRangeDuplicate(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(0, 1), m, nil)
	if err := reg.MarkRange(rangeval.New(1, 2), m, nil); err != ErrDuplicateMark {
		t.Errorf("expected ErrDuplicateMark, got %v", err)
	}
}

func TestGetRangeForUnknownMark(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.GetRangeForMark(new(int), nil); err != ErrUnknownMark {
		t.Errorf("expected ErrUnknownMark, got %v", err)
	}
}

func TestUnmarkIsSilentOnAbsent(t *testing.T) {
	reg := NewRegistry()
	reg.Unmark(new(int)) // must not panic
}

func TestSourceMarkCoordinateResolution(t *testing.T) {
	reg := NewRegistry()
	src := new(int)
	_ = reg.MarkRange(rangeval.New(10, 20), src, nil)

	inner := new(int)
	// (2,5) relative to src (absolute start 10) -> absolute (12,15)
	if err := reg.MarkRange(rangeval.New(2, 5), inner, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abs, _ := reg.lookup(inner)
	if abs != rangeval.New(12, 15) {
		t.Errorf("expected absolute (12,15), got %v", abs)
	}

	got, err := reg.GetRangeForMark(inner, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != rangeval.New(2, 5) {
		t.Errorf("expected (2,5) relative to src, got %v", got)
	}
}

func TestSourceMarkUnspecifiedResolvesToWholeMark(t *testing.T) {
	reg := NewRegistry()
	src := new(int)
	_ = reg.MarkRange(rangeval.New(4, 9), src, nil)

	abs, err := reg.resolveAbsolute(rangeval.Unspecified(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if abs != rangeval.New(4, 9) {
		t.Errorf("expected (4,9), got %v", abs)
	}
}

func TestApplyEditEntirelyBeforeUnaffected(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(0, 5), m, nil)
	reg.applyEdit(10, 12, 3)
	got, _ := reg.lookup(m)
	if got != rangeval.New(0, 5) {
		t.Errorf("expected unchanged (0,5), got %v", got)
	}
}

func TestApplyEditEntirelyAfterShifts(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(10, 15), m, nil)
	reg.applyEdit(2, 4, 1) // delLen=2, insLen=1, delta=-1
	got, _ := reg.lookup(m)
	if got != rangeval.New(9, 14) {
		t.Errorf("expected (9,14), got %v", got)
	}
}

func TestApplyEditStrictlyInsideCollapses(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(5, 10), m, nil)
	reg.applyEdit(5, 10, 3)
	got, _ := reg.lookup(m)
	if got != rangeval.New(5, 8) {
		t.Errorf("expected (5,8), got %v", got)
	}
}

func TestApplyEditOverlapStartOnly(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(5, 10), m, nil)
	reg.applyEdit(7, 12, 4)
	got, _ := reg.lookup(m)
	if got != rangeval.New(5, 7) {
		t.Errorf("expected (5,7), got %v", got)
	}
}

func TestApplyEditOverlapEndOnly(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(5, 12), m, nil)
	reg.applyEdit(3, 8, 2) // delta = 2-5 = -3
	got, _ := reg.lookup(m)
	if got != rangeval.New(5, 9) {
		t.Errorf("expected (5,9), got %v", got)
	}
}

func TestApplyEditContainsGrows(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(0, 20), m, nil)
	reg.applyEdit(5, 10, 8) // delta = 8-5 = 3
	got, _ := reg.lookup(m)
	if got != rangeval.New(0, 23) {
		t.Errorf("expected (0,23), got %v", got)
	}
}

func TestApplyEditStickyOutsideAtStart(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(5, 10), m, nil)
	reg.applyEdit(5, 5, 3) // pure insertion at mark's start
	got, _ := reg.lookup(m)
	if got != rangeval.New(8, 13) {
		t.Errorf("expected mark shifted whole to (8,13), got %v", got)
	}
}

func TestApplyEditStickyOutsideAtEnd(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(5, 10), m, nil)
	reg.applyEdit(10, 10, 3) // pure insertion at mark's end
	got, _ := reg.lookup(m)
	if got != rangeval.New(5, 10) {
		t.Errorf("expected mark unaffected (5,10), got %v", got)
	}
}

func TestGetMarksIntersecting(t *testing.T) {
	reg := NewRegistry()
	a, b, c := new(int), new(int), new(int)
	_ = reg.MarkRange(rangeval.New(0, 5), a, nil)
	_ = reg.MarkRange(rangeval.New(4, 8), b, nil)
	_ = reg.MarkRange(rangeval.New(10, 15), c, nil)

	results, err := reg.GetMarksIntersecting(rangeval.New(3, 6), nil, func(m Mark, r rangeval.Range) any {
		return m
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 intersecting marks, got %d", len(results))
	}
}

func TestGetMarksIntersectingEmptyQueryMatchesPoint(t *testing.T) {
	reg := NewRegistry()
	m := new(int)
	_ = reg.MarkRange(rangeval.New(5, 10), m, nil)

	results, err := reg.GetMarksIntersecting(rangeval.New(10, 10), nil, func(Mark, rangeval.Range) any {
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected point query at inclusive endpoint to match, got %d results", len(results))
	}
}

func TestGetMarksIntersectingPredicateCanFilter(t *testing.T) {
	reg := NewRegistry()
	a, b := new(int), new(int)
	_ = reg.MarkRange(rangeval.New(0, 5), a, nil)
	_ = reg.MarkRange(rangeval.New(0, 5), b, nil)

	results, err := reg.GetMarksIntersecting(rangeval.New(0, 5), nil, func(m Mark, r rangeval.Range) any {
		if m == a {
			return nil
		}
		return m
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected predicate nil to filter out one mark, got %d", len(results))
	}
}
