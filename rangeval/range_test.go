package rangeval

import "testing"

func TestUnspecified(t *testing.T) {
	r := Unspecified()
	if !r.IsUnspecified() {
		t.Error("expected unspecified range")
	}
	if r.IsZero() {
		t.Error("unspecified range should not equal zero range")
	}
}

func TestZero(t *testing.T) {
	r := Zero()
	if !r.IsZero() {
		t.Error("expected zero range")
	}
	if !r.IsEmpty() {
		t.Error("zero range should be empty")
	}
}

func TestResolve(t *testing.T) {
	if got := Unspecified().Resolve(10); got != (Range{0, 10}) {
		t.Errorf("expected (0,10), got %v", got)
	}
	if got := New(2, 4).Resolve(10); got != (Range{2, 4}) {
		t.Errorf("expected (2,4) unchanged, got %v", got)
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		a, b Range
		want bool
	}{
		{New(0, 5), New(5, 10), false},
		{New(0, 5), New(4, 10), true},
		{New(0, 0), New(0, 5), false}, // empty range has no extent to overlap via Intersects
		{New(2, 8), New(3, 4), true},
	}
	for _, tc := range tests {
		if got := tc.a.Intersects(tc.b); got != tc.want {
			t.Errorf("%v.Intersects(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestContainsPoint(t *testing.T) {
	r := New(3, 7)
	if !r.ContainsPoint(3) || !r.ContainsPoint(7) {
		t.Error("ContainsPoint should be inclusive of both endpoints")
	}
	if r.ContainsPoint(2) || r.ContainsPoint(8) {
		t.Error("ContainsPoint should exclude values outside the range")
	}
}

func TestIntersect(t *testing.T) {
	got := New(0, 10).Intersect(New(5, 15))
	if got != (Range{5, 10}) {
		t.Errorf("expected (5,10), got %v", got)
	}

	got = New(0, 5).Intersect(New(5, 10))
	if !got.IsEmpty() {
		t.Errorf("expected empty intersection, got %v", got)
	}
}

func TestShift(t *testing.T) {
	got := New(5, 10).Shift(-3)
	if got != (Range{2, 7}) {
		t.Errorf("expected (2,7), got %v", got)
	}
}
