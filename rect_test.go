package bez

import (
	"math"
	"testing"
)

func TestRectAccumulate(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Fatal("EmptyRect isn't empty")
	}
	if r.Contains(Pt(0, 0)) {
		t.Error("empty rect contains a point")
	}
	r.Add(Pt(3, 4))
	diff(t, Rect{3, 4, 3, 4}, r)
	if r.IsEmpty() {
		t.Error("rect with one point is empty")
	}
	for _, pt := range []Point{Pt(-1, 10), Pt(2, 2), Pt(5, -3)} {
		r.Add(pt)
	}
	diff(t, Rect{-1, -3, 5, 10}, r)
	// Adding interior points never shrinks the box.
	r.Add(Pt(0, 0))
	diff(t, Rect{-1, -3, 5, 10}, r)
	diff(t, 6.0, r.Width())
	diff(t, 13.0, r.Height())
	diff(t, Pt(2, 3.5), r.Center())
	diff(t, r, EmptyRect().UnionPoint(Pt(-1, -3)).UnionPoint(Pt(5, 10)))
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{5, 5, 15, 15}, true},
		{Rect{2, 2, 3, 3}, true},
		{Rect{10, 0, 20, 10}, true}, // shared edge
		{Rect{10.5, 0, 20, 10}, false},
		{Rect{0, -5, 10, -0.1}, false},
		{EmptyRect(), false},
	}
	for _, tt := range tests {
		if got := r.Overlaps(tt.o); got != tt.want {
			t.Errorf("%v overlaps %v: got %t, want %t", r, tt.o, got, tt.want)
		}
		if got := tt.o.Overlaps(r); got != tt.want {
			t.Errorf("%v overlaps %v: got %t, want %t", tt.o, r, got, tt.want)
		}
	}
}

func TestRectMisc(t *testing.T) {
	diff(t, Rect{0, 0, 10, 20}, NewRectFromPoints(Pt(10, 20), Pt(0, 0)))
	diff(t, Rect{-1, -2, 11, 22}, Rect{0, 0, 10, 20}.Inflate(1, 2))
	diff(t, Rect{-5, 0, 10, 30}, Rect{0, 0, 10, 20}.Union(Rect{-5, 5, 0, 30}))
	if !(Rect{0, 0, 10, 10}).Contains(Pt(10, 0)) {
		t.Error("edges should count as inside")
	}
	if (Rect{0, 0, 10, 10}).Contains(Pt(math.NaN(), 5)) {
		t.Error("NaN point is inside")
	}
}
