package bez

import (
	"math"
	"testing"
)

func TestCubicBezExtrema(t *testing.T) {
	// y = x^2
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
	for i := 1; i < n; i++ {
		if extrema[i-1] > extrema[i] {
			t.Errorf("extrema not sorted: %v", extrema[:n])
		}
	}
}

func TestCubicBezExtremaBBoxHump(t *testing.T) {
	bbox := EmptyRect()
	got, n := hump.ExtremaBBox(&bbox)
	want := []Extremum{{T: 0.5, Point: Pt(5, 7.5), Dir: DirBottom}}
	diff(t, want, got[:n], approx(1e-9))
	diff(t, Rect{0, 0, 10, 7.5}, bbox, approx(1e-9))

	// The accumulator keeps growing across calls.
	other := CubicBez{Pt(20, 20), Pt(20, 20), Pt(30, 30), Pt(30, 30)}
	other.ExtremaBBox(&bbox)
	diff(t, Rect{0, 0, 30, 30}, bbox, approx(1e-9))
}

func TestCubicBezExtremaDirections(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(-10, 10), Pt(20, 20), Pt(10, 0)}
	got, n := c.ExtremaBBox(new(Rect))
	var dirs []Direction
	for _, e := range got[:n] {
		dirs = append(dirs, e.Dir)
	}
	// Leftmost point, bottom apex, rightmost point.
	diff(t, []Direction{DirLeft, DirBottom, DirRight}, dirs)
}

func TestCubicBezExtremaBBoxAffine(t *testing.T) {
	bbox := EmptyRect()
	got, n := hump.ExtremaBBoxAffine(&bbox, Rotate(math.Pi/2))
	want := []Extremum{{T: 0.5, Point: Pt(-7.5, 5), Dir: DirLeft}}
	diff(t, want, got[:n], approx(1e-9))
	diff(t, Rect{-7.5, 0, 0, 10}, bbox, approx(1e-9))
}

func TestCubicBezBBoxContainsFlattened(t *testing.T) {
	cs := []CubicBez{
		hump,
		{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)},
		{Pt(0, 0), Pt(20, 10), Pt(-10, 10), Pt(10, 0)},
		{Pt(-3, 7), Pt(12, -40), Pt(5, 33), Pt(9, 1)},
	}
	for _, c := range cs {
		bbox := c.BoundingBox().Inflate(1e-9, 1e-9)
		for _, n := range []int{1, 7, 64, 1000} {
			for _, p := range c.Flatten(n, true) {
				if !bbox.Contains(p) {
					t.Errorf("%v: bounding box %v doesn't contain %s", c, bbox, p)
				}
			}
		}
	}
}
