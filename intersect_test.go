package bez

import (
	"math"
	"testing"
)

func TestIntersectCubicsLines(t *testing.T) {
	a := lineCubic(Pt(0, 0), Pt(10, 10))
	b := lineCubic(Pt(0, 10), Pt(10, 0))
	for _, tol := range []float64{1e-1, 1e-2, 1e-3, 1e-4} {
		hits, n, ok := IntersectCubics(a, b, tol, 24)
		if !ok {
			t.Errorf("tolerance %g: search incomplete", tol)
		}
		if n != 1 {
			t.Fatalf("tolerance %g: got %d hits, want 1: %v", tol, n, hits[:n])
		}
		if d := hits[0].Point.Distance(Pt(5, 5)); d > tol {
			t.Errorf("tolerance %g: got hit %s, %g away from (5, 5)", tol, hits[0].Point, d)
		}
		diff(t, 0.5, hits[0].T1, approx(tol))
		diff(t, 0.5, hits[0].T2, approx(tol))
	}
}

func TestIntersectCubicsCurve(t *testing.T) {
	b := lineCubic(Pt(-1, 5), Pt(11, 5))
	hits, n, ok := IntersectCubics(hump, b, 1e-6, 30)
	if !ok {
		t.Error("search incomplete")
	}

	// The hump's y is 30t(1-t), which is 5 at t = (1 ± √(1/3)) / 2.
	x := func(t float64) float64 { return t * t * (30 - 20*t) }
	t1 := (1 - math.Sqrt(1.0/3.0)) / 2
	t2 := (1 + math.Sqrt(1.0/3.0)) / 2
	want := []CurveHit{
		{Point: Pt(x(t1), 5), T1: t1, T2: (x(t1) + 1) / 12},
		{Point: Pt(x(t2), 5), T1: t2, T2: (x(t2) + 1) / 12},
	}
	diff(t, want, hits[:n], approx(1e-4))

	// Results are deterministic.
	again, n2, _ := IntersectCubics(hump, b, 1e-6, 30)
	diff(t, hits[:n], again[:n2])
}

func TestIntersectCubicsDisjoint(t *testing.T) {
	far := hump.Transform(Translate(Vec(100, 0)))
	if _, n, ok := IntersectCubics(hump, far, DefaultTolerance, DefaultMaxDepth); n != 0 || !ok {
		t.Errorf("got %d hits (complete: %t), want none", n, ok)
	}
}

func TestIntersectCubicsFull(t *testing.T) {
	// A curve overlaps itself everywhere.
	hits, n, ok := IntersectCubics(hump, hump, 1e-2, 10)
	if ok {
		t.Error("search reported complete for coincident curves")
	}
	if n != MaxCurveHits {
		t.Errorf("got %d hits, want %d", n, MaxCurveHits)
	}
	for i := 1; i < n; i++ {
		if hits[i-1].T1 > hits[i].T1 {
			t.Errorf("hits not sorted by T1: %v", hits[:n])
		}
	}
}

func TestIntersectCubicsPanics(t *testing.T) {
	mustPanic(t, func() { IntersectCubics(hump, hump, 0, 10) })
	mustPanic(t, func() { IntersectCubics(hump, hump, 1e-3, 0) })
}

func BenchmarkIntersectCubics(b *testing.B) {
	other := lineCubic(Pt(-1, 5), Pt(11, 5))
	for range b.N {
		IntersectCubics(hump, other, DefaultTolerance, DefaultMaxDepth)
	}
}

func TestIntersectLinePath(t *testing.T) {
	p := hump.Path()
	line := Line{Pt(-1, 5), Pt(11, 5)}
	hits, next, done := IntersectLinePath(line, false, p, DefaultResolution, PathLocation{}, 8)
	if !done {
		t.Error("scan not done")
	}
	diff(t, PathLocation{Segment: 1}, next)
	want := []LineHit{
		{Point: Pt(1.151, 5), Segment: 0, T: 0.2113},
		{Point: Pt(8.849, 5), Segment: 0, T: 0.7887},
	}
	diff(t, want, hits, approx(1e-2))

	// A line segment ending before the first crossing.
	short := Line{Pt(-1, 5), Pt(0.5, 5)}
	if hits, _, _ := IntersectLinePath(short, false, p, DefaultResolution, PathLocation{}, 8); len(hits) != 0 {
		t.Errorf("got %v, want no hits", hits)
	}
	// The same line extended to infinity.
	hits, _, _ = IntersectLinePath(short, true, p, DefaultResolution, PathLocation{}, 8)
	diff(t, want, hits, approx(1e-2))
}

func TestIntersectLinePathResume(t *testing.T) {
	p := hump.Path()
	line := Line{Pt(-1, 5), Pt(11, 5)}

	var all []LineHit
	from := PathLocation{}
	for range 3 {
		hits, next, done := IntersectLinePath(line, false, p, DefaultResolution, from, 1)
		all = append(all, hits...)
		if done {
			break
		}
		if len(hits) != 1 {
			t.Fatalf("got %d hits before stopping, want 1", len(hits))
		}
		from = next
	}
	full, _, _ := IntersectLinePath(line, false, p, DefaultResolution, PathLocation{}, 8)
	diff(t, full, all)
}

func TestIntersectLinePathCircle(t *testing.T) {
	p := Circle(Pt(0, 0), 10, 4)
	line := Line{Pt(-20, 0), Pt(20, 0)}
	hits, _, done := IntersectLinePath(line, false, p, DefaultResolution, PathLocation{}, 8)
	if !done {
		t.Error("scan not done")
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %v", len(hits), hits)
	}
	assertNear(t, hits[0].Point, Pt(10, 0), 1e-6)
	assertNear(t, hits[1].Point, Pt(-10, 0), 1e-6)
}

func TestIntersectLinePathDegenerate(t *testing.T) {
	line := Line{Pt(3, 3), Pt(3, 3)}
	hits, next, done := IntersectLinePath(line, true, hump.Path(), DefaultResolution, PathLocation{}, 8)
	if len(hits) != 0 || !done {
		t.Errorf("got %v (done: %t), want no hits", hits, done)
	}
	diff(t, PathLocation{Segment: 1}, next)

	mustPanic(t, func() {
		IntersectLinePath(Line{Pt(0, 0), Pt(1, 0)}, true, hump.Path(), 0, PathLocation{}, 8)
	})
	mustPanic(t, func() {
		IntersectLinePath(Line{Pt(0, 0), Pt(1, 0)}, true, hump.Path(), 8, PathLocation{}, 0)
	})
	mustPanic(t, func() {
		IntersectLinePath(Line{Pt(0, 0), Pt(1, 0)}, true, hump.Path(), 8, PathLocation{Segment: -1}, 8)
	})
}

// both returns l and l running in the opposite direction.
func both(l Line) []Line {
	return []Line{l, {l.P1, l.P0}}
}

func TestIntersectLinePathTouch(t *testing.T) {
	// Each path touches the line at a sample without crossing it.
	tests := []struct {
		name string
		p    Path
		line Line
	}{
		{"circle top", Circle(Pt(0, 0), 10, 4), Line{Pt(-20, 10), Pt(20, 10)}},
		{"circle left", Circle(Pt(0, 0), 10, 4), Line{Pt(-10, -20), Pt(-10, 20)}},
		// y = 3(1-2t)², which is zero at t = 0.5 only
		{"above", NewPath(CubicBez{Pt(0, 3), Pt(2, -1), Pt(4, -1), Pt(6, 3)}), Line{Pt(-1, 0), Pt(7, 0)}},
		{"below", NewPath(CubicBez{Pt(0, -3), Pt(2, 1), Pt(4, 1), Pt(6, -3)}), Line{Pt(-1, 0), Pt(7, 0)}},
	}
	for _, tt := range tests {
		for _, line := range both(tt.line) {
			hits, _, done := IntersectLinePath(line, false, tt.p, 8, PathLocation{}, 8)
			if len(hits) != 0 || !done {
				t.Errorf("%s, %s to %s: got %v (done: %t), want no hits", tt.name, line.P0, line.P1, hits, done)
			}
		}
	}
}

func TestIntersectLinePathThroughSample(t *testing.T) {
	// The path crosses the line exactly at the sample t = 0.5.
	p := NewPath(CubicBez{Pt(5, -4), Pt(5, -2), Pt(5, 2), Pt(5, 4)})
	for _, line := range both(Line{Pt(0, 0), Pt(10, 0)}) {
		hits, _, _ := IntersectLinePath(line, false, p, 8, PathLocation{}, 8)
		diff(t, []LineHit{{Point: Pt(5, 0), Segment: 0, T: 0.5}}, hits, approx(1e-12))
	}

	// A closed path that starts on the line crosses it there once.
	c := Circle(Pt(0, 0), 10, 4)
	for _, line := range both(Line{Pt(-20, 0), Pt(20, 0)}) {
		hits, _, _ := IntersectLinePath(line, false, c, DefaultResolution, PathLocation{}, 8)
		if len(hits) != 2 {
			t.Fatalf("got %d hits, want 2: %v", len(hits), hits)
		}
		diff(t, LineHit{Point: Pt(10, 0), Segment: 0, T: 0}, hits[0], approx(1e-9))
		assertNear(t, hits[1].Point, Pt(-10, 0), 1e-6)
	}

	// An open path that only starts on the line doesn't cross it.
	open := NewPath(lineCubic(Pt(0, 0), Pt(5, 5)))
	for _, line := range both(Line{Pt(-10, 0), Pt(10, 0)}) {
		if hits, _, _ := IntersectLinePath(line, false, open, 8, PathLocation{}, 8); len(hits) != 0 {
			t.Errorf("got %v, want no hits", hits)
		}
	}
}

func TestLineCrossingPoint(t *testing.T) {
	h := Line{Pt(0, 0), Pt(100, 0)}
	v := Line{Pt(10, -10), Pt(10, 10)}
	p, ok := h.CrossingPoint(v)
	if !ok {
		t.Fatal("lines don't cross")
	}
	diff(t, Pt(10, 0), p, approx(1e-12))

	if _, ok := h.CrossingPoint(Line{Pt(0, 5), Pt(10, 5)}); ok {
		t.Error("parallel lines cross")
	}
	diff(t, math.Sqrt(2), Line{Pt(0, 0), Pt(1, 1)}.Length(), approx(1e-12))
	diff(t, Pt(5, 5), Line{Pt(0, 0), Pt(10, 10)}.Eval(0.5))
}
