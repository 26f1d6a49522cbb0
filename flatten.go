package bez

import (
	"fmt"
	"math"
)

// splitEpsilon is the smallest distance between two cuts in [CubicBez.SplitAt].
const splitEpsilon = 1e-10

// Flatten approximates the curve with a polyline through n+1 evenly spaced
// parameters. If includeFirst is false the start point is omitted, so that the
// polylines of consecutive segments can be concatenated without repeating the
// shared vertex.
func (c CubicBez) Flatten(n int, includeFirst bool) []Point {
	return c.AppendFlatten(make([]Point, 0, n+1), n, includeFirst)
}

// AppendFlatten is like [CubicBez.Flatten] but appends to dst.
func (c CubicBez) AppendFlatten(dst []Point, n int, includeFirst bool) []Point {
	checkSamples("Flatten", n, 1)
	if includeFirst {
		dst = append(dst, c.P0)
	}
	for i := 1; i < n; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(n)))
	}
	return append(dst, c.P3)
}

// SplitAt cuts the curve at the given parameters, which must be in increasing
// order. Cuts closer than 1e-10 to the previous cut or to the end are skipped.
//
// After each cut the remaining parameters are mapped into the remainder of the
// curve, so every cut is made on the original curve's parameter scale.
func (c CubicBez) SplitAt(ts []float64) []CubicBez {
	out := make([]CubicBez, 0, len(ts)+1)
	rest := c
	prev := 0.0
	for _, t := range ts {
		if t-prev < splitEpsilon || 1-t < splitEpsilon {
			continue
		}
		var left CubicBez
		left, rest = rest.SubdivideAt((t - prev) / (1 - prev))
		out = append(out, left)
		prev = t
	}
	return append(out, rest)
}

// SubdivideAtExtrema splits the curve at its interior extrema, producing up to
// five pieces, each monotonic in x and y.
func (c CubicBez) SubdivideAtExtrema() []CubicBez {
	ts, n := c.Extrema()
	return c.SplitAt(ts[:n])
}

// ReducePolyline simplifies a polyline with the Douglas–Peucker algorithm and
// appends the kept points to dst. The end points are always kept; an interior
// point is kept if it lies further than epsilon from the chord of the run that
// contains it.
//
// dst may be pts[:0], in which case pts is reduced in place.
func ReducePolyline(dst, pts []Point, epsilon float64) []Point {
	if len(pts) < 3 {
		return append(dst, pts...)
	}
	keep := make([]bool, len(pts))
	keep[0] = true
	keep[len(pts)-1] = true

	type run struct{ lo, hi int }
	stack := []run{{0, len(pts) - 1}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.hi-r.lo < 2 {
			continue
		}
		worst, worstD := -1, epsilon
		for i := r.lo + 1; i < r.hi; i++ {
			if d := segmentDistance(pts[i], pts[r.lo], pts[r.hi]); d > worstD {
				worst, worstD = i, d
			}
		}
		if worst < 0 {
			continue
		}
		keep[worst] = true
		stack = append(stack, run{r.lo, worst}, run{worst, r.hi})
	}

	for i, p := range pts {
		if keep[i] {
			dst = append(dst, p)
		}
	}
	return dst
}

// segmentDistance returns the distance of p from the line through a and b, or
// from a if the two coincide.
func segmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	l := d.Hypot()
	if l == 0 {
		return p.Distance(a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / l
}

// FitThroughPoints builds a smooth path through pts.
//
// At each point the two handles are parallel to the line between its
// neighbours, with lengths of a third of the distance to the respective
// neighbour. The first and last point of an open path act as their own missing
// neighbour. A closed path wraps around and ends with a copy of the first point
// marked [RoleClosed].
//
// If corners is non-nil it must have the same length as pts; a point with its
// corner flag set gets zero-length handles and [RoleCorner].
func FitThroughPoints(pts []Point, corners []bool, closed bool) Path {
	if corners != nil && len(corners) != len(pts) {
		panic(fmt.Sprintf("bez: FitThroughPoints called with %d points and %d corner flags", len(pts), len(corners)))
	}
	n := len(pts)
	if n < 2 {
		panic(fmt.Sprintf("bez: FitThroughPoints called with %d points, need at least 2", n))
	}
	isCorner := func(i int) bool { return corners != nil && corners[i] }
	neighbours := func(i int) (Point, Point) {
		prev, next := pts[i], pts[i]
		switch {
		case i > 0:
			prev = pts[i-1]
		case closed:
			prev = pts[n-1]
		}
		switch {
		case i < n-1:
			next = pts[i+1]
		case closed:
			next = pts[0]
		}
		return prev, next
	}
	// handles returns the incoming and outgoing control points of vertex i.
	handles := func(i int) (Point, Point) {
		v := pts[i]
		if isCorner(i) {
			return v, v
		}
		prev, next := neighbours(i)
		dir := next.Sub(prev).Normalize()
		if dir.IsNaN() || dir.IsZero() {
			return v, v
		}
		in := v.Translate(dir.Mul(-v.Distance(prev) / 3))
		out := v.Translate(dir.Mul(next.Distance(v) / 3))
		return in, out
	}
	vertex := func(i int) PathPoint {
		pp := Vertex(pts[i])
		if isCorner(i) {
			pp.Role |= RoleCorner
		}
		return pp
	}

	segs := n - 1
	if closed {
		segs = n
	}
	out := make(Path, 0, 3*segs+1)
	out = append(out, vertex(0))
	for i := range segs {
		j := (i + 1) % n
		_, c1 := handles(i)
		c2, _ := handles(j)
		out = append(out, Control(c1), Control(c2), vertex(j))
	}
	if closed {
		out[len(out)-1].Role |= RoleClosed
	}
	return out
}
