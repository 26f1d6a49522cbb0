package bez

import "math"

// Rect is an axis-aligned rectangle. It doubles as a bounding box accumulator:
// start from [EmptyRect] and grow it with [Rect.Add].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect returns a rectangle that contains nothing. Adding the first point to
// it yields a zero-area rectangle at that point.
func EmptyRect() Rect {
	return Rect{
		X0: math.Inf(1),
		Y0: math.Inf(1),
		X1: math.Inf(-1),
		Y1: math.Inf(-1),
	}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// IsEmpty reports whether no point has been added to the rectangle.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Add grows r to include pt. The rectangle never shrinks.
func (r *Rect) Add(pt Point) {
	r.X0 = min(r.X0, pt.X)
	r.Y0 = min(r.Y0, pt.Y)
	r.X1 = max(r.X1, pt.X)
	r.Y1 = max(r.Y1, pt.Y)
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r. Unlike the half-open test commonly
// used for pixels, all four edges count as inside.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Overlaps reports whether r and o share at least one point. Touching edges
// count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 &&
		o.X0 <= r.X1 &&
		r.Y0 <= o.Y1 &&
		o.Y0 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	r.Add(pt)
	return r
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}
