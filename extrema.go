package bez

import (
	"cmp"
	"slices"
)

// MaxExtrema is the maximum number of extrema a cubic Bézier can have, two per
// axis.
const MaxExtrema = 4

// Extremum is a point where the tangent of a curve is horizontal or vertical.
type Extremum struct {
	T     float64
	Point Point
	// Dir tells which side of the curve's bounding box the extremum faces.
	Dir Direction
}

// Inflection is a zero of one component of the second derivative.
type Inflection struct {
	T     float64
	Point Point
	// Axis is the component whose second derivative vanishes.
	Axis Axis
}

// Extrema returns the parameters of the curve's interior extrema, in
// increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	ex, n := c.extrema()
	for i, e := range ex[:n] {
		out[i] = e.T
	}
	return out, n
}

// ExtremaBBox adds the curve's end points and extrema to bbox and returns the
// extrema, sorted by parameter.
//
// For each axis, the zeros of the derivative are found by solving a quadratic
// (or a linear equation when the cubic term vanishes). Only zeros strictly
// inside (0, 1) count; the end points are always part of the box.
func (c CubicBez) ExtremaBBox(bbox *Rect) ([MaxExtrema]Extremum, int) {
	bbox.Add(c.P0)
	bbox.Add(c.P3)
	ex, n := c.extrema()
	for _, e := range ex[:n] {
		bbox.Add(e.Point)
	}
	return ex, n
}

// ExtremaBBoxAffine is like [CubicBez.ExtremaBBox] but operates on the curve
// transformed by aff. The extrema are those of the transformed curve.
func (c CubicBez) ExtremaBBoxAffine(bbox *Rect, aff Affine) ([MaxExtrema]Extremum, int) {
	return c.Transform(aff).ExtremaBBox(bbox)
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := EmptyRect()
	c.ExtremaBBox(&bbox)
	return bbox
}

func (c CubicBez) extrema() ([MaxExtrema]Extremum, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]Extremum
	var outN int
	oneCoord := func(d0, d1, d2 float64, axis Axis) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := SolveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t <= 0.0 || t >= 1.0 {
				continue
			}
			acc := c.Accel(t)
			var dir Direction
			if axis == AxisX {
				switch {
				case acc.X > 0:
					dir = DirLeft
				case acc.X < 0:
					dir = DirRight
				}
			} else {
				switch {
				case acc.Y > 0:
					dir = DirTop
				case acc.Y < 0:
					dir = DirBottom
				}
			}
			out[outN] = Extremum{T: t, Point: c.Eval(t), Dir: dir}
			outN++
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X, AxisX)
	oneCoord(d0.Y, d1.Y, d2.Y, AxisY)
	slices.SortFunc(out[:outN], func(a, b Extremum) int { return cmp.Compare(a.T, b.T) })
	return out, outN
}

// Inflections returns the points in [0, 1] where either component of the
// second derivative vanishes. Each component is linear in t, so there is at
// most one such point per axis.
func (c CubicBez) Inflections() ([2]Inflection, int) {
	var out [2]Inflection
	var outN int
	e0 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	e1 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	oneCoord := func(a, b float64, axis Axis) {
		if a == b {
			return
		}
		t := a / (a - b)
		if t >= 0 && t <= 1 {
			out[outN] = Inflection{T: t, Point: c.Eval(t), Axis: axis}
			outN++
		}
	}
	oneCoord(e0.X, e1.X, AxisX)
	oneCoord(e0.Y, e1.Y, AxisY)
	return out, outN
}

// CurvatureInflections returns the parameters in [0, 1] at which the curvature
// changes sign.
func (c CubicBez) CurvatureInflections() ([2]float64, int) {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	d := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))
	nums, n := SolveQuadratic(a.Cross(b), a.Cross(d), b.Cross(d))
	var out [2]float64
	var outN int
	for _, num := range nums[:n] {
		if num >= 0 && num <= 1 {
			out[outN] = num
			outN++
		}
	}
	return out, outN
}
