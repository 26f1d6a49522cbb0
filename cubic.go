package bez

import "math"

// LargeCurvature is returned in place of infinite curvature, signed by the
// direction the curve turns.
const LargeCurvature = 1e15

// Offsets used by [CubicBez.VisualTangent] in place of a vanishing derivative.
const (
	visualTangentStart = 0.00001
	visualTangentEnd   = 0.99999
)

// CubicBez is a cubic Bézier segment from P0 to P3 with control points P1 and
// P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// IsInf reports whether any coordinate of the curve is infinite.
func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

// IsNaN reports whether any coordinate of the curve is NaN.
func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Reverse returns the same curve traversed from P3 to P0.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Eval evaluates the Bernstein form
// (1−t)³P0 + 3t(1−t)²P1 + 3t²(1−t)P2 + t³P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative B′(t).
//
// The result is three times the length of the control handles at the ends, and
// is the zero vector at an end whose control point coincides with its vertex.
// Use [CubicBez.VisualTangent] when a direction is needed there.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// VisualTangent returns the direction of the curve at t. Where the derivative
// vanishes, a secant to a point very close to t is used instead.
func (c CubicBez) VisualTangent(t float64) Vec2 {
	if d := c.Deriv(t); !d.IsZero() {
		return d
	}
	switch {
	case t <= 0:
		return c.Eval(visualTangentStart).Sub(c.P0).Mul(1 / visualTangentStart)
	case t >= 1:
		return c.P3.Sub(c.Eval(visualTangentEnd)).Mul(1 / (1 - visualTangentEnd))
	default:
		const h = visualTangentStart
		return c.Eval(min(t+h, 1)).Sub(c.Eval(max(t-h, 0))).Mul(0.5 / h)
	}
}

// Accel returns the second derivative B″(t).
func (c CubicBez) Accel(t float64) Vec2 {
	e0 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	e1 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return e0.Mul(6 * (1 - t)).Add(e1.Mul(6 * t))
}

// Curvature returns the signed curvature (v×a)/|v|³ at t. Positive curvature
// turns from +x towards +y.
//
// Where the derivative vanishes, ±[LargeCurvature] is returned.
func (c CubicBez) Curvature(t float64) float64 {
	v := c.Deriv(t)
	a := c.Accel(t)
	cross := v.Cross(a)
	l := v.Hypot()
	if l == 0 {
		return math.Copysign(LargeCurvature, c.turn(cross))
	}
	return cross / (l * l * l)
}

// EndCurvature returns the curvature at t = 1. It only depends on P1, P2 and
// P3.
func (c CubicBez) EndCurvature() float64 {
	d := c.P3.Sub(c.P2)
	cross := c.P2.Sub(c.P1).Cross(d)
	l := d.Hypot()
	if l == 0 {
		return math.Copysign(LargeCurvature, c.turn(cross))
	}
	return 2.0 / 3.0 * cross / (l * l * l)
}

// StartCurvature returns the curvature at t = 0. It only depends on P0, P1 and
// P2.
func (c CubicBez) StartCurvature() float64 {
	d := c.P1.Sub(c.P0)
	cross := d.Cross(c.P2.Sub(c.P1))
	l := d.Hypot()
	if l == 0 {
		return math.Copysign(LargeCurvature, c.turn(cross))
	}
	return 2.0 / 3.0 * cross / (l * l * l)
}

// turn returns cross if it is nonzero and otherwise the turning direction of the
// control polygon.
func (c CubicBez) turn(cross float64) float64 {
	if cross != 0 {
		return cross
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Cross(d1) + d1.Cross(d2) + d0.Cross(d2)
}

// Split performs de Casteljau subdivision at t. It returns the five new points
// that, together with P0 and P3, describe the two halves:
//
//	left  = P0, s[0], s[1], s[2]
//	right = s[2], s[3], s[4], P3
func (c CubicBez) Split(t float64) [5]Point {
	ab := c.P0.Lerp(c.P1, t)
	bc := c.P1.Lerp(c.P2, t)
	cd := c.P2.Lerp(c.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return [5]Point{ab, abc, abc.Lerp(bcd, t), bcd, cd}
}

// SubdivideAt splits the cubic at t into two cubics that together retrace it.
func (c CubicBez) SubdivideAt(t float64) (CubicBez, CubicBez) {
	s := c.Split(t)
	return CubicBez{c.P0, s[0], s[1], s[2]}, CubicBez{s[2], s[3], s[4], c.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// ControlBox returns the bounding box of the four control points. It always
// contains the curve and is cheaper than [CubicBez.BoundingBox].
func (c CubicBez) ControlBox() Rect {
	r := NewRectFromPoints(c.P0, c.P3)
	r.Add(c.P1)
	r.Add(c.P2)
	return r
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Path returns a single segment [Path] containing the cubic.
func (c CubicBez) Path() Path {
	return NewPath(c)
}

// lineCubic returns the straight cubic from p0 to p1 with controls at thirds.
func lineCubic(p0, p1 Point) CubicBez {
	return CubicBez{p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1}
}
