package bez

import (
	"log/slog"
	"math"
)

// SelfIntersection is the point where a looping curve crosses itself.
type SelfIntersection struct {
	// T1 < T2 are the two parameters that map to Point.
	T1, T2 float64
	Point  Point
}

// CurveKind classifies the shape of a cubic Bézier.
type CurveKind int

const (
	// CurvePlain is an arch without inflections.
	CurvePlain CurveKind = iota
	CurveSingleInflection
	CurveDoubleInflection
	// CurveLoop crosses itself; see [CubicBez.SelfIntersection].
	CurveLoop
	CurveCusp
	// CurveDegenerate has collinear first and second control legs, so it has
	// no canonical form.
	CurveDegenerate
)

func (k CurveKind) String() string {
	switch k {
	case CurvePlain:
		return "plain"
	case CurveSingleInflection:
		return "single inflection"
	case CurveDoubleInflection:
		return "double inflection"
	case CurveLoop:
		return "loop"
	case CurveCusp:
		return "cusp"
	case CurveDegenerate:
		return "degenerate"
	default:
		return "CurveKind(?)"
	}
}

// canonical returns the position of the end point in the affine frame that
// maps P0 to (0, 0), P1 to (0, 1) and P2 to (1, 1). In that frame the end
// point alone determines the curve's shape.
func (c CubicBez) canonical() (x, y float64, ok bool) {
	return solve2x2(c.P2.Sub(c.P1), c.P1.Sub(c.P0), c.P3.Sub(c.P0))
}

// cuspY is the canonical y of a curve with a cusp, for x <= 1.
func cuspY(x float64) float64 {
	return (-x*x + 2*x + 3) / 4
}

// inLoopRegion reports whether the canonical end point (x, y) lies in the
// region of curves that loop within [0, 1].
func inLoopRegion(x, y float64) bool {
	if x > 1 || y >= cuspY(x) {
		return false
	}
	var bound float64
	if x <= 0 {
		bound = (-x*x + 3*x) / 3
	} else {
		bound = (math.Sqrt(3*(4*x-x*x)) - x) / 2
	}
	return y >= bound
}

// SelfIntersection returns the point where the curve crosses itself, if it
// does so for parameters in [0, 1].
//
// The end point's canonical position decides whether a loop exists. The two
// parameters are then the roots of z² - (s+t)z + st, where s+t and st follow
// from B(s) = B(t) written in polynomial form.
func (c CubicBez) SelfIntersection() (SelfIntersection, bool) {
	x, y, ok := c.canonical()
	if !ok || !inLoopRegion(x, y) {
		return SelfIntersection{}, false
	}

	a := c.P3.Sub(c.P0).Add(c.P1.Sub(c.P2).Mul(3))
	b := c.P0.Sub(c.P1).Add(c.P2.Sub(c.P1)).Mul(3)
	d := c.P1.Sub(c.P0).Mul(3)

	axb := a.Cross(b)
	a2 := a.Hypot2()
	if axb == 0 || a2 == 0 {
		return SelfIntersection{}, false
	}
	sum := -a.Cross(d) / axb
	prod := sum*sum + b.Mul(sum).Add(d).Dot(a)/a2
	disc := sum*sum - 4*prod
	if disc <= 0 {
		Logger().Debug("self-intersection rejected",
			slog.String("reason", "no distinct roots"),
			slog.Float64("discriminant", disc))
		return SelfIntersection{}, false
	}
	sq := math.Sqrt(disc)
	t1 := (sum - sq) / 2
	t2 := (sum + sq) / 2
	if t1 < 0 || t2 > 1 {
		Logger().Debug("self-intersection rejected",
			slog.String("reason", "parameters out of range"),
			slog.Float64("t1", t1),
			slog.Float64("t2", t2))
		return SelfIntersection{}, false
	}
	return SelfIntersection{
		T1:    t1,
		T2:    t2,
		Point: c.Eval(t1),
	}, true
}

// Classify determines the kind of the curve from its canonical form and its
// inflections.
func (c CubicBez) Classify() CurveKind {
	x, y, ok := c.canonical()
	if !ok {
		return CurveDegenerate
	}
	if x <= 1 {
		cy := cuspY(x)
		if math.Abs(y-cy) <= 1e-9*max(1, math.Abs(cy)) {
			return CurveCusp
		}
		if inLoopRegion(x, y) {
			return CurveLoop
		}
	}
	switch _, n := c.CurvatureInflections(); n {
	case 0:
		return CurvePlain
	case 1:
		return CurveSingleInflection
	default:
		return CurveDoubleInflection
	}
}
