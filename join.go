package bez

import (
	"fmt"
	"log/slog"
	"math"
)

// JoinStyle defines how two consecutive segments of a stroke are connected.
type JoinStyle int

const (
	// A straight line connecting the segments.
	JoinBevel JoinStyle = iota
	// The segments' end tangents are extended to their intersection.
	JoinMiter
	// A circular arc between the segments.
	JoinRound
	// The segments are continued along their osculating circles until they
	// meet, falling back to simpler joins where that isn't possible.
	JoinExtrapolate
)

func (s JoinStyle) String() string {
	switch s {
	case JoinBevel:
		return "bevel"
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinExtrapolate:
		return "extrapolate"
	default:
		return fmt.Sprintf("JoinStyle(%d)", int(s))
	}
}

// MaxJoinPoints is the most points a join inserts.
const MaxJoinPoints = 5

// Join holds the points to insert between the end vertex of one segment and
// the start vertex of the next, in path order. Two points are a pair of
// control points; five points are control, control, vertex, control, control.
// No points means a straight connection.
type Join struct {
	Points [MaxJoinPoints]PathPoint
	N      int
	// Style is the join that was produced, which differs from the requested
	// style after a fallback.
	Style JoinStyle
}

// Slice returns the join's points.
func (j *Join) Slice() []PathPoint {
	return j.Points[:j.N]
}

func (j *Join) push(pts ...PathPoint) {
	j.N += copy(j.Points[j.N:], pts)
}

// Curvatures at or above this magnitude are treated as the sentinel for a
// vanishing derivative.
const sentinelCurvature = LargeCurvature / 10

// Curvatures below this magnitude are treated as zero.
const straightCurvature = 1e-9

// JoinSegments computes the join between the end of a and the start of b.
// The miter limit is the largest distance from either end point at which a
// miter point is accepted.
func JoinSegments(a, b CubicBez, style JoinStyle, miterLimit float64) Join {
	switch style {
	case JoinBevel:
		return Join{Style: JoinBevel}
	case JoinMiter:
		return miterJoin(a, b, miterLimit)
	case JoinRound:
		return roundJoin(a, b)
	case JoinExtrapolate:
		return extrapolateJoin(a, b, miterLimit)
	default:
		panic(fmt.Sprintf("bez: invalid join style %d", int(style)))
	}
}

// endTangents returns the unit tangents at the end of a and the start of b.
func endTangents(a, b CubicBez) (ta, tb Vec2, ok bool) {
	ta = a.VisualTangent(1)
	tb = b.VisualTangent(0)
	if ta.IsZero() || tb.IsZero() {
		return Vec2{}, Vec2{}, false
	}
	return ta.Normalize(), tb.Normalize(), true
}

func miterJoin(a, b CubicBez, miterLimit float64) Join {
	pa, pb := a.P3, b.P0
	ta, tb, ok := endTangents(a, b)
	if !ok {
		return bevelFallback("degenerate tangent")
	}
	// pa + s·ta = pb - u·tb
	s, u, ok := solve2x2(ta, tb, pb.Sub(pa))
	switch {
	case !ok:
		return bevelFallback("parallel tangents")
	case s < 0 || u < 0:
		return bevelFallback("miter point behind segment")
	case s > miterLimit || u > miterLimit:
		return bevelFallback("miter limit exceeded")
	}
	x := pa.Translate(ta.Mul(s))
	j := Join{Style: JoinMiter}
	j.push(
		Control(pa),
		Control(x),
		PathPoint{Point: x, Role: RoleVertex | RoleCorner},
		Control(x),
		Control(pb),
	)
	return j
}

func bevelFallback(reason string) Join {
	Logger().Debug("miter join fell back to bevel", slog.String("reason", reason))
	return Join{Style: JoinBevel}
}

// roundHandle returns the handle length of a circular arc with chord d that
// turns by theta.
func roundHandle(d, theta float64) float64 {
	half := math.Sin(theta / 2)
	if math.Abs(half) < 1e-12 {
		return d / 3
	}
	return 4.0 / 3.0 * math.Tan(theta/4) * d / (2 * half)
}

func roundJoin(a, b CubicBez) Join {
	pa, pb := a.P3, b.P0
	ta, tb, ok := endTangents(a, b)
	if !ok {
		return Join{Style: JoinBevel}
	}
	theta := math.Abs(math.Atan2(ta.Cross(tb), ta.Dot(tb)))
	h := roundHandle(pa.Distance(pb), theta)
	j := Join{Style: JoinRound}
	j.push(Control(pa.Translate(ta.Mul(h))), Control(pb.Translate(tb.Mul(-h))))
	return j
}

// IntersectionCase classifies the result of intersecting two shapes.
type IntersectionCase int

const (
	CaseDisjoint IntersectionCase = iota
	// One point where the shapes touch.
	CaseTangent
	// Two crossing points.
	CaseSecant
	// One circle lies inside the other without touching.
	CaseContained
	// Both circles are the same.
	CaseIdentical
)

func (c IntersectionCase) String() string {
	switch c {
	case CaseDisjoint:
		return "disjoint"
	case CaseTangent:
		return "tangent"
	case CaseSecant:
		return "secant"
	case CaseContained:
		return "contained"
	case CaseIdentical:
		return "identical"
	default:
		return fmt.Sprintf("IntersectionCase(%d)", int(c))
	}
}

// nearZero reports whether v is negligible compared to scale.
func nearZero(v, scale float64) bool {
	return math.Abs(v) <= 1e-12*scale
}

// CircleLineIntersect intersects the circle around center with radius r and
// the infinite line through p with direction dir. Points are ordered along dir.
func CircleLineIntersect(center Point, r float64, p Point, dir Vec2) ([2]Point, int, IntersectionCase) {
	var out [2]Point
	qa := dir.Hypot2()
	if qa == 0 {
		return out, 0, CaseDisjoint
	}
	m := p.Sub(center)
	qb := 2 * dir.Dot(m)
	qc := m.Hypot2() - r*r
	disc := qb*qb - 4*qa*qc
	switch {
	case nearZero(disc, max(qb*qb, math.Abs(4*qa*qc))):
		out[0] = p.Translate(dir.Mul(-qb / (2 * qa)))
		return out, 1, CaseTangent
	case disc < 0:
		return out, 0, CaseDisjoint
	}
	sq := math.Sqrt(disc)
	out[0] = p.Translate(dir.Mul((-qb - sq) / (2 * qa)))
	out[1] = p.Translate(dir.Mul((-qb + sq) / (2 * qa)))
	return out, 2, CaseSecant
}

// CircleCircleIntersect intersects two circles. For secant circles, the first
// point lies to the right of the line from c0 to c1 in a y-down coordinate
// system.
func CircleCircleIntersect(c0 Point, r0 float64, c1 Point, r1 float64) ([2]Point, int, IntersectionCase) {
	var out [2]Point
	v := c1.Sub(c0)
	d := v.Hypot()
	switch {
	case d == 0 && r0 == r1:
		return out, 0, CaseIdentical
	case d < math.Abs(r0-r1):
		return out, 0, CaseContained
	case d > r0+r1:
		return out, 0, CaseDisjoint
	}
	u := v.Mul(1 / d)
	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - a*a
	m := c0.Translate(u.Mul(a))
	if h2 <= 0 || nearZero(h2, r0*r0) {
		out[0] = m
		return out, 1, CaseTangent
	}
	h := math.Sqrt(h2)
	n := u.Perp()
	out[0] = m.Translate(n.Mul(h))
	out[1] = m.Translate(n.Mul(-h))
	return out, 2, CaseSecant
}

// extrapolationKind is the outcome of extrapolating two segment ends.
type extrapolationKind int

const (
	// Both ends are straight; a miter join does the job.
	extrapolateMiter extrapolationKind = iota
	// No meeting point could be constructed.
	extrapolateRound
	// One end is straight and its line misses the other end's circle. The
	// ends are extended by fixed-length handles.
	extrapolateHandles
	// The ends meet at a point; see extrapolation.pieces.
	extrapolateMeet
)

// extension describes one segment end continued along its osculating circle,
// or along its tangent if the end is straight.
type extension struct {
	p   Point
	dir Vec2 // unit direction of travel away from the segment
	k   float64
	// circle; unset for straight ends
	center Point
	radius float64
}

func (e extension) straight() bool { return e.k == 0 }

// sweep returns the angle the extension travels along its circle to reach x,
// in [0, 2π).
func (e extension) sweep(x Point) float64 {
	from := e.p.Sub(e.center)
	to := x.Sub(e.center)
	phi := math.Atan2(from.Cross(to), from.Dot(to))
	if e.k < 0 {
		phi = -phi
	}
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi
}

// to returns the control points of the extension's piece from its end point
// to x, in the extension's direction of travel.
func (e extension) to(x Point) (Point, Point) {
	if e.straight() {
		l := lineCubic(e.p, x)
		return l.P1, l.P2
	}
	sw := e.sweep(x)
	h := ArcHandleLength(e.radius, sw)
	turn := sw
	if e.k < 0 {
		turn = -sw
	}
	dx := e.dir.Rotate(turn)
	return e.p.Translate(e.dir.Mul(h)), x.Translate(dx.Mul(-h))
}

func newExtension(p Point, dir Vec2, k float64) extension {
	e := extension{p: p, dir: dir}
	if math.Abs(k) < straightCurvature {
		return e
	}
	e.k = k
	e.center = p.Translate(dir.Perp().Mul(1 / k))
	e.radius = 1 / math.Abs(k)
	return e
}

type extrapolation struct {
	kind extrapolationKind
	// reason explains a fallback to extrapolateRound.
	reason string
	x      Point
	// Pieces from a's end to x and from b's start to x, each as two control
	// points in its own direction of travel.
	a, b [2]Point
}

// extrapolate decides how to continue the end of a and the start of b until
// they meet. b's start is treated as the end of its reverse, so both ends are
// handled alike.
func extrapolate(a, b CubicBez) extrapolation {
	ta, tb, ok := endTangents(a, b)
	if !ok {
		return extrapolation{kind: extrapolateRound, reason: "degenerate tangent"}
	}
	ka := a.EndCurvature()
	kb := b.Reverse().EndCurvature()
	if math.Abs(ka) < straightCurvature && math.Abs(kb) < straightCurvature {
		return extrapolation{kind: extrapolateMiter}
	}
	if math.Abs(ka) >= sentinelCurvature || math.Abs(kb) >= sentinelCurvature {
		return extrapolation{kind: extrapolateRound, reason: "vanishing derivative"}
	}
	ea := newExtension(a.P3, ta, ka)
	eb := newExtension(b.P0, tb.Negate(), kb)

	var x Point
	switch {
	case ea.straight() && eb.straight():
		return extrapolation{kind: extrapolateMiter}
	case ea.straight() || eb.straight():
		line, circle := ea, eb
		if eb.straight() {
			line, circle = eb, ea
		}
		pts, n, _ := CircleLineIntersect(circle.center, circle.radius, line.p, line.dir)
		best := math.Inf(1)
		for _, pt := range pts[:n] {
			if s := pt.Sub(line.p).Dot(line.dir); s > 0 && s < best {
				best, x = s, pt
			}
		}
		if math.IsInf(best, 1) {
			return extrapolation{kind: extrapolateHandles}
		}
	default:
		pts, n, ic := CircleCircleIntersect(ea.center, ea.radius, eb.center, eb.radius)
		if ic != CaseTangent && ic != CaseSecant {
			return extrapolation{kind: extrapolateRound, reason: "circles " + ic.String()}
		}
		best := math.Inf(1)
		for _, pt := range pts[:n] {
			if sw := ea.sweep(pt) + eb.sweep(pt); sw < best {
				best, x = sw, pt
			}
		}
	}

	for _, e := range [...]extension{ea, eb} {
		if !e.straight() && e.sweep(x) > math.Pi {
			return extrapolation{kind: extrapolateRound, reason: "sweep exceeds half a turn"}
		}
	}
	out := extrapolation{kind: extrapolateMeet, x: x}
	out.a[0], out.a[1] = ea.to(x)
	out.b[0], out.b[1] = eb.to(x)
	return out
}

func extrapolateJoin(a, b CubicBez, miterLimit float64) Join {
	e := extrapolate(a, b)
	switch e.kind {
	case extrapolateMiter:
		return miterJoin(a, b, miterLimit)
	case extrapolateRound:
		Logger().Debug("extrapolated join fell back to round", slog.String("reason", e.reason))
		return roundJoin(a, b)
	case extrapolateHandles:
		pa, pb := a.P3, b.P0
		ta, tb, _ := endTangents(a, b)
		h := pa.Distance(pb) / 3
		j := Join{Style: JoinExtrapolate}
		j.push(Control(pa.Translate(ta.Mul(h))), Control(pb.Translate(tb.Mul(-h))))
		return j
	case extrapolateMeet:
		j := Join{Style: JoinExtrapolate}
		j.push(
			Control(e.a[0]),
			Control(e.a[1]),
			Vertex(e.x),
			// b's piece runs towards x; reverse it for path order.
			Control(e.b[1]),
			Control(e.b[0]),
		)
		return j
	default:
		panic("unreachable")
	}
}
