package bez

import (
	"fmt"
	"math"
)

// ArcHandleLength returns the distance between an end point of a circular arc
// with radius r and included angle theta and the nearest control point of the
// cubic Bézier approximating it. The result is negative for negative angles.
func ArcHandleLength(r, theta float64) float64 {
	den := 1 - math.Cos(theta)
	if den == 0 {
		return 0
	}
	return 4 * r / 3 * (2*math.Sin(theta/2) - math.Sin(theta)) / den
}

// EllipseArc approximates an elliptical arc with n vertices.
//
// The ellipse is centered on center and has the radii rx and ry along the
// directions xAxis and yAxis, which are usually perpendicular unit vectors. The
// point at angle φ is center + xAxis·rx·cos φ + yAxis·ry·sin φ.
//
// If start == end, the result is the closed, full ellipse, made of n segments
// that each span 2π/n. Otherwise the arc from start to end is divided into n-1
// segments.
func EllipseArc(center Point, rx, ry float64, xAxis, yAxis Vec2, start, end float64, n int) Path {
	checkSamples("EllipseArc", n, 2)
	checkRadius("EllipseArc", rx)
	checkRadius("EllipseArc", ry)
	full := start == end
	theta := (end - start) / float64(n-1)
	segs := n - 1
	if full {
		theta = 2 * math.Pi / float64(n)
		segs = n
	}

	at := func(phi float64) (Point, Vec2) {
		sin, cos := math.Sincos(phi)
		p := center.Translate(xAxis.Mul(rx * cos)).Translate(yAxis.Mul(ry * sin))
		d := yAxis.Mul(ry * cos).Sub(xAxis.Mul(rx * sin))
		return p, d
	}
	k := ArcHandleLength(1, theta)

	out := make(Path, 0, 3*segs+1)
	p0, d0 := at(start)
	out = append(out, Vertex(p0))
	for i := range segs {
		phi := start + float64(i+1)*theta
		p1, d1 := at(phi)
		if full && i == segs-1 {
			p1 = out[0].Point
		}
		out = append(out,
			Control(p0.Translate(d0.Mul(k))),
			Control(p1.Translate(d1.Mul(-k))),
			Vertex(p1))
		p0, d0 = p1, d1
	}
	if full {
		out[len(out)-1].Role |= RoleClosed
	}
	return out
}

// Circle approximates a circle with n segments. It starts at the rightmost
// point and runs clockwise in a y-down coordinate system.
func Circle(center Point, r float64, n int) Path {
	return EllipseArc(center, r, r, Vec(1, 0), Vec(0, 1), 0, 0, n)
}

// RoundedRectRadii holds the horizontal (X) and vertical (Y) radius of each
// corner of a rounded rectangle. A zero component makes the corner sharp.
type RoundedRectRadii struct {
	TopLeft     Vec2
	TopRight    Vec2
	BottomRight Vec2
	BottomLeft  Vec2
}

// UniformRadii returns radii that round every corner with the same circular
// radius.
func UniformRadii(r float64) RoundedRectRadii {
	v := Vec(r, r)
	return RoundedRectRadii{v, v, v, v}
}

// Gaps between the pieces of a rounded rectangle shorter than this are not
// filled with a straight segment.
const roundedRectGap = 1e-9

// RoundedRect builds the closed outline of the rectangle with top-left corner
// (x, y), width w and height h, rounding its corners by radii. Radii are
// clamped to half the width and height.
//
// The path starts at the top of the left edge and runs clockwise in a y-down
// coordinate system. Sharp corners are single vertices marked [RoleCorner].
// Straight segments are only inserted between corners that don't touch.
func RoundedRect(x, y, w, h float64, radii RoundedRectRadii) Path {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	clamp := func(r Vec2) Vec2 {
		return Vec(min(max(r.X, 0), w/2), min(max(r.Y, 0), h/2))
	}
	tl, tr := clamp(radii.TopLeft), clamp(radii.TopRight)
	br, bl := clamp(radii.BottomRight), clamp(radii.BottomLeft)

	type corner struct {
		at         Point
		start, end Point
	}
	corners := [4]corner{
		{Pt(x, y), Pt(x, y+tl.Y), Pt(x+tl.X, y)},
		{Pt(x+w, y), Pt(x+w-tr.X, y), Pt(x+w, y+tr.Y)},
		{Pt(x+w, y+h), Pt(x+w, y+h-br.Y), Pt(x+w-br.X, y+h)},
		{Pt(x, y+h), Pt(x+bl.X, y+h), Pt(x, y+h-bl.Y)},
	}
	sharp := func(c corner) bool {
		return c.start == c.at || c.end == c.at
	}

	k := ArcHandleLength(1, math.Pi/2)
	out := make(Path, 0, 25)
	var cur Point
	lineTo := func(p Point) {
		if cur.Distance(p) <= roundedRectGap {
			return
		}
		l := lineCubic(cur, p)
		out = append(out, Control(l.P1), Control(l.P2), Vertex(p))
		cur = p
	}

	for i, c := range corners {
		if sharp(c) {
			if i == 0 {
				out = append(out, Vertex(c.at))
				cur = c.at
			} else {
				lineTo(c.at)
			}
			out[len(out)-1].Role |= RoleCorner
			continue
		}
		if i == 0 {
			out = append(out, Vertex(c.start))
			cur = c.start
		} else {
			lineTo(c.start)
		}
		out = append(out,
			Control(c.start.Lerp(c.at, k)),
			Control(c.end.Lerp(c.at, k)),
			Vertex(c.end))
		cur = c.end
	}

	first := out[0]
	lineTo(first.Point)
	if len(out) == 1 {
		// Degenerate rectangle; emit a single zero-length segment.
		out = append(out, Control(first.Point), Control(first.Point), first)
	}
	last := &out[len(out)-1]
	last.Point = first.Point
	last.Role = first.Role | RoleClosed
	return out
}

func checkRadius(fn string, r float64) {
	if r < 0 || math.IsNaN(r) {
		panic(fmt.Sprintf("bez: %s called with radius %g", fn, r))
	}
}
