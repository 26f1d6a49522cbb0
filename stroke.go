package bez

// Stroke describes how a path is outlined.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join JoinStyle
	// Limit for miter joins, as a distance from the joined end points.
	MiterLimit float64
}

var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       JoinRound,
	MiterLimit: 4.0,
}

func (s Stroke) WithWidth(width float64) Stroke      { s.Width = width; return s }
func (s Stroke) WithJoin(join JoinStyle) Stroke      { s.Join = join; return s }
func (s Stroke) WithMiterLimit(limit float64) Stroke { s.MiterLimit = limit; return s }

// Offset pieces whose ends are closer than this are considered connected.
const offsetGap = 1e-9

// Offset approximates the curve at distance d on the side its tangent's
// [Vec2.Perp] points to. The end points and end tangents are exact; the control
// legs are scaled by 1 - d·κ, where κ is the curvature at the respective end.
//
// The approximation is good for curves without extrema; split other curves
// with [CubicBez.SubdivideAtExtrema] first.
func (c CubicBez) Offset(d float64) CubicBez {
	n0 := c.VisualTangent(0).Normalize().Perp()
	n3 := c.VisualTangent(1).Normalize().Perp()
	s0 := max(1-d*c.StartCurvature(), 0)
	s3 := max(1-d*c.EndCurvature(), 0)
	p0 := c.P0.Translate(n0.Mul(d))
	p3 := c.P3.Translate(n3.Mul(d))
	return CubicBez{
		P0: p0,
		P1: p0.Translate(c.P1.Sub(c.P0).Mul(s0)),
		P2: p3.Translate(c.P2.Sub(c.P3).Mul(s3)),
		P3: p3,
	}
}

// pathBuilder appends chained segments and joins to a path.
type pathBuilder struct {
	out Path
}

func (pb *pathBuilder) segment(c CubicBez) {
	if len(pb.out) == 0 {
		pb.out = append(pb.out, Vertex(c.P0))
	}
	pb.out = append(pb.out, Control(c.P1), Control(c.P2), Vertex(c.P3))
}

func (pb *pathBuilder) line(to Point) {
	from := pb.out[len(pb.out)-1].Point
	pb.segment(lineCubic(from, to))
}

// join connects the end of a to the start of b, which is where the path
// continues.
func (pb *pathBuilder) join(a, b CubicBez, style Stroke) {
	if a.P3.Distance(b.P0) <= offsetGap {
		return
	}
	j := JoinSegments(a, b, style.Join, style.MiterLimit)
	if j.N == 0 {
		pb.line(b.P0)
		return
	}
	pb.out = append(pb.out, j.Slice()...)
	pb.out = append(pb.out, Vertex(b.P0))
}

func (pb *pathBuilder) close() {
	last := &pb.out[len(pb.out)-1]
	last.Point = pb.out[0].Point
	last.Role |= RoleClosed
}

// OffsetPath returns the path at distance d from p, on the side the
// tangents' [Vec2.Perp] point to. Segments are split at their extrema and
// offset with [CubicBez.Offset]; gaps between the offset segments are closed
// with joins of the given stroke's style.
func OffsetPath(p Path, d float64, style Stroke) Path {
	var pieces [][]CubicBez
	for _, seg := range p.Segments() {
		parts := seg.SubdivideAtExtrema()
		for i, part := range parts {
			parts[i] = part.Offset(d)
		}
		pieces = append(pieces, parts)
	}
	if len(pieces) == 0 {
		return nil
	}

	var pb pathBuilder
	for i, parts := range pieces {
		if i > 0 {
			prev := pieces[i-1]
			pb.join(prev[len(prev)-1], parts[0], style)
		}
		for _, part := range parts {
			pb.segment(part)
		}
	}
	if p.Closed() {
		last := pieces[len(pieces)-1]
		pb.join(last[len(last)-1], pieces[0][0], style)
		pb.close()
	}
	return pb.out
}

// StrokeOutline returns the outline of p stroked with style. Open paths get
// butt caps and produce a single closed contour. Closed paths produce an outer
// and an inner contour of opposite orientation, so that the region between
// them is filled under the nonzero rule.
func StrokeOutline(p Path, style Stroke) []Path {
	if p.NumSegments() == 0 {
		return nil
	}
	half := style.Width / 2
	left := OffsetPath(p, half, style)
	right := OffsetPath(p.Reverse(), half, style)
	if p.Closed() {
		return []Path{left, right}
	}

	pb := pathBuilder{out: left}
	pb.line(right[0].Point)
	pb.out = append(pb.out, right[1:]...)
	pb.line(left[0].Point)
	pb.close()
	return []Path{pb.out}
}
