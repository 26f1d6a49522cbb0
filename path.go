package bez

import (
	"errors"
	"fmt"
)

// ErrMalformedPath is returned by [Path.Validate] for point arrays that don't
// follow the vertex, control, control, vertex layout.
var ErrMalformedPath = errors.New("malformed path")

// Path is a chain of cubic Bézier segments stored as a flat point array in the
// order v c c v c c v …, where consecutive segments share their vertex.
//
// The final vertex of a closed path carries [RoleClosed] and coincides with the
// first vertex.
type Path []PathPoint

// NewPath builds a path from a chain of segments. Each segment must start where
// the previous one ended; the start point of every segment after the first is
// taken from its predecessor.
func NewPath(segs ...CubicBez) Path {
	if len(segs) == 0 {
		return nil
	}
	p := make(Path, 0, 3*len(segs)+1)
	p = append(p, Vertex(segs[0].P0))
	for _, s := range segs {
		p = append(p, Control(s.P1), Control(s.P2), Vertex(s.P3))
	}
	return p
}

// NumSegments returns the number of cubic segments in the path.
func (p Path) NumSegments() int {
	if len(p) < 4 {
		return 0
	}
	return (len(p) - 1) / 3
}

// Segment returns the i-th cubic segment.
func (p Path) Segment(i int) CubicBez {
	j := 3 * i
	return CubicBez{p[j].Point, p[j+1].Point, p[j+2].Point, p[j+3].Point}
}

// Segments returns all segments of the path.
func (p Path) Segments() []CubicBez {
	n := p.NumSegments()
	out := make([]CubicBez, n)
	for i := range n {
		out[i] = p.Segment(i)
	}
	return out
}

// Closed reports whether the path's final vertex is marked as closing the path.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Role.Has(RoleClosed)
}

// Reverse returns the path traversed in the opposite direction.
func (p Path) Reverse() Path {
	closed := p.Closed()
	out := make(Path, len(p))
	for i, pp := range p {
		pp.Role &^= RoleClosed
		out[len(p)-1-i] = pp
	}
	if closed && len(out) > 0 {
		out[len(out)-1].Role |= RoleClosed
	}
	return out
}

// Points returns the path's coordinates without roles.
func (p Path) Points() []Point {
	out := make([]Point, len(p))
	for i, pp := range p {
		out[i] = pp.Point
	}
	return out
}

// Validate checks that the path has 3k+1 points with k ≥ 1, that every point
// has the role its position demands and that all coordinates are finite. The
// returned error wraps [ErrMalformedPath].
func (p Path) Validate() error {
	if len(p) < 4 || (len(p)-1)%3 != 0 {
		return fmt.Errorf("%w: %d points, want 3k+1 with k ≥ 1", ErrMalformedPath, len(p))
	}
	for i, pp := range p {
		isVertex := i%3 == 0
		switch {
		case isVertex && !pp.Role.Has(RoleVertex):
			return fmt.Errorf("%w: point %d has role %s, want vertex", ErrMalformedPath, i, pp.Role)
		case !isVertex && !pp.Role.Has(RoleControl):
			return fmt.Errorf("%w: point %d has role %s, want control", ErrMalformedPath, i, pp.Role)
		case pp.Role.Has(RoleClosed) && i != len(p)-1:
			return fmt.Errorf("%w: point %d closes the path but isn't last", ErrMalformedPath, i)
		}
	}
	for i := range p.NumSegments() {
		if seg := p.Segment(i); seg.IsNaN() || seg.IsInf() {
			return fmt.Errorf("%w: segment %d has a non-finite coordinate", ErrMalformedPath, i)
		}
	}
	return nil
}

// Length returns the arc length of the path.
func (p Path) Length(accuracy float64) float64 {
	var l float64
	for i := range p.NumSegments() {
		l += p.Segment(i).Arclen(accuracy)
	}
	return l
}

// BoundingBox returns the tight bounding box of the path.
func (p Path) BoundingBox() Rect {
	bbox := EmptyRect()
	for i := range p.NumSegments() {
		p.Segment(i).ExtremaBBox(&bbox)
	}
	return bbox
}

// Flatten approximates the path with a polyline, sampling every segment n times.
// Shared vertices appear once.
func (p Path) Flatten(n int) []Point {
	segs := p.NumSegments()
	out := make([]Point, 0, segs*n+1)
	for i := range segs {
		out = p.Segment(i).AppendFlatten(out, n, i == 0)
	}
	return out
}

// PathLocation identifies a position on a path by segment index and parameter.
type PathLocation struct {
	Segment int
	T       float64
}

// Nearest returns the location on p closest to pt, along with the distance,
// using [CubicBez.ClosestPoint] on every segment.
func (p Path) Nearest(pt Point, samples int) (PathLocation, float64) {
	var best option[float64]
	var loc PathLocation
	for i := range p.NumSegments() {
		t, d, _ := p.Segment(i).ClosestPoint(pt, samples)
		if !best.isSet || d < best.value {
			best.set(d)
			loc = PathLocation{i, t}
		}
	}
	return loc, best.value
}

// Winding returns the winding number of pt with respect to the path, treating
// the path as closed. Each segment is flattened with the given number of samples.
func (p Path) Winding(pt Point, samples int) int {
	poly := p.Flatten(samples)
	if len(poly) < 2 {
		return 0
	}
	var w int
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && b.Sub(a).Cross(pt.Sub(a)) > 0 {
				w++
			}
		} else if b.Y <= pt.Y && b.Sub(a).Cross(pt.Sub(a)) < 0 {
			w--
		}
	}
	return w
}

// Contains reports whether pt lies inside the path under the nonzero winding
// rule.
func (p Path) Contains(pt Point, samples int) bool {
	return p.Winding(pt, samples) != 0
}
