package bez

import (
	"fmt"
	"log/slog"
)

// MaxCurveHits is the most intersections [IntersectCubics] reports. Two
// cubics that aren't identical intersect in at most nine points.
const MaxCurveHits = 9

// Defaults for [IntersectCubics].
const (
	DefaultTolerance = 1e-3
	DefaultMaxDepth  = 12
)

// LineHit is a crossing of a line with a path.
type LineHit struct {
	Point Point
	// Segment is the index of the path segment that was crossed.
	Segment int
	// T is the parameter on that segment.
	T float64
}

// CurveHit is an intersection of two cubic Béziers.
type CurveHit struct {
	Point Point
	// T1 and T2 are the parameters on the first and second curve.
	T1, T2 float64
}

// IntersectLinePath finds where line crosses the cubic segments of path.
//
// Coordinates are transformed so that line.P0 maps to the origin and line.P1 to
// (1, 0). Every segment is then sampled at resolution uniform parameter steps;
// a sign change of the transformed y coordinate between two samples is a
// crossing, located by linear interpolation. Samples lying exactly on the line
// have no side: the path only crosses there if the samples before and after
// them are on opposite sides, and the first such sample is the hit. A path that
// touches the line without crossing it produces no hit, and neither does an
// open path that merely starts or ends on it. Unless infinite is set, crossings
// whose x lies outside [0, 1], that is, beyond the ends of the line segment,
// are ignored. Hits are reported in path order.
//
// The scan starts at from. Once max hits have been collected, the scan stops
// and returns the location to resume from along with false. A complete scan
// returns true.
func IntersectLinePath(
	line Line,
	infinite bool,
	path Path,
	resolution int,
	from PathLocation,
	max int,
) ([]LineHit, PathLocation, bool) {
	checkSamples("IntersectLinePath", resolution, 1)
	if max < 1 {
		panic(fmt.Sprintf("bez: IntersectLinePath called with max = %d", max))
	}
	if from.Segment < 0 {
		panic(fmt.Sprintf("bez: IntersectLinePath called with segment %d", from.Segment))
	}
	end := PathLocation{Segment: path.NumSegments()}
	frame, ok := lineFrame(line.P0, line.P1)
	if !ok {
		return nil, end, true
	}

	var (
		hits []LineHit
		// side of the last sample off the line, 0 before the first one
		side  float64
		prevT float64
		prev  Point
		// first sample on the line since the last one off it
		touch  option[LineHit]
		touchX float64
	)
	for i := from.Segment; i < path.NumSegments(); i++ {
		seg := path.Segment(i).Transform(frame)
		t0 := 0.0
		if i == from.Segment {
			t0 = from.T
			prev = seg.Eval(t0)
			side = sideOf(prev.Y)
			if side == 0 && path.Closed() && from == (PathLocation{}) {
				// A closed path starting on the line crosses there if it
				// arrives from the other side.
				side = sideBeforeEnd(path, frame, resolution)
				touch.set(LineHit{Segment: i, T: t0})
				touchX = prev.X
			}
		}
		// The previous segment's last sample is this segment's first.
		prevT = t0
		for k := 1; k <= resolution; k++ {
			t := float64(k) / float64(resolution)
			if t <= t0 {
				continue
			}
			p := seg.Eval(t)
			if p.Y == 0 {
				if !touch.isSet {
					touch.set(LineHit{Segment: i, T: t})
					touchX = p.X
				}
				continue
			}
			s := sideOf(p.Y)
			if side != 0 && s != side {
				var hit LineHit
				var x float64
				if touch.isSet {
					hit, x = touch.value, touchX
				} else {
					f := prev.Y / (prev.Y - p.Y)
					x = prev.X + f*(p.X-prev.X)
					hit = LineHit{Segment: i, T: prevT + f*(t-prevT)}
				}
				if infinite || (x >= 0 && x <= 1) {
					hit.Point = line.Eval(x)
					hits = append(hits, hit)
					if len(hits) == max {
						next := PathLocation{Segment: i, T: t}
						if t >= 1 {
							next = PathLocation{Segment: i + 1}
						}
						if next.Segment < end.Segment || next.T > 0 {
							Logger().Debug("line intersection scan stopped early",
								slog.Int("hits", len(hits)),
								slog.Int("segment", next.Segment),
								slog.Float64("t", next.T))
							return hits, next, false
						}
						return hits, end, true
					}
				}
			}
			side, prevT, prev = s, t, p
			touch = option[LineHit]{}
		}
	}
	return hits, end, true
}

// sideBeforeEnd returns the side of the last sample off the line, scanning
// back from the end of the transformed path.
func sideBeforeEnd(path Path, frame Affine, resolution int) float64 {
	for i := path.NumSegments() - 1; i >= 0; i-- {
		seg := path.Segment(i).Transform(frame)
		for k := resolution - 1; k >= 0; k-- {
			if s := sideOf(seg.Eval(float64(k) / float64(resolution)).Y); s != 0 {
				return s
			}
		}
	}
	return 0
}

// sideOf returns the side of the x-axis a transformed y coordinate lies on.
func sideOf(y float64) float64 {
	switch {
	case y > 0:
		return 1
	case y < 0:
		return -1
	default:
		return 0
	}
}

type cubicIntersector struct {
	tolerance float64
	maxDepth  int
	hits      [MaxCurveHits]CurveHit
	n         int
	full      bool
}

// IntersectCubics finds the intersections of a and b by recursive subdivision.
//
// Both curves are split at their midpoints and the four combinations of halves
// whose bounding boxes overlap are searched further. A branch ends when the
// boxes are disjoint, or when both boxes are smaller than tolerance in both
// dimensions or maxDepth is reached; in the latter two cases the crossing of the
// two pieces' chords is recorded. Points within 8×tolerance of an earlier result
// are dropped. Results are sorted by T1.
//
// A curve is not tested against itself; see [CubicBez.SelfIntersection]. The
// final result is false if more than [MaxCurveHits] distinct intersections were
// found and the search was cut short.
func IntersectCubics(a, b CubicBez, tolerance float64, maxDepth int) ([MaxCurveHits]CurveHit, int, bool) {
	if tolerance <= 0 {
		panic(fmt.Sprintf("bez: IntersectCubics called with tolerance %g", tolerance))
	}
	if maxDepth < 1 {
		panic(fmt.Sprintf("bez: IntersectCubics called with maxDepth %d", maxDepth))
	}
	ci := cubicIntersector{
		tolerance: tolerance,
		maxDepth:  maxDepth,
	}
	ci.search(a, 0, 1, b, 0, 1, 0)
	if ci.full {
		Logger().Debug("curve intersection buffer full",
			slog.Int("hits", ci.n),
			slog.Float64("tolerance", tolerance))
	}
	return ci.hits, ci.n, !ci.full
}

func (ci *cubicIntersector) search(a CubicBez, a0, a1 float64, b CubicBez, b0, b1 float64, depth int) {
	if ci.full {
		return
	}
	ra, rb := a.ControlBox(), b.ControlBox()
	if !ra.Overlaps(rb) {
		return
	}
	tol := ci.tolerance
	small := ra.Width() < tol && ra.Height() < tol && rb.Width() < tol && rb.Height() < tol
	if small || depth >= ci.maxDepth {
		ci.leaf(a, a0, a1, b, b0, b1)
		return
	}
	al, ar := a.Subdivide()
	bl, br := b.Subdivide()
	am := 0.5 * (a0 + a1)
	bm := 0.5 * (b0 + b1)
	ci.search(al, a0, am, bl, b0, bm, depth+1)
	ci.search(al, a0, am, br, bm, b1, depth+1)
	ci.search(ar, am, a1, bl, b0, bm, depth+1)
	ci.search(ar, am, a1, br, bm, b1, depth+1)
}

func (ci *cubicIntersector) leaf(a CubicBez, a0, a1 float64, b CubicBez, b0, b1 float64) {
	sa, sb := 0.5, 0.5
	da := a.P3.Sub(a.P0)
	db := b.P3.Sub(b.P0)
	if x, y, ok := solve2x2(da, db.Negate(), b.P0.Sub(a.P0)); ok {
		sa = min(max(x, 0), 1)
		sb = min(max(y, 0), 1)
	}
	pt := a.P0.Translate(da.Mul(sa)).Midpoint(b.P0.Translate(db.Mul(sb)))
	hit := CurveHit{
		Point: pt,
		T1:    a0 + sa*(a1-a0),
		T2:    b0 + sb*(b1-b0),
	}

	limit := 8 * ci.tolerance
	for _, h := range ci.hits[:ci.n] {
		if h.Point.Distance(pt) < limit {
			return
		}
	}
	if ci.n == MaxCurveHits {
		ci.full = true
		return
	}
	// Insertion sort by T1.
	i := ci.n
	for i > 0 && ci.hits[i-1].T1 > hit.T1 {
		ci.hits[i] = ci.hits[i-1]
		i--
	}
	ci.hits[i] = hit
	ci.n++
}
