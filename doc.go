// Package bez provides geometry routines for paths made of cubic Bézier
// segments, as used by 2D drawing and hit-testing code.
//
// All operations are pure functions over value types. Nothing is cached, and
// results are returned either as new slices or as fixed-size arrays together
// with a count.
//
// # Paths
//
// A [Path] stores a chain of cubic segments as a flat array of points in the
// order vertex, control, control, vertex, …, where consecutive segments share
// their vertex. Every point carries a [Role]: vertex or control, optionally
// marking a corner or the end of a closed path. Use [Path.Validate] to check
// arrays built by hand.
//
// # Features
//
//   - Evaluation, derivatives and curvature (see [CubicBez])
//   - Tight bounding boxes and extrema (see [CubicBez.ExtremaBBox])
//   - Arc length and arc length parametrization (see [CubicBez.DistanceToT])
//   - Intersections of lines and paths (see [IntersectLinePath]), of two cubics
//     (see [IntersectCubics]) and of a cubic with itself (see
//     [CubicBez.SelfIntersection])
//   - Flattening and polyline simplification (see [ReducePolyline])
//   - Construction of ellipses, circles and rounded rectangles (see
//     [EllipseArc], [RoundedRect]) and of smooth paths through points (see
//     [FitThroughPoints])
//   - Stroke joins (see [JoinSegments]) and outlines (see [StrokeOutline])
//
// Functions that sample curves take explicit sample counts or tolerances.
// Passing a count that cannot produce a result, such as zero samples, is a
// programming error and panics.
//
// # Coordinates
//
// Directions such as [DirTop] and orientations such as "clockwise" assume a
// y-down coordinate system, as used by most raster graphics.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [The canonical form] of cubic Béziers
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [The canonical form]: https://pomax.github.io/bezierinfo/#canonical
package bez
