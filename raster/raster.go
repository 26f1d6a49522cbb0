// Package raster renders paths into coverage masks, for hit testing shapes
// at pixel resolution.
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/laxkit/bez"
	"golang.org/x/image/vector"
)

// Mask fills paths under the nonzero rule and returns the resulting coverage
// for the pixels in r. Path coordinates are in pixels; the pixel (x, y) covers
// the square from (x, y) to (x+1, y+1). Every path is treated as closed.
func Mask(r image.Rectangle, paths ...bez.Path) *image.Alpha {
	dst := image.NewAlpha(r)
	if r.Empty() {
		return dst
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	off := bez.Vec(-float64(r.Min.X), -float64(r.Min.Y))
	f := func(p bez.Point) (float32, float32) {
		p = p.Translate(off)
		return float32(p.X), float32(p.Y)
	}
	for _, p := range paths {
		if p.NumSegments() == 0 {
			continue
		}
		z.MoveTo(f(p[0].Point))
		for _, seg := range p.Segments() {
			x1, y1 := f(seg.P1)
			x2, y2 := f(seg.P2)
			x3, y3 := f(seg.P3)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		}
		z.ClosePath()
	}
	z.Draw(dst, r, image.Opaque, image.Point{})
	return dst
}

// Coverage returns the mask's coverage of the pixel containing pt, between 0
// and 1. Points outside the mask have no coverage.
func Coverage(mask *image.Alpha, pt bez.Point) float64 {
	x := int(math.Floor(pt.X))
	y := int(math.Floor(pt.Y))
	if !image.Pt(x, y).In(mask.Rect) {
		return 0
	}
	return float64(mask.AlphaAt(x, y).A) / 0xFF
}

// Hit reports whether the pixel containing pt is at least half covered.
func Hit(mask *image.Alpha, pt bez.Point) bool {
	return Coverage(mask, pt) >= 0.5
}
