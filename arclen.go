package bez

import (
	"fmt"
	"math"
)

// Refinement passes used by [CubicBez.DistanceToT] and [CubicBez.TToDistance]
// after the initial uniform march.
const lengthRefinements = 2

// Sample counts that work well for curves spanning up to a few thousand units.
const (
	DefaultSamples    = 32
	DefaultResolution = 64
)

func checkSamples(fn string, n, least int) {
	if n < least {
		panic(fmt.Sprintf("bez: %s called with %d samples, need at least %d", fn, n, least))
	}
}

// ClosestPoint approximates the point on the curve nearest to pt.
//
// The curve is sampled at samples+1 evenly spaced parameters, and the sampling
// is then repeated once over the interval bracketing the best sample. This is a
// heuristic, not an exact projection: on strongly curved or looping segments it
// can settle on a local minimum that isn't the global one. [CubicBez.Nearest]
// is slower but exact.
func (c CubicBez) ClosestPoint(pt Point, samples int) (t, dist float64, at Point) {
	checkSamples("ClosestPoint", samples, 2)
	lo, hi := 0.0, 1.0
	for range 2 {
		step := (hi - lo) / float64(samples)
		best := math.Inf(1)
		for i := range samples + 1 {
			ti := lo + float64(i)*step
			p := c.Eval(ti)
			if d := p.DistanceSquared(pt); d < best {
				best = d
				t, at = ti, p
			}
		}
		lo, hi = max(lo, t-step), min(hi, t+step)
	}
	return t, at.Distance(pt), at
}

// SampledLength approximates the arc length by the length of the polyline
// through samples+1 evenly spaced points.
func (c CubicBez) SampledLength(samples int) float64 {
	checkSamples("SampledLength", samples, 1)
	var l float64
	prev := c.P0
	for i := 1; i <= samples; i++ {
		p := c.Eval(float64(i) / float64(samples))
		l += p.Distance(prev)
		prev = p
	}
	return l
}

// DistanceToT returns the parameter at which the arc length measured from the
// start reaches d.
//
// The curve is marched in resolution uniform steps. When a step brackets d, that
// step is marched again with the same resolution, at most twice, and the final
// step is interpolated linearly. Distances beyond the curve's length map to 1.
// The mapping is only as uniform as the curve's parametrization, so accuracy
// degrades on long or very unevenly parametrized segments.
func (c CubicBez) DistanceToT(d float64, resolution int) float64 {
	checkSamples("DistanceToT", resolution, 1)
	if d <= 0 {
		return 0
	}
	var acc float64
	lo := 0.0
	step := 1.0 / float64(resolution)
	prev := c.P0
	for round := 0; round <= lengthRefinements; round++ {
		bracketed := false
		for i := 1; i <= resolution; i++ {
			t := lo + float64(i)*step
			p := c.Eval(t)
			l := p.Distance(prev)
			if acc+l >= d {
				if round == lengthRefinements || l == 0 {
					if l == 0 {
						return t
					}
					return t - step + step*(d-acc)/l
				}
				lo = t - step
				bracketed = true
				break
			}
			acc += l
			prev = p
		}
		if !bracketed {
			if round == 0 {
				return 1
			}
			// The finer polyline is never shorter than the chord it replaces,
			// so this only happens through rounding.
			return min(lo+float64(resolution)*step, 1)
		}
		step /= float64(resolution)
	}
	return lo
}

// TToDistance returns the arc length from the start of the curve to t, using
// the same marching scheme as [CubicBez.DistanceToT].
func (c CubicBez) TToDistance(t float64, resolution int) float64 {
	checkSamples("TToDistance", resolution, 1)
	if t <= 0 {
		return 0
	}
	t = min(t, 1)
	var acc float64
	lo := 0.0
	step := 1.0 / float64(resolution)
	prev := c.P0
	for round := 0; round <= lengthRefinements; round++ {
		n := int(math.Floor((t - lo) / step))
		for i := 1; i <= n; i++ {
			p := c.Eval(lo + float64(i)*step)
			acc += p.Distance(prev)
			prev = p
		}
		lo += float64(n) * step
		if t-lo <= 1e-15 {
			return acc
		}
		if round == lengthRefinements {
			break
		}
		step /= float64(resolution)
	}
	return acc + c.Eval(t).Distance(prev)
}

// Nearest finds the parameter of the point on the curve nearest to pt by
// solving for the zeros of the derivative of the squared distance, a quintic,
// on a fine bracketing of [0, 1].
//
// It returns the squared distance and the parameter.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	f := func(t float64) float64 {
		return c.Deriv(t).Dot(c.Eval(t).Sub(pt))
	}
	bestT := 0.0
	best := c.P0.DistanceSquared(pt)
	if d := c.P3.DistanceSquared(pt); d < best {
		best, bestT = d, 1
	}
	const n = 64
	prevT := 0.0
	prevF := f(0)
	for i := 1; i <= n; i++ {
		ti := float64(i) / n
		fi := f(ti)
		if prevF < 0 && fi >= 0 {
			// Distance has a local minimum in [prevT, ti]; bisect.
			a, b := prevT, ti
			for b-a > accuracy*1e-3 && b-a > 1e-15 {
				m := 0.5 * (a + b)
				if f(m) < 0 {
					a = m
				} else {
					b = m
				}
			}
			tm := 0.5 * (a + b)
			if d := c.Eval(tm).DistanceSquared(pt); d < best {
				best, bestT = d, tm
			}
		}
		prevT, prevF = ti, fi
	}
	return best, bestT
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * ddNorm2 / dNorm2
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
