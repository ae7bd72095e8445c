package geometry

import "math"

// CubicBezier is a cubic Bézier curve from P0 to P3 with control points P1 and P2.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// QuadraticToCubic returns the cubic curve identical to the quadratic curve
// from p0 to p1 with control point q.
func QuadraticToCubic(p0, q, p1 Point) CubicBezier {
	return CubicBezier{
		P0: p0,
		P1: p0.Lerp(q, 2.0/3.0),
		P2: p1.Lerp(q, 2.0/3.0),
		P3: p1,
	}
}

// At evaluates the curve at t in [0, 1].
func (c CubicBezier) At(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// MaxSegments caps Segments for curves with huge or non-finite control
// points.
const MaxSegments = 1 << 16

// Segments returns how many equal parameter steps keep the chord error of
// the flattened curve under tolerance, at most MaxSegments. The error of n
// uniform steps is bounded by 3/4 of the largest second difference of the
// control points over n².
func (c CubicBezier) Segments(tolerance float64) int {
	dd1 := c.P0.Minus(c.P1.Scale(2)).Add(c.P2).Magnitude()
	dd2 := c.P1.Minus(c.P2.Scale(2)).Add(c.P3).Magnitude()
	dd := math.Max(dd1, dd2)
	if dd == 0 || tolerance <= 0 {
		return 1
	}
	n := math.Ceil(math.Sqrt(0.75 * dd / tolerance))
	if !(n < MaxSegments) {
		return MaxSegments
	}
	return int(math.Max(1, n))
}

// Flatten approximates the curve by a polyline within tolerance. The start
// point P0 is not included; the last point is exactly P3.
func (c CubicBezier) Flatten(tolerance float64) Polyline {
	n := c.Segments(tolerance)
	points := make(Polyline, 0, n)
	for i := 1; i < n; i++ {
		points = append(points, c.At(float64(i)/float64(n)))
	}
	return append(points, c.P3)
}
