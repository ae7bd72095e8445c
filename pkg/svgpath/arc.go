package svgpath

import "math"

// arcToCurves converts the elliptical arc from (x1, y1) to (x2, y2) into
// cubic curves of at most 90 degrees each, following the endpoint to center
// parameterization in the SVG implementation notes (appendix F.6).
func arcToCurves(x1, y1, rx, ry, rotation float64, largeArc, sweep bool, x2, y2 float64) []*DrawTo {
	if x1 == x2 && y1 == y2 {
		// An arc whose endpoints are identical is omitted.
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []*DrawTo{{Command: LineTo, X: x2, Y: y2}}
	}

	phi := rotation * math.Pi / 180
	cos, sin := math.Cos(phi), math.Sin(phi)

	// Step 1: compute (x1', y1')
	dx2 := (x1 - x2) / 2
	dy2 := (y1 - y2) / 2
	x1p := cos*dx2 + sin*dy2
	y1p := -sin*dx2 + cos*dy2

	// Scale up radii that are too small to reach the end point.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: compute (cx', cy')
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// Step 3: compute (cx, cy)
	cx := cos*cxp - sin*cyp + (x1+x2)/2
	cy := sin*cxp + cos*cyp + (y1+y2)/2

	// Step 4: compute the start angle and the sweep.
	angle := func(ux, uy, vx, vy float64) float64 {
		return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	}
	theta := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	delta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	// Maps a point on the unit circle onto the ellipse.
	point := func(ux, uy float64) (float64, float64) {
		return cx + rx*ux*cos - ry*uy*sin, cy + rx*ux*sin + ry*uy*cos
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	curves := make([]*DrawTo, 0, n)
	for i := 0; i < n; i++ {
		t1 := theta + float64(i)*step
		t2 := t1 + step
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		cos2, sin2 := math.Cos(t2), math.Sin(t2)

		c1x, c1y := point(cos1-k*sin1, sin1+k*cos1)
		c2x, c2y := point(cos2+k*sin2, sin2-k*cos2)
		ex, ey := point(cos2, sin2)
		if i == n-1 {
			ex, ey = x2, y2
		}
		curves = append(curves, &DrawTo{
			Command: CurveTo,
			X:       ex, Y: ey,
			X1: c1x, Y1: c1y,
			X2: c2x, Y2: c2y,
		})
	}
	return curves
}
