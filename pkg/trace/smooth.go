package trace

import (
	"math"

	"penplot/pkg/geometry"
)

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// dpara is twice the signed area of the triangle p0, p1, p2.
func dpara(p0, p1, p2 geometry.Point) float64 {
	return p1.Minus(p0).CrossProductZ(p2.Minus(p0))
}

// ddenom is the L1 length of p0 to p2, the scale dpara is compared against.
func ddenom(p0, p2 geometry.Point) float64 {
	d := p2.Minus(p0)
	r := geometry.Vector2{X: -sign(d.Y), Y: sign(d.X)}
	return r.Y*d.X - r.X*d.Y
}

// smooth fits a closed curve through the edge midpoints of polygon. Each
// vertex becomes a corner when it sticks out far enough relative to its
// neighbours, and a cubic bending around it otherwise.
func smooth(polygon geometry.Polyline, alphaMax float64) Curve {
	n := len(polygon)
	curve := Curve{
		Start:    polygon[n-1].Midpoint(polygon[0]),
		Segments: make([]Segment, n),
	}
	for j := 0; j < n; j++ {
		i := (j + n - 1) % n
		k := (j + 1) % n
		vi, vj, vk := polygon[i], polygon[j], polygon[k]
		end := vj.Midpoint(vk)

		alpha := 4.0 / 3.0
		if denom := ddenom(vi, vk); denom != 0 {
			dd := math.Abs(dpara(vi, vj, vk) / denom)
			alpha = 0
			if dd > 1 {
				alpha = (1 - 1/dd) / 0.75
			}
		}

		if alpha >= alphaMax {
			curve.Segments[j] = Segment{Kind: Corner, C: vj, End: end}
			continue
		}
		alpha = math.Min(math.Max(alpha, 0.55), 1)
		curve.Segments[j] = Segment{
			Kind: Smooth,
			C1:   vi.Lerp(vj, .5+.5*alpha),
			C2:   vk.Lerp(vj, .5+.5*alpha),
			End:  end,
		}
	}
	return curve
}
