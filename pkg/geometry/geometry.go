package geometry

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

type LineSegment struct {
	A Point
	B Point
}

type Polyline []Point

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (a Vector2) CrossProductZ(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Scale returns the point scaled by the given factor f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Lerp returns the point a fraction t of the way from p to other.
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + t*(other.X-p.X),
		Y: p.Y + t*(other.Y-p.Y),
	}
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return p.Lerp(other, 0.5)
}

func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

// Distance returns the distance between a point and a line segment.
func (s LineSegment) Distance(p Point) float64 {
	AP := p.Minus(s.A)
	AB := s.A.Minus(s.B)
	mAP := AP.Magnitude()
	mBP := p.Minus(s.B).Magnitude()
	mAB := AB.Magnitude()

	if mAP > mAB || mBP > mAB {
		// closest point on line is outside segment boundaries, so the closest point
		// is the nearest of the two endpoints.
		return math.Min(mAP, mBP)
	}

	return math.Abs(AP.CrossProductZ(AB)) / mAB
}

// Length returns the total length of the polyline.
func (line Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += line[i-1].Distance(line[i])
	}
	return total
}

// Area returns the signed shoelace area of the polyline taken as a closed
// polygon. With Y pointing down, clockwise-on-screen polygons are positive.
func (line Polyline) Area() float64 {
	sum := 0.0
	for i := range line {
		j := (i + 1) % len(line)
		sum += line[i].X*line[j].Y - line[j].X*line[i].Y
	}
	return sum / 2
}

// Simplify simplifies the polyline using the Douglas-Peucker algorithm.
// The first and last points are always kept.
func (points Polyline) Simplify(epsilon float64) Polyline {
	if len(points) < 2 {
		return nil
	}

	// find the point with the max distance from the line segment between the first and last points
	firstPoint, lastPoint := points[0], points[len(points)-1]
	chord := LineSegment{A: firstPoint, B: lastPoint}
	if len(points) == 2 {
		return Polyline{firstPoint, lastPoint}
	}

	dmax := 0.0
	index := 0
	for i := 1; i < len(points)-1; i++ {
		d := chord.Distance(points[i])
		if d > dmax {
			index = i
			dmax = d
		}
	}

	if dmax < epsilon {
		return Polyline{firstPoint, lastPoint}
	}

	// note: need to be careful on the recursive step to not call with < 2 points
	recResults1 := Polyline(points[:index+1]).Simplify(epsilon)
	recResults2 := Polyline(points[index:]).Simplify(epsilon)

	return append(recResults1[:len(recResults1)-1:len(recResults1)-1], recResults2...)
}

// SimplifyClosed simplifies a closed polygon (the last point connects back to
// the first, and is not repeated). The polygon is split at its first point and
// the point farthest from it, each half is simplified with Simplify, and the
// halves are rejoined. The result never has fewer than three points unless
// the input does.
func (points Polyline) SimplifyClosed(epsilon float64) Polyline {
	if len(points) <= 3 {
		return append(Polyline(nil), points...)
	}

	far := 0
	dmax := 0.0
	for i, p := range points {
		if d := p.Distance(points[0]); d > dmax {
			far = i
			dmax = d
		}
	}
	if far == 0 {
		return append(Polyline(nil), points...)
	}

	first := Polyline(points[:far+1]).Simplify(epsilon)
	second := append(append(Polyline(nil), points[far:]...), points[0]).Simplify(epsilon)

	result := append(first[:len(first)-1:len(first)-1], second[:len(second)-1]...)
	if len(result) < 3 {
		// Both halves collapsed onto the split chord; keep the point of each
		// half that is farthest from it so the polygon keeps some area.
		chord := LineSegment{A: points[0], B: points[far]}
		result = Polyline{points[0]}
		if far > 1 {
			result = append(result, farthestFrom(chord, points[1:far]))
		}
		result = append(result, points[far])
		if far+1 < len(points) {
			result = append(result, farthestFrom(chord, points[far+1:]))
		}
	}
	return result
}

func farthestFrom(chord LineSegment, points Polyline) Point {
	best := points[0]
	dmax := -1.0
	for _, p := range points {
		if d := chord.Distance(p); d > dmax {
			best = p
			dmax = d
		}
	}
	return best
}
