package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Point is a single 2D location, inflated into a disc of the query radius.
type Point struct {
	P r2.Vec
}

// NewPoint builds a Point shape.
func NewPoint(p r2.Vec) Point {
	return Point{P: p}
}

// Kind implements Shape.
func (s Point) Kind() ShapeKind { return KindPoint }

// Bound implements Shape.
func (s Point) Bound(radius float64) Rect {
	return Rect{
		MinX: s.P.X - radius, MaxX: s.P.X + radius,
		MinY: s.P.Y - radius, MaxY: s.P.Y + radius,
	}
}

// IntersectsPoint implements Shape.
func (s Point) IntersectsPoint(p r2.Vec, radius float64) bool {
	return norm(sub(p, s.P)) <= radius
}

// IntersectsSegment implements Shape.
func (s Point) IntersectsSegment(a, b r2.Vec, radius float64) bool {
	return distPointSegment(s.P, a, b) <= radius
}

// IntersectsRect implements Shape.
func (s Point) IntersectsRect(rect Rect, radius float64) bool {
	return distPointRect(s.P, rect) <= radius
}

func distPointRect(p r2.Vec, r Rect) float64 {
	dx := maxf(p.X-r.MaxX, r.MinX-p.X)
	dy := maxf(p.Y-r.MaxY, r.MinY-p.Y)

	if dx <= 0 && dy <= 0 {
		return 0
	}
	if dx <= 0 {
		return dy
	}
	if dy <= 0 {
		return dx
	}

	return norm(r2.Vec{X: dx, Y: dy})
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
