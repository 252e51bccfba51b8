package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Segment is a straight line between two endpoints, inflated into a
// stadium (capsule) shape of the query radius.
type Segment struct {
	A, B r2.Vec
}

// NewSegment builds a Segment shape, rejecting coincident endpoints.
func NewSegment(a, b r2.Vec) (Segment, error) {
	if a == b {
		return Segment{}, ErrDegenerateShape
	}

	return Segment{A: a, B: b}, nil
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return norm(sub(s.B, s.A))
}

// Kind implements Shape.
func (s Segment) Kind() ShapeKind { return KindSegment }

// Bound implements Shape.
func (s Segment) Bound(radius float64) Rect {
	return Rect{
		MinX: minf(s.A.X, s.B.X) - radius, MaxX: maxf(s.A.X, s.B.X) + radius,
		MinY: minf(s.A.Y, s.B.Y) - radius, MaxY: maxf(s.A.Y, s.B.Y) + radius,
	}
}

// IntersectsPoint implements Shape.
func (s Segment) IntersectsPoint(p r2.Vec, radius float64) bool {
	return distPointSegment(p, s.A, s.B) <= radius
}

// IntersectsSegment implements Shape.
func (s Segment) IntersectsSegment(a, b r2.Vec, radius float64) bool {
	return distSegmentSegment(s.A, s.B, a, b) <= radius
}

// IntersectsRect implements Shape.
func (s Segment) IntersectsRect(rect Rect, radius float64) bool {
	return distSegmentRect(s.A, s.B, rect) <= radius
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

// distSegmentRect returns the minimum distance between a segment and a
// rectangle; 0 if they intersect or the segment lies inside the rectangle.
func distSegmentRect(a, b r2.Vec, r Rect) float64 {
	if r.ContainsPoint(a) || r.ContainsPoint(b) {
		return 0
	}

	corners := [4]r2.Vec{
		{X: r.MinX, Y: r.MinY}, {X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY}, {X: r.MinX, Y: r.MaxY},
	}
	for i := 0; i < 4; i++ {
		if segmentsIntersect(a, b, corners[i], corners[(i+1)%4]) {
			return 0
		}
	}

	d := distPointSegment(corners[0], a, b)
	for i := 1; i < 4; i++ {
		d = minf(d, distPointSegment(corners[i], a, b))
	}
	d = minf(d, distPointRect(a, r))
	d = minf(d, distPointRect(b, r))

	return d
}
