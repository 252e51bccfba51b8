// Package geometry implements the planar shapes, buffered (Minkowski-
// inflated) collision tests, and axis-aligned bounding rectangles that the
// obstacle, environment, and roadmap packages build on.
//
// No third-party planar-geometry library in this module's dependency
// corpus covers buffered polygon/segment intersection or WKT; see
// DESIGN.md for why this package is built directly on math and
// gonum.org/v1/gonum/spatial/r2 rather than an external geometry library.
package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for shape construction.
var (
	// ErrDegenerateShape indicates a shape with zero extent (coincident
	// segment endpoints, or a polygon with fewer than 3 vertices or zero area).
	ErrDegenerateShape = errors.New("geometry: degenerate shape")
)

// ShapeKind discriminates the concrete type behind a Shape.
type ShapeKind int

const (
	// KindPoint identifies a Point shape.
	KindPoint ShapeKind = iota
	// KindSegment identifies a Segment shape.
	KindSegment
	// KindPolygon identifies a Polygon shape.
	KindPolygon
)

// Rect is an axis-aligned bounding rectangle, [MinX,MaxX] x [MinY,MaxY].
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Degenerate reports whether the rectangle has non-positive extent on
// either axis.
func (r Rect) Degenerate() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// ContainsPoint reports whether p lies within the closed rectangle.
func (r Rect) ContainsPoint(p r2.Vec) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// IntersectsRect reports whether r and other overlap (closed rectangles).
func (r Rect) IntersectsRect(other Rect) bool {
	return r.MinX <= other.MaxX && other.MinX <= r.MaxX &&
		r.MinY <= other.MaxY && other.MinY <= r.MaxY
}

// Shape is a 2D geometric footprint. Every method already accounts for a
// caller-supplied inflation radius (the obstacle's safety radius), so
// collision queries always test against the Minkowski-buffered footprint.
type Shape interface {
	// Kind reports the concrete shape type.
	Kind() ShapeKind
	// Bound returns the shape's axis-aligned bounding box inflated by radius.
	Bound(radius float64) Rect
	// IntersectsPoint reports whether the radius-inflated shape contains p.
	IntersectsPoint(p r2.Vec, radius float64) bool
	// IntersectsSegment reports whether the radius-inflated shape intersects
	// the segment a-b.
	IntersectsSegment(a, b r2.Vec, radius float64) bool
	// IntersectsRect reports whether the radius-inflated shape intersects rect.
	IntersectsRect(rect Rect, radius float64) bool
}

func sub(a, b r2.Vec) r2.Vec { return r2.Vec{X: a.X - b.X, Y: a.Y - b.Y} }
func dot(a, b r2.Vec) float64 { return a.X*b.X + a.Y*b.Y }
func norm(a r2.Vec) float64   { return math.Sqrt(dot(a, a)) }

// distPointSegment returns the Euclidean distance from p to the closed
// segment a-b.
func distPointSegment(p, a, b r2.Vec) float64 {
	ab := sub(b, a)
	abLenSq := dot(ab, ab)
	if abLenSq == 0 {
		return norm(sub(p, a))
	}

	t := dot(sub(p, a), ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	proj := r2.Vec{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}

	return norm(sub(p, proj))
}

// segmentsIntersect reports whether closed segments p1-p2 and p3-p4
// intersect (touching endpoints count as intersecting).
func segmentsIntersect(p1, p2, p3, p4 r2.Vec) bool {
	d1 := cross(sub(p4, p3), sub(p1, p3))
	d2 := cross(sub(p4, p3), sub(p2, p3))
	d3 := cross(sub(p2, p1), sub(p3, p1))
	d4 := cross(sub(p2, p1), sub(p4, p1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

func cross(a, b r2.Vec) float64 { return a.X*b.Y - a.Y*b.X }

func onSegment(a, b, p r2.Vec) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// distSegmentSegment returns the minimum distance between closed segments
// p1-p2 and p3-p4; 0 if they intersect.
func distSegmentSegment(p1, p2, p3, p4 r2.Vec) float64 {
	if segmentsIntersect(p1, p2, p3, p4) {
		return 0
	}

	d := distPointSegment(p1, p3, p4)
	d = math.Min(d, distPointSegment(p2, p3, p4))
	d = math.Min(d, distPointSegment(p3, p1, p2))
	d = math.Min(d, distPointSegment(p4, p1, p2))

	return d
}
