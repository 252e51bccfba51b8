package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Polygon is a simple (non-self-intersecting) planar polygon, inflated by
// the query radius on every collision test.
type Polygon struct {
	Vertices []r2.Vec
}

// NewPolygon builds a Polygon shape, rejecting fewer than 3 vertices or
// zero signed area.
func NewPolygon(vertices []r2.Vec) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrDegenerateShape
	}

	p := Polygon{Vertices: vertices}
	if p.area() == 0 {
		return Polygon{}, ErrDegenerateShape
	}

	return p, nil
}

func (p Polygon) area() float64 {
	var sum float64
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}

	return sum / 2
}

// Area returns the polygon's unsigned area.
func (p Polygon) Area() float64 {
	a := p.area()
	if a < 0 {
		return -a
	}

	return a
}

// Kind implements Shape.
func (p Polygon) Kind() ShapeKind { return KindPolygon }

// Bound implements Shape.
func (p Polygon) Bound(radius float64) Rect {
	r := Rect{MinX: p.Vertices[0].X, MaxX: p.Vertices[0].X, MinY: p.Vertices[0].Y, MaxY: p.Vertices[0].Y}
	for _, v := range p.Vertices[1:] {
		r.MinX = minf(r.MinX, v.X)
		r.MaxX = maxf(r.MaxX, v.X)
		r.MinY = minf(r.MinY, v.Y)
		r.MaxY = maxf(r.MaxY, v.Y)
	}
	r.MinX -= radius
	r.MinY -= radius
	r.MaxX += radius
	r.MaxY += radius

	return r
}

// containsPoint reports whether p lies inside (or on the boundary of) the
// unbuffered polygon, via standard even-odd ray casting.
func (p Polygon) containsPoint(pt r2.Vec) bool {
	n := len(p.Vertices)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if onSegment(vi, vj, pt) && distPointSegment(pt, vi, vj) == 0 {
			return true
		}
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			xIntersect := (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if pt.X < xIntersect {
				inside = !inside
			}
		}
	}

	return inside
}

// distToBoundary returns the minimum distance from pt to the polygon's edges.
func (p Polygon) distToBoundary(pt r2.Vec) float64 {
	n := len(p.Vertices)
	d := distPointSegment(pt, p.Vertices[n-1], p.Vertices[0])
	for i := 0; i < n-1; i++ {
		d = minf(d, distPointSegment(pt, p.Vertices[i], p.Vertices[i+1]))
	}

	return d
}

// IntersectsPoint implements Shape.
func (p Polygon) IntersectsPoint(pt r2.Vec, radius float64) bool {
	if p.containsPoint(pt) {
		return true
	}

	return p.distToBoundary(pt) <= radius
}

// IntersectsSegment implements Shape.
func (p Polygon) IntersectsSegment(a, b r2.Vec, radius float64) bool {
	if p.containsPoint(a) || p.containsPoint(b) {
		return true
	}

	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if distSegmentSegment(a, b, p.Vertices[i], p.Vertices[j]) <= radius {
			return true
		}
	}

	return false
}

// IntersectsRect implements Shape.
func (p Polygon) IntersectsRect(rect Rect, radius float64) bool {
	corners := [4]r2.Vec{
		{X: rect.MinX, Y: rect.MinY}, {X: rect.MaxX, Y: rect.MinY},
		{X: rect.MaxX, Y: rect.MaxY}, {X: rect.MinX, Y: rect.MaxY},
	}
	for _, c := range corners {
		if p.IntersectsPoint(c, radius) {
			return true
		}
	}
	for _, v := range p.Vertices {
		if rect.ContainsPoint(v) {
			return true
		}
	}
	for i := 0; i < 4; i++ {
		if p.IntersectsSegment(corners[i], corners[(i+1)%4], radius) {
			return true
		}
	}

	return false
}
