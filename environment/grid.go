package environment

import (
	"math"

	"github.com/timeaware/taprm/geometry"
)

// cellRect returns the workspace-relative bounding rectangle of cell (i,j).
func (e *Instance) cellRect(i, j int) geometry.Rect {
	return geometry.Rect{
		MinX: e.ws.MinX + float64(i)*e.spacingX,
		MaxX: e.ws.MinX + float64(i+1)*e.spacingX,
		MinY: e.ws.MinY + float64(j)*e.spacingY,
		MaxY: e.ws.MinY + float64(j+1)*e.spacingY,
	}
}

// buildGrid computes the K×K static and dynamic id-list arrays: for each
// cell and each classified obstacle, the obstacle's id is appended to the
// cell iff its buffered footprint intersects the cell's rectangle.
func (e *Instance) buildGrid() {
	e.staticGrid = newGrid(e.k)
	e.dynamicGrid = newGrid(e.k)

	for i := 0; i < e.k; i++ {
		for j := 0; j < e.k; j++ {
			rect := e.cellRect(i, j)
			for id, o := range e.static {
				if o.Shape.IntersectsRect(rect, o.Radius) {
					e.staticGrid[i][j][id] = struct{}{}
				}
			}
			for id, o := range e.dynamic {
				if o.Shape.IntersectsRect(rect, o.Radius) {
					e.dynamicGrid[i][j][id] = struct{}{}
				}
			}
		}
	}
}

func newGrid(k int) [][]map[int]struct{} {
	g := make([][]map[int]struct{}, k)
	for i := range g {
		g[i] = make([]map[int]struct{}, k)
		for j := range g[i] {
			g[i][j] = make(map[int]struct{})
		}
	}

	return g
}

// cellIndex maps a point to its (i,j) grid cell, clamped to [0,k-1] so that
// points exactly on the workspace's upper boundary still resolve to a cell.
func (e *Instance) cellIndex(x, y float64) (int, int) {
	i := int(math.Floor((x - e.ws.MinX) / e.spacingX))
	j := int(math.Floor((y - e.ws.MinY) / e.spacingY))

	return clamp(i, e.k), clamp(j, e.k)
}

func clamp(v, k int) int {
	if v < 0 {
		return 0
	}
	if v >= k {
		return k - 1
	}

	return v
}

// cellRange returns the inclusive [iMin,iMax]x[jMin,jMax] cell range
// spanned by a rectangle's bounding box, clamped to the grid.
func (e *Instance) cellRange(bound geometry.Rect) (iMin, iMax, jMin, jMax int) {
	iMin, jMin = e.cellIndex(bound.MinX, bound.MinY)
	iMax, jMax = e.cellIndex(bound.MaxX, bound.MaxY)

	return iMin, iMax, jMin, jMax
}
