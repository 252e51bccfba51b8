package roadmap

// GraphStats is a read-only snapshot of a Graph's size.
type GraphStats struct {
	NumVertices int
	NumEdges    int
}

// Stats returns a point-in-time snapshot of the graph's vertex and edge
// counts.
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	nv := len(g.vertices)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	ne := len(g.edges)
	g.muEdgeAdj.RUnlock()

	return GraphStats{NumVertices: nv, NumEdges: ne}
}
