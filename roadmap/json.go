package roadmap

import (
	"encoding/json"

	"github.com/timeaware/taprm/interval"
	"github.com/timeaware/taprm/wkt"
	"gonum.org/v1/gonum/spatial/r2"
)

type jsonVertex struct {
	ID int    `json:"id"`
	P  string `json:"point"`
}

type jsonInterval struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

type jsonEdge struct {
	ID              int            `json:"id"`
	From            int            `json:"from"`
	To              int            `json:"to"`
	Geometry        string         `json:"geometry"`
	Length          float64        `json:"length"`
	Cost            float64        `json:"cost"`
	AlwaysAvailable bool           `json:"always_available"`
	Availability    []jsonInterval `json:"availability"`
}

type jsonGraph struct {
	Vertices []jsonVertex    `json:"vertices"`
	Edges    []jsonEdge      `json:"edges"`
	Adj      map[int][]int   `json:"adjacency"` // vertex id -> edge ids
	H        map[int]float64 `json:"heuristic"`
	Start    *int            `json:"start"`
	Goal     *int            `json:"goal"`
}

// MarshalJSON implements json.Marshaler: vertices as WKT points, edges as
// geometry WKT plus availability/length/cost/always_available, adjacency,
// heuristic table, and start/goal ids.
func (g *Graph) MarshalJSON() ([]byte, error) {
	jg := jsonGraph{
		Adj:   make(map[int][]int, len(g.adj)),
		H:     make(map[int]float64, len(g.h)),
		Start: g.start,
		Goal:  g.goal,
	}

	for id, v := range g.vertices {
		jg.Vertices = append(jg.Vertices, jsonVertex{ID: id, P: wkt.EncodePoint(v.P)})
	}

	for id, e := range g.edges {
		from, to := g.vertices[e.From], g.vertices[e.To]
		avail := make([]jsonInterval, len(e.Availability))
		for i, iv := range e.Availability {
			avail[i] = jsonInterval{Left: iv.L, Right: iv.R}
		}
		jg.Edges = append(jg.Edges, jsonEdge{
			ID:              id,
			From:            e.From,
			To:              e.To,
			Geometry:        wkt.EncodeLineString([]r2.Vec{from.P, to.P}),
			Length:          e.Length,
			Cost:            e.Cost,
			AlwaysAvailable: e.AlwaysAvailable,
			Availability:    avail,
		})
	}

	for v, edgeIDs := range g.adj {
		ids := make([]int, len(edgeIDs))
		for i, c := range edgeIDs {
			ids[i] = c.Edge
		}
		jg.Adj[v] = ids
	}

	for v, hv := range g.h {
		jg.H[v] = hv
	}

	return json.Marshal(jg)
}

// UnmarshalJSON implements json.Unmarshaler. The environment instance is
// not itself persisted; bind one with SetEnv before planning over a
// decoded graph.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var jg jsonGraph
	if err := json.Unmarshal(data, &jg); err != nil {
		return err
	}

	g.vertices = make(map[int]Vertex, len(jg.Vertices))
	for _, jv := range jg.Vertices {
		p, err := wkt.DecodePoint(jv.P)
		if err != nil {
			return err
		}
		g.vertices[jv.ID] = Vertex{ID: jv.ID, P: p}
		if jv.ID >= g.nextVertexID {
			g.nextVertexID = jv.ID + 1
		}
	}

	g.edges = make(map[int]*TimedEdge, len(jg.Edges))
	edgeByID := make(map[int]*TimedEdge, len(jg.Edges))
	for _, je := range jg.Edges {
		avail := make([]interval.Interval, len(je.Availability))
		for i, a := range je.Availability {
			avail[i] = interval.Interval{L: a.Left, R: a.Right}
		}
		te := &TimedEdge{
			ID:              je.ID,
			From:            je.From,
			To:              je.To,
			Length:          je.Length,
			Cost:            je.Cost,
			AlwaysAvailable: je.AlwaysAvailable,
			Availability:    avail,
		}
		g.edges[je.ID] = te
		edgeByID[je.ID] = te
		if je.ID >= g.nextEdgeID {
			g.nextEdgeID = je.ID + 1
		}
	}

	g.adj = make(map[int][]conn, len(jg.Adj))
	for v, edgeIDs := range jg.Adj {
		conns := make([]conn, 0, len(edgeIDs))
		for _, eid := range edgeIDs {
			te, ok := edgeByID[eid]
			if !ok {
				continue
			}
			neighbor := te.To
			if neighbor == v {
				neighbor = te.From
			}
			conns = append(conns, conn{Neighbor: neighbor, Edge: eid})
		}
		g.adj[v] = conns
	}

	g.h = jg.H
	g.start = jg.Start
	g.goal = jg.Goal

	return nil
}
