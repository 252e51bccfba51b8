package roadmap

import (
	"math"
	"math/rand"

	"github.com/timeaware/taprm/environment"
	"github.com/timeaware/taprm/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// gammaEpsilon is the epsilon term in the gamma_PRM connection constant.
const gammaEpsilon = 1e-10

// sampleAttemptFactor bounds Build's sampling loop: at most this many
// failed draws per requested vertex before giving up on the remainder.
const sampleAttemptFactor = 100

// unitBallVolume2D is zeta_d for d=2 (the area of the unit disc).
const unitBallVolume2D = math.Pi

// Build samples n free-space vertices from env's workspace (rejecting
// collisions against the static obstacle set), connecting each to existing
// vertices within the PRM-star radius, and accepting it only if it gained
// at least one edge (or it is the very first vertex). Sampling is driven
// by a seeded *rand.Rand, so construction is fully deterministic for a
// given seed. Rejected draws are bounded: once the attempt budget is
// exhausted Build returns whatever graph has accumulated, or
// ErrGraphTooSparse when not even one vertex could be placed.
func Build(env *environment.Instance, n int, seed int64) (*Graph, error) {
	g := &Graph{
		env:      env,
		vertices: make(map[int]Vertex),
		edges:    make(map[int]*TimedEdge),
		adj:      make(map[int][]conn),
		h:        make(map[int]float64),
	}

	rng := rand.New(rand.NewSource(seed))
	ws := env.Workspace()
	gamma := gammaPRM(staticFreeArea(env))

	// A workspace too blocked or fragmented to ever accept n vertices must
	// surface as an error, not an endless rejection loop.
	failed := 0
	maxFailed := sampleAttemptFactor * (n + 1)

	for len(g.vertices) < n && failed < maxFailed {
		p := r2.Vec{
			X: ws.MinX + rng.Float64()*(ws.MaxX-ws.MinX),
			Y: ws.MinY + rng.Float64()*(ws.MaxY-ws.MinY),
		}
		if !env.StaticCollisionFree(p, false) {
			failed++

			continue
		}

		count := len(g.vertices) + 1
		radius := connectionRadius(gamma, count)

		id := g.nextVertexID
		g.nextVertexID++
		v := Vertex{ID: id, P: p}

		connected := g.connectWithinRadius(v, radius)
		if connected == 0 && count != 1 {
			g.nextVertexID--
			failed++

			continue
		}

		g.vertices[id] = v
	}

	if len(g.vertices) == 0 {
		return nil, ErrGraphTooSparse
	}

	return g, nil
}

// gammaPRM computes the PRM-star asymptotic connection constant for d=2:
// gamma = 2*(1+1/d)^(1/d) * (mu(F)/zeta_d)^(1/d) + eps.
func gammaPRM(freeArea float64) float64 {
	const d = 2.0

	return 2*math.Pow(1+1/d, 1/d)*math.Pow(freeArea/unitBallVolume2D, 1/d) + gammaEpsilon
}

// connectionRadius computes r_n = gamma * (ln(n)/n)^(1/d) for d=2. n=1
// yields ln(1)=0, so the very first vertex connects to nothing by radius;
// it is accepted unconditionally as the graph's first vertex.
func connectionRadius(gamma float64, n int) float64 {
	if n <= 1 {
		return 0
	}

	return gamma * math.Sqrt(math.Log(float64(n))/float64(n))
}

// staticFreeArea approximates mu(F), the area of the static-obstacle-free
// workspace, by subtracting the total (unbuffered) area of static polygon
// footprints from the workspace area; point and segment obstacles are not
// subtracted. This is a conservative
// over-subtraction when obstacles overlap, acceptable because gamma_PRM is
// only an asymptotic tuning constant, not a correctness requirement.
func staticFreeArea(env *environment.Instance) float64 {
	ws := env.Workspace()
	wsArea := (ws.MaxX - ws.MinX) * (ws.MaxY - ws.MinY)

	static, _ := env.Obstacles()
	areas := make([]float64, 0, len(static))
	for _, o := range static {
		if poly, ok := o.Shape.(geometry.Polygon); ok {
			areas = append(areas, poly.Area())
		}
	}

	total := wsArea - floats.Sum(areas)
	if total <= 0 {
		return wsArea * 0.01
	}

	return total
}

// connectWithinRadius connects a newly-sampled vertex v to every existing
// vertex within radius, returning the number of edges created.
func (g *Graph) connectWithinRadius(v Vertex, radius float64) int {
	created := 0
	for id, other := range g.vertices {
		if id == v.ID || g.isAdjacent(v.ID, id) {
			continue
		}
		if dist(v.P, other.P) > radius {
			continue
		}

		seg, err := geometry.NewSegment(v.P, other.P)
		if err != nil {
			continue
		}

		if !g.addEdge(v.ID, id, seg) {
			continue
		}

		created++
	}

	return created
}

func dist(a, b r2.Vec) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// ConnectStart appends p as a new vertex and connects it to the existing
// roadmap, failing with ErrStartUnreachable if no edge can be created.
func (g *Graph) ConnectStart(p r2.Vec) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	id, err := g.connectAuxiliary(p, ErrStartUnreachable)
	if err != nil {
		return err
	}

	g.start = &id

	return nil
}

// ConnectGoal appends p as a new vertex, connects it to the existing
// roadmap, and fills h[v] = ||V[v] - p|| for every vertex including p
// itself, failing with ErrGoalUnreachable if no edge can be created.
func (g *Graph) ConnectGoal(p r2.Vec) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	id, err := g.connectAuxiliary(p, ErrGoalUnreachable)
	if err != nil {
		return err
	}

	g.goal = &id
	goalP := g.vertices[id].P
	for vid, v := range g.vertices {
		g.h[vid] = dist(v.P, goalP)
	}

	return nil
}

func (g *Graph) connectAuxiliary(p r2.Vec, failure error) (int, error) {
	if !g.env.StaticCollisionFree(p, false) {
		return 0, failure
	}

	gamma := gammaPRM(staticFreeArea(g.env))
	count := len(g.vertices) + 1
	radius := connectionRadius(gamma, count)

	id := g.nextVertexID
	g.nextVertexID++
	v := Vertex{ID: id, P: p}

	created := g.connectWithinRadius(v, radius)
	if created == 0 {
		g.nextVertexID--

		return 0, failure
	}

	g.vertices[id] = v

	return id, nil
}
