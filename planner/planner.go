// Package planner implements the TA-PRM best-first search over a
// roadmap.Graph: a state space of (vertex, time) pairs rather than plain
// vertices, searched with an Euclidean-to-goal heuristic. Two variants are
// exported: Plan (exact) and PlanPruned, which bounds the open set via
// rounded-time deduplication.
package planner

import (
	"errors"
	"time"
)

// Sentinel errors for planning failures.
var (
	// ErrNoPathInHorizon indicates the open set was exhausted without
	// reaching the goal vertex.
	ErrNoPathInHorizon = errors.New("planner: no path reaches goal within the query horizon")
	// ErrTimeout indicates the wall-clock budget elapsed between expansions.
	ErrTimeout = errors.New("planner: wall-clock budget exceeded")
	// ErrNoStart indicates the graph has no start vertex bound.
	ErrNoStart = errors.New("planner: graph has no start vertex; call ConnectStart first")
	// ErrNoGoal indicates the graph has no goal vertex bound.
	ErrNoGoal = errors.New("planner: graph has no goal vertex; call ConnectGoal first")
)

// Result is the outcome of a successful planning run: the vertex path from
// start to goal plus two bookkeeping counters used by the benchmark driver
// to compare the two variants.
type Result struct {
	// Path is the sequence of vertex ids from start to goal, inclusive.
	Path []int
	// MaxOpen is the largest size the open set reached during the search.
	MaxOpen int
	// Expansions is the number of states popped from the open set.
	Expansions int
}

// Options configures a planning run. The zero value has no timeout.
type Options struct {
	// Timeout bounds wall-clock elapsed time, checked once per expansion;
	// there is no finer-grained cancellation point. Zero means no budget.
	Timeout time.Duration
}

// Option mutates Options.
type Option func(*Options)

// WithTimeout bounds the search's wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

func resolveOptions(opts []Option) Options {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
