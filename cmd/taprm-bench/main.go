// Command taprm-bench builds a random TA-PRM scenario and reports
// preparation time, search time, path cost, max-open-set size, and
// expansion count for both the exact and temporally-pruned planner
// variants, side by side.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/timeaware/taprm/bench"
)

func main() {
	scenario := bench.DefaultScenario()

	obstacles := flag.Int("obstacles", scenario.NumObstacles, "number of random obstacles to scatter")
	samples := flag.Int("samples", scenario.NumSamples, "number of roadmap vertices to sample")
	seed := flag.Int64("seed", scenario.Seed, "deterministic RNG seed")
	precision := flag.Int("precision", scenario.PruningPrecision, "temporal-pruning bucket precision")
	flag.Parse()

	scenario.NumObstacles = *obstacles
	scenario.NumSamples = *samples
	scenario.Seed = *seed
	scenario.PruningPrecision = *precision

	report, err := bench.Run(scenario)
	if err != nil {
		log.Fatalf("taprm-bench: %v", err)
	}

	printMetrics("exact ", report.Exact)
	printMetrics("pruned", report.Pruned)
}

func printMetrics(label string, m bench.Metrics) {
	if m.Err != nil {
		fmt.Printf("%s: prep=%v run=%v FAILED: %v\n", label, m.PrepTime, m.RunTime, m.Err)

		return
	}

	fmt.Printf("%s: prep=%v run=%v path_len=%.0f max_open=%d expansions=%d\n",
		label, m.PrepTime, m.RunTime, m.PathCost, m.MaxOpen, m.Expansions)
}
