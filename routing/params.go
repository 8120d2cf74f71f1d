// Package routing - search parameters and their YAML-facing names.
//
// SearchParams carries every knob a solve accepts. Strategy and
// metaheuristic enums round-trip through lower_snake names so scenario
// files can spell them the way the classic solver enums do.

package routing

import (
	"strings"
	"time"
)

// FirstSolutionStrategy selects how the local-search engine builds its
// initial feasible plan.
type FirstSolutionStrategy uint8

const (
	// PathCheapestArc extends each route from its last node by the
	// cheapest feasible arc. The default.
	PathCheapestArc FirstSolutionStrategy = iota

	// Savings merges singleton routes by descending Clarke-Wright savings.
	Savings

	// ParallelCheapestInsertion grows all routes at once, always applying
	// the globally cheapest feasible insertion.
	ParallelCheapestInsertion
)

// String returns the lower_snake naming used by scenario files.
func (s FirstSolutionStrategy) String() string {
	switch s {
	case PathCheapestArc:
		return "path_cheapest_arc"
	case Savings:
		return "savings"
	case ParallelCheapestInsertion:
		return "parallel_cheapest_insertion"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a case-insensitive lower_snake name to its strategy.
func ParseStrategy(name string) (FirstSolutionStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "path_cheapest_arc":
		return PathCheapestArc, nil
	case "savings":
		return Savings, nil
	case "parallel_cheapest_insertion":
		return ParallelCheapestInsertion, nil
	default:
		return 0, ErrUnsupportedStrategy
	}
}

// Metaheuristic selects the improvement phase run on top of the first
// solution.
type Metaheuristic uint8

const (
	// NoMetaheuristic descends once to a local optimum and stops.
	NoMetaheuristic Metaheuristic = iota

	// GuidedLocalSearch repeatedly penalizes high-utility arcs of local
	// optima and re-descends on the augmented objective until the time
	// budget runs out, keeping the best true-cost plan seen.
	GuidedLocalSearch
)

// String returns the lower_snake naming used by scenario files.
func (mh Metaheuristic) String() string {
	switch mh {
	case NoMetaheuristic:
		return "none"
	case GuidedLocalSearch:
		return "guided_local_search"
	default:
		return "unknown"
	}
}

// ParseMetaheuristic maps a case-insensitive name to its metaheuristic.
func ParseMetaheuristic(name string) (Metaheuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoMetaheuristic, nil
	case "guided_local_search":
		return GuidedLocalSearch, nil
	default:
		return 0, ErrUnsupportedMetaheuristic
	}
}

// SearchParams bundles all solve-time knobs.
//
// TimeLimit 0 means unlimited: construction and plain descent still
// terminate; guided local search then runs a fixed number of penalty
// rounds instead of a wall-clock budget. Eps is the strict-improvement
// tolerance (Δ < −Eps accepts a move); integer arc costs make 0 ties
// exact, so the default exists only to stabilize the augmented objective.
// MaxIters caps accepted moves per descent, 0 meaning unlimited.
type SearchParams struct {
	FirstSolution FirstSolutionStrategy
	Metaheuristic Metaheuristic
	TimeLimit     time.Duration
	Exact         bool // dispatch to the branch-and-bound engine
	Eps           float64
	MaxIters      int
}

// DefaultSearchParams mirrors the classic parcel-run setup: cheapest-arc
// construction, guided local search, a one-second budget.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		FirstSolution: PathCheapestArc,
		Metaheuristic: GuidedLocalSearch,
		TimeLimit:     time.Second,
		Eps:           1e-9,
	}
}

// validateParams checks internal consistency of SearchParams.
//
// Complexity: O(1).
func validateParams(p SearchParams) error {
	if p.TimeLimit < 0 || p.Eps < 0 || p.MaxIters < 0 {
		return ErrBadSearchParams
	}
	switch p.FirstSolution {
	case PathCheapestArc, Savings, ParallelCheapestInsertion:
	default:
		return ErrUnsupportedStrategy
	}
	switch p.Metaheuristic {
	case NoMetaheuristic, GuidedLocalSearch:
	default:
		return ErrUnsupportedMetaheuristic
	}

	return nil
}
