// Package routing - shared search state for the in-repo engines.
//
// Engines talk to the model only through its callbacks, but calling through
// a func value inside hot loops costs indirection. newSearch therefore
// prefetches every callback into dense row-major buffers once per solve
// (w[u*n+v] for costs, tt[u*n+v] for transit times) and all search code
// reads those. The search struct also owns the wall-clock budget, the
// strict-improvement tolerance, and the arc penalties of the augmented
// objective used by guided local search.
//
// Design principles:
//   - Deterministic: no RNG anywhere; ties resolve by lowest index.
//   - Sparse deadline checks (every 2048 steps) keep loop overhead low.
//   - O(n) scratch reuse; fresh allocations only when a move is accepted.

package routing

import (
	"time"

	"github.com/katalvlaran/lastmile/vrp"
)

// deadlineMask throttles wall-clock checks to every 2048 steps.
const deadlineMask = 2047

// search carries all per-solve state shared by construction, descent,
// guided local search, and branch-and-bound seeding.
type search struct {
	// Shape
	n        int
	vehicles int
	depot    int

	// Prefetched model data
	w       []int64 // arc costs, w[u*n+v]
	demand  []int64 // per node; nil without a capacity dimension
	caps    []int64 // per vehicle; nil without a capacity dimension
	maxCap  int64   // largest capacity
	sumCap  int64   // fleet capacity
	tt      []int64 // transit times; nil without a time dimension
	wins    []vrp.TimeWindow
	slack   int64
	horizon int64

	// Budget
	useDeadline bool
	deadline    time.Time
	steps       int
	stop        bool // latched once the deadline fires

	// Knobs
	eps      float64
	maxIters int
	accepted int

	// Augmented objective (guided local search)
	lambda float64
	pen    []int32 // arc penalties, pen[u*n+v]

	// Scratch buffers for candidate routes (reused across evaluations)
	scratchA []int
	scratchB []int
}

// newSearch prefetches the model into dense buffers and arms the deadline.
//
// Complexity: O(n²) time and space.
func newSearch(m *Model, p SearchParams) *search {
	var (
		n = m.nodes
		s = &search{
			n:        n,
			vehicles: m.vehicles,
			depot:    m.depot,
			w:        make([]int64, n*n),
			pen:      make([]int32, n*n),
			eps:      p.Eps,
			maxIters: p.MaxIters,
			scratchA: make([]int, 0, n),
			scratchB: make([]int, 0, n),
		}
		u, v int
	)
	if s.eps < 0 {
		s.eps = 0
	}

	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			s.w[u*n+v] = m.arcCost(u, v)
		}
	}

	if m.capacity != nil {
		s.demand = make([]int64, n)
		for u = 0; u < n; u++ {
			s.demand[u] = m.capacity.demand(u)
		}
		s.caps = make([]int64, len(m.capacity.caps))
		copy(s.caps, m.capacity.caps)
		for _, c := range s.caps {
			s.sumCap += c
			if c > s.maxCap {
				s.maxCap = c
			}
		}
	}

	if m.time != nil {
		s.tt = make([]int64, n*n)
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				s.tt[u*n+v] = m.time.transit(u, v)
			}
		}
		s.wins = m.time.windows
		s.slack = m.time.waitSlack
		s.horizon = m.time.horizon
	}

	if p.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = time.Now().Add(p.TimeLimit)
	}

	return s
}

// arc is the hot-path cost accessor.
func (s *search) arc(u, v int) int64 { return s.w[u*s.n+v] }

// aug is the augmented-objective arc value: true cost plus lambda-scaled
// penalty. With lambda == 0 it equals the true cost.
func (s *search) aug(u, v int) float64 {
	return float64(s.w[u*s.n+v]) + s.lambda*float64(s.pen[u*s.n+v])
}

// expired performs a sparse deadline test and latches the stop flag.
func (s *search) expired() bool {
	if s.stop {
		return true
	}
	s.steps++
	if !s.useDeadline || (s.steps&deadlineMask) != 0 {
		return false
	}
	if time.Now().After(s.deadline) {
		s.stop = true
	}

	return s.stop
}

// hardExpired tests the deadline directly (loop boundaries, not hot paths).
func (s *search) hardExpired() bool {
	if s.stop {
		return true
	}
	if s.useDeadline && time.Now().After(s.deadline) {
		s.stop = true
	}

	return s.stop
}

// precheck rejects instances that cannot be feasible under any plan:
// a node demand above every capacity, or total demand above the fleet.
func (s *search) precheck() error {
	if s.demand == nil {
		return nil
	}
	var total int64
	for node, d := range s.demand {
		if node == s.depot {
			continue
		}
		if d > s.maxCap {
			return ErrInfeasible
		}
		total += d
	}
	if total > s.sumCap {
		return ErrInfeasible
	}

	return nil
}

// routeCost sums true arc costs of one route including depot legs.
func (s *search) routeCost(route []int) int64 {
	if len(route) == 0 {
		return 0
	}
	var (
		cost = s.arc(s.depot, route[0])
		i    int
	)
	for i = 1; i < len(route); i++ {
		cost += s.arc(route[i-1], route[i])
	}

	return cost + s.arc(route[len(route)-1], s.depot)
}

// planCost sums routeCost over a plan.
func (s *search) planCost(routes [][]int) int64 {
	var total int64
	for _, r := range routes {
		total += s.routeCost(r)
	}

	return total
}

// routeAug sums augmented arc values of one route including depot legs.
func (s *search) routeAug(route []int) float64 {
	if len(route) == 0 {
		return 0
	}
	var (
		cost = s.aug(s.depot, route[0])
		i    int
	)
	for i = 1; i < len(route); i++ {
		cost += s.aug(route[i-1], route[i])
	}

	return cost + s.aug(route[len(route)-1], s.depot)
}

// loadOf sums demand along a route (zero without a capacity dimension).
func (s *search) loadOf(route []int) int64 {
	if s.demand == nil {
		return 0
	}
	var load int64
	for _, node := range route {
		load += s.demand[node]
	}

	return load
}

// fitsLoad reports whether a route's demand fits the vehicle's capacity.
func (s *search) fitsLoad(vehicle int, route []int) bool {
	if s.caps == nil {
		return true
	}

	return s.loadOf(route) <= s.caps[vehicle]
}

// fitsTime runs the forward interval propagation over a route and reports
// time feasibility. Mirrors Model.ScheduleRoute without materializing the
// per-stop bounds.
//
// Complexity: O(len(route)).
func (s *search) fitsTime(route []int) bool {
	if s.tt == nil {
		return true
	}

	// Depot departure interval.
	var lo, hi int64
	if w := s.wins[s.depot]; !w.IsZero() {
		lo, hi = w.Earliest, w.Latest
	} else {
		lo, hi = 0, s.horizon
	}
	if hi > s.horizon {
		hi = s.horizon
	}

	var (
		prev = s.depot
		t    int64
	)
	for _, node := range route {
		t = s.tt[prev*s.n+node]
		lo, hi = lo+t, hi+t+s.slack
		if w := s.wins[node]; !w.IsZero() {
			if w.Earliest > lo {
				lo = w.Earliest
			}
			if w.Latest < hi {
				hi = w.Latest
			}
		}
		if hi > s.horizon {
			hi = s.horizon
		}
		if lo > hi {
			return false
		}
		prev = node
	}

	// Return leg, capped by the horizon.
	if len(route) > 0 {
		lo += s.tt[prev*s.n+s.depot]
	}

	return lo <= s.horizon
}

// feasible combines the load and time checks for one vehicle's route.
func (s *search) feasible(vehicle int, route []int) bool {
	return s.fitsLoad(vehicle, route) && s.fitsTime(route)
}

// emptyPlan allocates one empty route per vehicle.
func (s *search) emptyPlan() [][]int {
	routes := make([][]int, s.vehicles)
	for i := range routes {
		routes[i] = []int{}
	}

	return routes
}

// clonePlan deep-copies a plan.
func clonePlan(routes [][]int) [][]int {
	out := make([][]int, len(routes))
	for i, r := range routes {
		cp := make([]int, len(r))
		copy(cp, r)
		out[i] = cp
	}

	return out
}

// withInsert writes src with node inserted at pos into dst and returns it.
func withInsert(dst, src []int, pos, node int) []int {
	dst = dst[:0]
	dst = append(dst, src[:pos]...)
	dst = append(dst, node)

	return append(dst, src[pos:]...)
}

// without writes src minus the element at pos into dst and returns it.
func without(dst, src []int, pos int) []int {
	dst = dst[:0]
	dst = append(dst, src[:pos]...)

	return append(dst, src[pos+1:]...)
}

// reversed writes src with segment [i..k] reversed into dst and returns it.
func reversed(dst, src []int, i, k int) []int {
	dst = dst[:0]
	dst = append(dst, src...)
	for l, r := i, k; l < r; l, r = l+1, r-1 {
		dst[l], dst[r] = dst[r], dst[l]
	}

	return dst
}
