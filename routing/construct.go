// Package routing - first-solution construction.
//
// Three strategies build the plan a search engine starts from:
//  1. PathCheapestArc - each vehicle extends its path with the cheapest
//     feasible arc until nothing fits, then the next vehicle starts.
//  2. Savings - Clarke-Wright: singleton routes merged on the largest
//     positive saving s(i,j) = w(i,0) + w(0,j) - w(i,j) while feasible.
//  3. ParallelCheapestInsertion - all routes grow together; each step
//     commits the globally cheapest feasible insertion.
//
// Every strategy finishes with the same repair step: nodes left over by
// the greedy phase are inserted at their cheapest feasible position,
// largest demand first. Only when repair cannot place a node does
// construction report ErrInfeasible.
//
// Construction always runs to completion; the wall-clock budget governs
// the improvement phase, not this one.

package routing

import "sort"

// construct dispatches on the first-solution strategy.
func (s *search) construct(strategy FirstSolutionStrategy) ([][]int, error) {
	switch strategy {
	case PathCheapestArc:
		return s.cheapestArcRoutes()
	case Savings:
		return s.savingsRoutes()
	case ParallelCheapestInsertion:
		return s.insertionRoutes()
	default:
		return nil, ErrUnsupportedStrategy
	}
}

// cheapestArcRoutes fills vehicles one at a time, always following the
// cheapest feasible outgoing arc, then repairs whatever remains.
func (s *search) cheapestArcRoutes() ([][]int, error) {
	var (
		routes   = s.emptyPlan()
		unrouted = s.unroutedSet()
		v, last  int
		node     int
		cand     []int
	)

	for v = 0; v < s.vehicles; v++ {
		last = s.depot
		for {
			// Cheapest feasible extension from the current route end.
			var (
				bestNode = -1
				bestCost int64
			)
			for node = 0; node < s.n; node++ {
				if !unrouted[node] {
					continue
				}
				cand = withInsert(s.scratchA, routes[v], len(routes[v]), node)
				if !s.feasible(v, cand) {
					continue
				}
				if c := s.arc(last, node); bestNode < 0 || c < bestCost {
					bestNode, bestCost = node, c
				}
			}
			if bestNode < 0 {
				break
			}
			routes[v] = append(routes[v], bestNode)
			unrouted[bestNode] = false
			last = bestNode
		}
	}

	return routes, s.repairLeftovers(routes, unrouted)
}

// savingsRoutes runs Clarke-Wright merges over singleton routes, maps the
// surviving routes onto vehicles best-fit by capacity, and repairs the rest.
func (s *search) savingsRoutes() ([][]int, error) {
	// Stage 1: one singleton route per customer node.
	var pool [][]int
	for node := 0; node < s.n; node++ {
		if node != s.depot {
			pool = append(pool, []int{node})
		}
	}

	// Stage 2: savings list, largest first; ties by lower (i, j).
	type saving struct {
		val  int64
		i, j int
	}
	var list []saving
	for i := 0; i < s.n; i++ {
		if i == s.depot {
			continue
		}
		for j := 0; j < s.n; j++ {
			if j == s.depot || j == i {
				continue
			}
			list = append(list, saving{
				val: s.arc(i, s.depot) + s.arc(s.depot, j) - s.arc(i, j),
				i:   i,
				j:   j,
			})
		}
	}
	sort.Slice(list, func(a, b int) bool {
		if list[a].val != list[b].val {
			return list[a].val > list[b].val
		}
		if list[a].i != list[b].i {
			return list[a].i < list[b].i
		}

		return list[a].j < list[b].j
	})

	// Stage 3: merge route ending at i with route starting at j while the
	// concatenation stays within the largest capacity and the horizon.
	var (
		endsAt   = make([]int, s.n) // endsAt[node] = pool index whose tail is node, else -1
		startsAt = make([]int, s.n)
	)
	for node := range endsAt {
		endsAt[node], startsAt[node] = -1, -1
	}
	for id, r := range pool {
		startsAt[r[0]], endsAt[r[len(r)-1]] = id, id
	}
	for _, sv := range list {
		if sv.val <= 0 {
			break
		}
		ra, rb := endsAt[sv.i], startsAt[sv.j]
		if ra < 0 || rb < 0 || ra == rb {
			continue
		}
		merged := append(append([]int{}, pool[ra]...), pool[rb]...)
		if s.demand != nil && s.loadOf(merged) > s.maxCap {
			continue
		}
		if !s.fitsTime(merged) {
			continue
		}
		pool[ra] = merged
		pool[rb] = nil
		startsAt[sv.j] = -1
		endsAt[sv.i] = -1
		startsAt[merged[0]] = ra
		endsAt[merged[len(merged)-1]] = ra
	}

	var built [][]int
	for _, r := range pool {
		if len(r) > 0 {
			built = append(built, r)
		}
	}

	// Stage 4: routes onto vehicles, heaviest route first, best-fit by
	// capacity. Routes that fit nowhere dissolve back into single nodes.
	sort.SliceStable(built, func(a, b int) bool {
		la, lb := s.loadOf(built[a]), s.loadOf(built[b])
		if la != lb {
			return la > lb
		}

		return built[a][0] < built[b][0]
	})
	var (
		routes   = s.emptyPlan()
		used     = make([]bool, s.vehicles)
		leftover = make([]bool, s.n)
	)
	for _, r := range built {
		best := -1
		for v := 0; v < s.vehicles; v++ {
			if used[v] || !s.feasible(v, r) {
				continue
			}
			if best < 0 || s.capOf(v) < s.capOf(best) {
				best = v
			}
		}
		if best < 0 {
			for _, node := range r {
				leftover[node] = true
			}
			continue
		}
		routes[best] = r
		used[best] = true
	}

	return routes, s.repairLeftovers(routes, leftover)
}

// insertionRoutes grows all routes in parallel, committing the globally
// cheapest feasible insertion each step.
func (s *search) insertionRoutes() ([][]int, error) {
	var (
		routes   = s.emptyPlan()
		unrouted = s.unroutedSet()
		remain   = 0
	)
	for node := range unrouted {
		if unrouted[node] {
			remain++
		}
	}

	for remain > 0 {
		var (
			bestNode  = -1
			bestV     int
			bestPos   int
			bestDelta int64
		)
		for node := 0; node < s.n; node++ {
			if !unrouted[node] {
				continue
			}
			v, pos, delta, ok := s.cheapestInsertion(routes, node)
			if !ok {
				continue
			}
			if bestNode < 0 || delta < bestDelta {
				bestNode, bestV, bestPos, bestDelta = node, v, pos, delta
			}
		}
		if bestNode < 0 {
			return nil, ErrInfeasible
		}
		routes[bestV] = withInsert(make([]int, 0, len(routes[bestV])+1), routes[bestV], bestPos, bestNode)
		unrouted[bestNode] = false
		remain--
	}

	return routes, nil
}

// cheapestInsertion scans all vehicles and positions for the cheapest
// feasible placement of node. Ties resolve by lower vehicle, then lower
// position.
func (s *search) cheapestInsertion(routes [][]int, node int) (vehicle, pos int, delta int64, ok bool) {
	var (
		bestV, bestPos = -1, 0
		bestDelta      int64
		cand           []int
		before         int64
	)
	for v := 0; v < s.vehicles; v++ {
		before = s.routeCost(routes[v])
		for p := 0; p <= len(routes[v]); p++ {
			cand = withInsert(s.scratchA, routes[v], p, node)
			if !s.feasible(v, cand) {
				continue
			}
			d := s.routeCost(cand) - before
			if bestV < 0 || d < bestDelta {
				bestV, bestPos, bestDelta = v, p, d
			}
		}
	}
	if bestV < 0 {
		return 0, 0, 0, false
	}

	return bestV, bestPos, bestDelta, true
}

// repairLeftovers inserts every node still marked unrouted at its cheapest
// feasible position, largest demand first. A node no route can absorb makes
// the construction infeasible.
func (s *search) repairLeftovers(routes [][]int, unrouted []bool) error {
	var left []int
	for node, open := range unrouted {
		if open {
			left = append(left, node)
		}
	}
	if len(left) == 0 {
		return nil
	}
	sort.SliceStable(left, func(a, b int) bool {
		da, db := s.demandOf(left[a]), s.demandOf(left[b])
		if da != db {
			return da > db
		}

		return left[a] < left[b]
	})

	for _, node := range left {
		v, pos, _, ok := s.cheapestInsertion(routes, node)
		if !ok {
			return ErrInfeasible
		}
		routes[v] = withInsert(make([]int, 0, len(routes[v])+1), routes[v], pos, node)
	}

	return nil
}

// unroutedSet marks every customer node as awaiting placement.
func (s *search) unroutedSet() []bool {
	set := make([]bool, s.n)
	for node := range set {
		set[node] = node != s.depot
	}

	return set
}

// demandOf reads a node demand, zero without a capacity dimension.
func (s *search) demandOf(node int) int64 {
	if s.demand == nil {
		return 0
	}

	return s.demand[node]
}

// capOf reads a vehicle capacity, zero without a capacity dimension.
func (s *search) capOf(vehicle int) int64 {
	if s.caps == nil {
		return 0
	}

	return s.caps[vehicle]
}
