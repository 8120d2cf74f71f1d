// Package routing - exact branch-and-bound search.
//
// The tree fills vehicles sequentially: vehicle 0 extends its route one
// node at a time, and each state may instead close the route and hand the
// remaining nodes to vehicle 1, and so on. A leaf is reached when every
// node is routed; vehicles after the current one stay parked.
//
// Pruning:
//  1. Admissible bound: cost so far plus max(sum of cheapest outgoing
//     arcs, sum of cheapest incoming arcs) over what must still be
//     traversed. Both sums are maintained incrementally.
//  2. Extension order: from each node the candidate arcs are tried
//     cheapest first, so cost-based cutoffs break out of whole suffixes.
//  3. Symmetry: once a vehicle closes empty, the next vehicle of equal
//     capacity must close empty too. Plans differing only in which of two
//     identical vehicles drives a route collapse to one branch.
//
// An incumbent seeded by construction plus descent makes the cutoffs
// effective from the first node. On deadline expiry the incumbent is
// returned as is; ErrInfeasible is reported only when no complete plan
// was found at all.

package routing

import (
	"math"
	"sort"
)

// bnb carries the tree state on top of the prefetched search buffers.
type bnb struct {
	*search

	order  [][]int // order[u] = customers sorted by arc cost from u
	minOut []int64 // cheapest outgoing arc per node
	minIn  []int64 // cheapest incoming arc per node
	remOut int64   // sum of minOut over unrouted customers
	remIn  int64   // sum of minIn over unrouted customers

	visited []bool
	left    int     // unrouted customers
	routes  [][]int // partial plan under construction

	dlo, dhi int64 // depot departure interval

	best     [][]int
	bestCost int64
	found    bool
}

// newBnB precomputes arc orderings, bound terms, and the depot interval.
//
// Complexity: O(n² log n) for the per-node orderings.
func newBnB(s *search) *bnb {
	var (
		b = &bnb{
			search:   s,
			order:    make([][]int, s.n),
			minOut:   make([]int64, s.n),
			minIn:    make([]int64, s.n),
			visited:  make([]bool, s.n),
			routes:   s.emptyPlan(),
			bestCost: math.MaxInt64,
		}
		u, v int
	)

	for u = 0; u < s.n; u++ {
		var customers []int
		for v = 0; v < s.n; v++ {
			if v != u && v != s.depot {
				customers = append(customers, v)
			}
		}
		from := u
		sort.SliceStable(customers, func(a, c int) bool {
			return s.arc(from, customers[a]) < s.arc(from, customers[c])
		})
		b.order[u] = customers

		b.minOut[u], b.minIn[u] = math.MaxInt64, math.MaxInt64
		for v = 0; v < s.n; v++ {
			if v == u {
				continue
			}
			if c := s.arc(u, v); c < b.minOut[u] {
				b.minOut[u] = c
			}
			if c := s.arc(v, u); c < b.minIn[u] {
				b.minIn[u] = c
			}
		}
	}

	for u = 0; u < s.n; u++ {
		if u != s.depot {
			b.left++
			b.remOut += b.minOut[u]
			b.remIn += b.minIn[u]
		}
	}

	b.dlo, b.dhi = 0, s.horizon
	if s.tt != nil {
		if w := s.wins[s.depot]; !w.IsZero() {
			b.dlo, b.dhi = w.Earliest, w.Latest
		}
		if b.dhi > s.horizon {
			b.dhi = s.horizon
		}
	}

	return b
}

// seed installs a heuristic incumbent so cutoffs bite immediately.
func (b *bnb) seed() {
	routes, err := b.cheapestArcRoutes()
	if err != nil {
		return
	}
	b.search.lambda = 0
	b.search.descend(routes)
	b.best = clonePlan(routes)
	b.bestCost = b.planCost(routes)
	b.found = true
}

// run explores the tree and returns the best complete plan found.
func (b *bnb) run() ([][]int, int64, error) {
	b.seed()
	b.dfs(0, b.depot, 0, b.dlo, b.dhi, 0, false)
	if !b.found {
		return nil, 0, ErrInfeasible
	}

	return b.best, b.bestCost, nil
}

// dfs extends vehicle v's route from node last, or closes it.
//
// Contracts:
//   - lo, hi is the feasible service-start interval at last (the depot
//     departure interval while the route is empty).
//   - cost covers every arc committed so far, return legs of closed
//     routes included.
//   - locked forces an immediate empty close (symmetry pruning).
func (b *bnb) dfs(v, last int, load, lo, hi, cost int64, locked bool) {
	if b.stop || cost >= b.bestCost {
		return
	}
	if b.expired() {
		return
	}

	// Leaf: all customers routed. Close the current route; any vehicles
	// after v stay parked at zero cost.
	if b.left == 0 {
		total := cost
		if last != b.depot {
			if b.tt != nil && lo+b.tt[last*b.n+b.depot] > b.horizon {
				return
			}
			total += b.arc(last, b.depot)
		}
		if total < b.bestCost {
			b.best = clonePlan(b.routes)
			b.bestCost = total
			b.found = true
		}

		return
	}

	// Admissible bound on any completion of this state.
	var (
		sumOut = b.remOut
		sumIn  = b.remIn
	)
	if last != b.depot {
		sumOut += b.minOut[last]
		sumIn += b.minIn[b.depot]
	} else {
		sumOut += b.minOut[b.depot]
		sumIn += b.minIn[b.depot]
	}
	lower := sumOut
	if sumIn > lower {
		lower = sumIn
	}
	if cost+lower >= b.bestCost {
		return
	}

	// Branch A: extend the route, cheapest arcs first. Costs ascend along
	// order[last], so one cutoff ends the whole suffix.
	if !locked {
		for _, u := range b.order[last] {
			if b.visited[u] {
				continue
			}
			arcCost := b.arc(last, u)
			if cost+arcCost >= b.bestCost {
				break
			}
			if b.demand != nil && load+b.demand[u] > b.caps[v] {
				continue
			}
			nlo, nhi, ok := b.stepTime(last, u, lo, hi)
			if !ok {
				continue
			}

			b.visited[u] = true
			b.left--
			b.remOut -= b.minOut[u]
			b.remIn -= b.minIn[u]
			b.routes[v] = append(b.routes[v], u)

			b.dfs(v, u, load+b.demandOf(u), nlo, nhi, cost+arcCost, false)

			b.routes[v] = b.routes[v][:len(b.routes[v])-1]
			b.remIn += b.minIn[u]
			b.remOut += b.minOut[u]
			b.left++
			b.visited[u] = false

			if b.stop {
				return
			}
		}
	}

	// Branch B: close the route and move to the next vehicle.
	if v+1 >= b.vehicles {
		return
	}
	closeCost := int64(0)
	if last != b.depot {
		if b.tt != nil && lo+b.tt[last*b.n+b.depot] > b.horizon {
			return
		}
		closeCost = b.arc(last, b.depot)
	}
	nextLocked := len(b.routes[v]) == 0 && b.sameCap(v, v+1)
	b.dfs(v+1, b.depot, 0, b.dlo, b.dhi, cost+closeCost, nextLocked)
}

// stepTime advances the service-start interval across one arc.
func (b *bnb) stepTime(last, u int, lo, hi int64) (int64, int64, bool) {
	if b.tt == nil {
		return 0, 0, true
	}
	t := b.tt[last*b.n+u]
	nlo, nhi := lo+t, hi+t+b.slack
	if w := b.wins[u]; !w.IsZero() {
		if w.Earliest > nlo {
			nlo = w.Earliest
		}
		if w.Latest < nhi {
			nhi = w.Latest
		}
	}
	if nhi > b.horizon {
		nhi = b.horizon
	}
	if nlo > nhi {
		return 0, 0, false
	}

	return nlo, nhi, true
}

// sameCap reports whether two vehicles are interchangeable for symmetry
// purposes. Without a capacity dimension every vehicle is.
func (b *bnb) sameCap(v1, v2 int) bool {
	if b.caps == nil {
		return true
	}

	return b.caps[v1] == b.caps[v2]
}
