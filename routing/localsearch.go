// Package routing - first-improvement descent over a plan.
//
// descend sweeps three move families in a fixed order until none improves
// the augmented objective:
//  1. relocate - move one node to another position (any route);
//  2. exchange - swap two nodes (same or different routes);
//  3. 2-opt    - reverse a segment inside one route.
//
// The first improving move found is applied and the sweep restarts, so the
// trajectory is fully deterministic. Candidates are built in reusable
// scratch buffers; a fresh slice is allocated only when a move commits.
// Arc costs may be asymmetric and routes carry windows, so every candidate
// is recosted in full rather than by endpoint deltas.

package routing

// descend runs to a local optimum of the augmented objective. It returns
// false when the deadline or the iteration cap stopped it early.
func (s *search) descend(routes [][]int) bool {
	s.accepted = 0
	for {
		if s.hardExpired() {
			return false
		}
		if s.maxIters > 0 && s.accepted >= s.maxIters {
			return false
		}
		moved := s.tryRelocate(routes) || s.tryExchange(routes) || s.tryTwoOpt(routes)
		if !moved {
			return !s.stop
		}
		s.accepted++
	}
}

// tryRelocate applies the first improving single-node move, if any.
func (s *search) tryRelocate(routes [][]int) bool {
	var (
		va, pa, vb, pb int
		node           int
		candA, cand    []int
		baseA, augA    float64
		timeA          bool
	)
	for va = 0; va < s.vehicles; va++ {
		baseA = s.routeAug(routes[va])
		for pa = 0; pa < len(routes[va]); pa++ {
			if s.expired() {
				return false
			}
			node = routes[va][pa]
			candA = without(s.scratchA, routes[va], pa)
			augA = s.routeAug(candA)
			timeA = s.fitsTime(candA)

			for vb = 0; vb < s.vehicles; vb++ {
				if vb == va {
					// Reposition within the same route.
					for pb = 0; pb <= len(candA); pb++ {
						if pb == pa {
							continue
						}
						cand = withInsert(s.scratchB, candA, pb, node)
						if s.routeAug(cand)-baseA < -s.eps && s.fitsTime(cand) {
							s.commit(routes, va, cand)

							return true
						}
					}
					continue
				}
				if !timeA {
					continue
				}
				baseB := s.routeAug(routes[vb])
				for pb = 0; pb <= len(routes[vb]); pb++ {
					cand = withInsert(s.scratchB, routes[vb], pb, node)
					if augA+s.routeAug(cand)-(baseA+baseB) >= -s.eps {
						continue
					}
					if !s.fitsLoad(vb, cand) || !s.fitsTime(cand) {
						continue
					}
					s.commit(routes, va, candA)
					s.commit(routes, vb, cand)

					return true
				}
			}
		}
	}

	return false
}

// tryExchange applies the first improving node swap, if any.
func (s *search) tryExchange(routes [][]int) bool {
	var (
		va, pa, vb, pb int
		candA, candB   []int
		baseA, baseB   float64
	)
	for va = 0; va < s.vehicles; va++ {
		baseA = s.routeAug(routes[va])
		for pa = 0; pa < len(routes[va]); pa++ {
			if s.expired() {
				return false
			}

			// Same-route swap: pa < pb.
			for pb = pa + 1; pb < len(routes[va]); pb++ {
				candA = append(s.scratchA[:0], routes[va]...)
				candA[pa], candA[pb] = candA[pb], candA[pa]
				if s.routeAug(candA)-baseA < -s.eps && s.fitsTime(candA) {
					s.commit(routes, va, candA)

					return true
				}
			}

			// Cross-route swap: va < vb keeps each pair scanned once.
			for vb = va + 1; vb < s.vehicles; vb++ {
				baseB = s.routeAug(routes[vb])
				for pb = 0; pb < len(routes[vb]); pb++ {
					candA = append(s.scratchA[:0], routes[va]...)
					candB = append(s.scratchB[:0], routes[vb]...)
					candA[pa], candB[pb] = routes[vb][pb], routes[va][pa]
					if s.routeAug(candA)+s.routeAug(candB)-(baseA+baseB) >= -s.eps {
						continue
					}
					if !s.fitsLoad(va, candA) || !s.fitsLoad(vb, candB) {
						continue
					}
					if !s.fitsTime(candA) || !s.fitsTime(candB) {
						continue
					}
					s.commit(routes, va, candA)
					s.commit(routes, vb, candB)

					return true
				}
			}
		}
	}

	return false
}

// tryTwoOpt applies the first improving in-route segment reversal, if any.
func (s *search) tryTwoOpt(routes [][]int) bool {
	var (
		v, i, k int
		cand    []int
		base    float64
	)
	for v = 0; v < s.vehicles; v++ {
		if len(routes[v]) < 2 {
			continue
		}
		base = s.routeAug(routes[v])
		for i = 0; i < len(routes[v])-1; i++ {
			if s.expired() {
				return false
			}
			for k = i + 1; k < len(routes[v]); k++ {
				cand = reversed(s.scratchA, routes[v], i, k)
				if s.routeAug(cand)-base < -s.eps && s.fitsTime(cand) {
					s.commit(routes, v, cand)

					return true
				}
			}
		}
	}

	return false
}

// commit replaces a route with a candidate built in scratch.
func (s *search) commit(routes [][]int, v int, cand []int) {
	routes[v] = append(make([]int, 0, len(cand)), cand...)
}
