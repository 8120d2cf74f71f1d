// Package routing - guided local search on top of descend.
//
// Plain descent stops at the first local optimum. Guided local search
// keeps going: it penalizes the arcs that contribute the most to the
// current optimum (highest utility cost/(1+penalty)), which reshapes the
// augmented objective and lets descent escape. True cost is tracked
// separately, so the best plan ever seen is what gets returned.
//
// The penalty weight lambda is set once from the first local optimum:
// lambda = alpha * cost / arcs. With a wall-clock budget the loop runs
// until the deadline; without one it runs a fixed number of rounds.

package routing

const (
	// glsAlpha scales the penalty weight against the mean arc cost.
	glsAlpha = 0.1
	// glsRounds bounds the penalty loop when no deadline is armed.
	glsRounds = 64
)

// improve takes a constructed plan to the best plan the budget allows and
// returns it with its true cost. The input plan is consumed as working
// storage.
func (s *search) improve(routes [][]int, mh Metaheuristic) ([][]int, int64) {
	var (
		best     = clonePlan(routes)
		bestCost = s.planCost(routes)
		cost     int64
	)

	s.lambda = 0
	s.descend(routes)
	if cost = s.planCost(routes); cost < bestCost {
		best, bestCost = clonePlan(routes), cost
	}
	if mh == NoMetaheuristic {
		return best, bestCost
	}

	arcs := planArcList(routes, s.depot)
	if len(arcs) == 0 {
		return best, bestCost
	}
	s.lambda = glsAlpha * float64(cost) / float64(len(arcs))
	if s.lambda <= 0 {
		s.lambda = 1
	}

	var round int
	for {
		if s.hardExpired() {
			break
		}
		round++
		if !s.useDeadline && round > glsRounds {
			break
		}
		s.penalize(routes)
		s.descend(routes)
		if cost = s.planCost(routes); cost < bestCost {
			best, bestCost = clonePlan(routes), cost
		}
	}
	s.lambda = 0

	return best, bestCost
}

// penalize bumps the penalty of every arc attaining the maximum utility
// in the current plan. Utility of arc (u,v) is cost/(1+penalty), so
// expensive, rarely punished arcs get targeted first.
func (s *search) penalize(routes [][]int) {
	var (
		arcs = planArcList(routes, s.depot)
		best = -1.0
		util float64
	)
	for _, a := range arcs {
		util = float64(s.arc(a[0], a[1])) / float64(1+s.pen[a[0]*s.n+a[1]])
		if util > best {
			best = util
		}
	}
	for _, a := range arcs {
		util = float64(s.arc(a[0], a[1])) / float64(1+s.pen[a[0]*s.n+a[1]])
		if util == best {
			s.pen[a[0]*s.n+a[1]]++
		}
	}
}

// planArcList lists every traversed arc of a plan, depot legs included.
func planArcList(routes [][]int, depot int) [][2]int {
	var arcs [][2]int
	for _, r := range routes {
		if len(r) == 0 {
			continue
		}
		arcs = append(arcs, [2]int{depot, r[0]})
		for i := 1; i < len(r); i++ {
			arcs = append(arcs, [2]int{r[i-1], r[i]})
		}
		arcs = append(arcs, [2]int{r[len(r)-1], depot})
	}

	return arcs
}
