// Package routing - assignment structure and invariants.
//
// An Assignment is the solved plan: one node sequence per vehicle, depot
// endpoints implicit. Helpers here operate purely on route structure and
// callbacks; engines re-check every plan through them before returning
// it, and tests and reporters share the same surface.

package routing

import (
	"fmt"
	"strings"
)

// Assignment is a complete routing plan.
//
// Routes holds one slice per vehicle, in vehicle order, listing the visited
// nodes in visit order. The depot never appears inside a route: every
// vehicle implicitly starts and ends there. An empty slice means the
// vehicle stays parked. Cost is the total arc cost over all routes,
// depot legs included.
type Assignment struct {
	Routes [][]int
	Cost   int64
}

// Clone returns an independent deep copy of the assignment.
func (a *Assignment) Clone() *Assignment {
	out := &Assignment{Cost: a.Cost, Routes: make([][]int, len(a.Routes))}
	for i, r := range a.Routes {
		cp := make([]int, len(r))
		copy(cp, r)
		out.Routes[i] = cp
	}

	return out
}

// Stops counts the visited (non-depot) nodes across all routes.
func (a *Assignment) Stops() int {
	var total int
	for _, r := range a.Routes {
		total += len(r)
	}

	return total
}

// DebugString renders the plan compactly for tests and logs:
// "v0[1 3 2] v1[] cost=42".
func (a *Assignment) DebugString() string {
	var b strings.Builder
	for i, r := range a.Routes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "v%d%v", i, r)
	}
	fmt.Fprintf(&b, " cost=%d", a.Cost)

	return b.String()
}

// ValidateAssignment enforces plan invariants against a model:
//
//	len(Routes) == vehicles,
//	every node index in [0, nodes), never the depot,
//	every non-depot node appears exactly once across all routes,
//	every route fits its vehicle's capacity and can be scheduled
//	within the registered windows and horizon.
//
// Returns nil if valid, ErrBadAssignment otherwise.
//
// Complexity: O(nodes) time, O(nodes) space.
func ValidateAssignment(a *Assignment, m *Model) error {
	if a == nil || m == nil {
		return ErrBadAssignment
	}
	if len(a.Routes) != m.vehicles {
		return ErrBadAssignment
	}
	seen := make([]bool, m.nodes)

	var node int
	for _, route := range a.Routes {
		for _, node = range route {
			if node < 0 || node >= m.nodes || node == m.depot {
				return ErrBadAssignment
			}
			if seen[node] {
				return ErrBadAssignment
			}
			seen[node] = true
		}
	}

	// Coverage: every non-depot node must have been visited.
	for node = 0; node < m.nodes; node++ {
		if node != m.depot && !seen[node] {
			return ErrBadAssignment
		}
	}

	// Dimension invariants per route. Both checks are no-ops when the
	// corresponding dimension is absent.
	for v, route := range a.Routes {
		if _, ok := m.RouteLoad(v, route); !ok {
			return ErrBadAssignment
		}
		if _, ok := m.ScheduleRoute(route); !ok {
			return ErrBadAssignment
		}
	}

	return nil
}

// RouteCost sums the arc costs of one route including both depot legs.
// An empty route costs nothing (the vehicle never leaves).
//
// Complexity: O(len(route)).
func RouteCost(fn TransitFunc, depot int, route []int) int64 {
	if len(route) == 0 {
		return 0
	}
	var (
		cost = fn(depot, route[0])
		i    int
	)
	for i = 1; i < len(route); i++ {
		cost += fn(route[i-1], route[i])
	}
	cost += fn(route[len(route)-1], depot)

	return cost
}

// PlanCost sums RouteCost over all routes of a plan.
//
// Complexity: O(total stops).
func PlanCost(fn TransitFunc, depot int, routes [][]int) int64 {
	var total int64
	for _, r := range routes {
		total += RouteCost(fn, depot, r)
	}

	return total
}
