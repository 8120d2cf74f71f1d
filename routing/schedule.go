// Package routing - cumul propagation for the capacity and time dimensions.
//
// The time dimension follows cumulative-variable semantics: a vehicle's
// cumul starts inside the depot window, grows by transit time per arc plus
// up to waitSlack of waiting per stop, must hit each node's service window,
// and may never exceed the horizon. Feasibility and reported arrival
// bounds both come from interval propagation:
//
//	forward pass   — earliest/latest service start per stop, left to right;
//	backward pass  — tighten both bounds from the route end, right to left.
//
// The forward pass alone decides feasibility; the backward pass only
// narrows the reported [min, max] windows to what an actual schedule can
// realize.

package routing

// StopTiming is the propagated service-start interval at one point of a
// route. The first and last entries of a schedule describe the depot
// departure and the depot return.
type StopTiming struct {
	Node      int
	ArriveMin int64
	ArriveMax int64
}

// ScheduleRoute propagates the time dimension over one route (without
// depot endpoints, as stored in an Assignment) and reports per-stop
// arrival bounds plus overall feasibility.
//
// For a model without a time dimension every route is trivially feasible
// and the schedule is nil. The returned slice has len(route)+2 entries:
// depot departure, each stop, depot return.
//
// Complexity: O(len(route)).
func (m *Model) ScheduleRoute(route []int) ([]StopTiming, bool) {
	if m.time == nil {
		return nil, true
	}
	td := m.time

	var (
		k  = len(route)
		ts = make([]StopTiming, k+2)
	)

	// Depot departure interval: the depot window when set, else the full
	// horizon. Vehicle starts are not pinned to zero.
	var lo, hi int64
	if w := td.windows[m.depot]; !w.IsZero() {
		lo, hi = w.Earliest, w.Latest
	} else {
		lo, hi = 0, td.horizon
	}
	if hi > td.horizon {
		hi = td.horizon
	}
	ts[0] = StopTiming{Node: m.depot, ArriveMin: lo, ArriveMax: hi}

	// An idle vehicle never leaves: its return equals its departure.
	if k == 0 {
		ts[1] = ts[0]

		return ts, true
	}

	// Forward pass over stops.
	var (
		prev  = m.depot
		i     int
		node  int
		t     int64
		arrLo int64
		arrHi int64
	)
	for i = 0; i < k; i++ {
		node = route[i]
		t = td.transit(prev, node)
		arrLo, arrHi = lo+t, hi+t

		// Service may start once arrived (waiting capped by waitSlack)
		// and must respect the node window and the horizon.
		lo, hi = arrLo, arrHi+td.waitSlack
		if w := td.windows[node]; !w.IsZero() {
			if w.Earliest > lo {
				lo = w.Earliest
			}
			if w.Latest < hi {
				hi = w.Latest
			}
		}
		if hi > td.horizon {
			hi = td.horizon
		}
		if lo > hi {
			return nil, false
		}
		ts[i+1] = StopTiming{Node: node, ArriveMin: lo, ArriveMax: hi}
		prev = node
	}

	// Depot return: transit from the last stop, capped by the horizon only.
	t = td.transit(prev, m.depot)
	arrLo, arrHi = lo+t, hi+t+td.waitSlack
	if arrHi > td.horizon {
		arrHi = td.horizon
	}
	if arrLo > arrHi {
		return nil, false
	}
	ts[k+1] = StopTiming{Node: m.depot, ArriveMin: arrLo, ArriveMax: arrHi}

	// Backward pass: cumul(next) - transit bounds cumul(cur) from above;
	// cumul(next) - transit - waitSlack bounds it from below.
	tightenBackward(ts, td, m.depot, route)

	return ts, true
}

// tightenBackward narrows the forward-pass intervals right to left.
func tightenBackward(ts []StopTiming, td *timeDim, depot int, route []int) {
	var (
		k = len(route)
		i int
		t int64
	)
	for i = k; i >= 0; i-- {
		// Transit on the arc leaving position i.
		from, to := depot, depot
		if i > 0 {
			from = route[i-1]
		}
		if i < k {
			to = route[i]
		}
		t = td.transit(from, to)

		if hi := ts[i+1].ArriveMax - t; hi < ts[i].ArriveMax {
			ts[i].ArriveMax = hi
		}
		if lo := ts[i+1].ArriveMin - t - td.waitSlack; lo > ts[i].ArriveMin {
			ts[i].ArriveMin = lo
		}
	}
}

// RouteLoad sums demand along one route and checks it against the
// vehicle's capacity. Without a capacity dimension the load is zero and
// always fits.
//
// Complexity: O(len(route)).
func (m *Model) RouteLoad(vehicle int, route []int) (int64, bool) {
	if m.capacity == nil {
		return 0, true
	}
	if vehicle < 0 || vehicle >= m.vehicles {
		return 0, false
	}
	var load int64
	for _, node := range route {
		load += m.capacity.demand(node)
	}

	return load, load <= m.capacity.caps[vehicle]
}
