// Package report - summary construction.
//
// Build walks every route of an assignment and derives what the
// renderings and artifact writers need:
//  1. Stops with cumulative on-board load, depot endpoints included.
//  2. True route distance from the instance's cost matrix.
//  3. Propagated arrival intervals per stop when windows are present.
//
// Design principles:
//   - Recompute, never trust: distances and loads come from the instance,
//     not from whatever the engine recorded.
//   - Fail loudly: an assignment that cannot be validated or scheduled is
//     an integrity fault, not something to render around.

package report

import (
	"fmt"

	"github.com/katalvlaran/lastmile/routing"
	"github.com/katalvlaran/lastmile/vrp"
)

// Stop is one row of a rendered route. Load is cumulative: the parcels on
// board after serving this node. ArriveMin/ArriveMax are the propagated
// service-start bounds, zero without a time dimension.
type Stop struct {
	Node      int
	Load      int64
	ArriveMin int64
	ArriveMax int64
}

// Route aggregates one vehicle's trip. Stops always starts and ends at
// the depot; a parked vehicle has exactly those two rows. Duration is the
// earliest possible return time.
type Route struct {
	Vehicle  int
	Stops    []Stop
	Distance int64
	Load     int64
	Duration int64
}

// Summary is the full per-plan aggregation both renderers consume.
type Summary struct {
	Routes        []Route
	Cost          int64
	TotalDistance int64
	TotalLoad     int64
	TotalDemand   int64
	TotalTime     int64
	Timed         bool
}

// Build derives a Summary from a validated instance and assignment.
//
// Contracts:
//   - inst must validate; its faults forward as vrp sentinels.
//   - asn must cover every non-depot node exactly once; violations
//     forward as routing.ErrBadAssignment.
//
// Complexity: O(n²) dominated by model configuration.
func Build(inst *vrp.Instance, asn *routing.Assignment) (*Summary, error) {
	m, err := routing.Configure(inst)
	if err != nil {
		return nil, err
	}
	if err = routing.ValidateAssignment(asn, m); err != nil {
		return nil, err
	}

	var (
		arc = inst.ArcCost()
		sum = &Summary{
			Cost:        asn.Cost,
			TotalDemand: inst.TotalDemand(),
			Timed:       m.HasTime(),
			Routes:      make([]Route, 0, len(asn.Routes)),
		}
	)
	for v, nodes := range asn.Routes {
		var (
			r = Route{
				Vehicle:  v,
				Stops:    make([]Stop, 0, len(nodes)+2),
				Distance: routing.RouteCost(arc, inst.Depot, nodes),
			}
			ts   []routing.StopTiming
			load int64
			ok   bool
		)
		if sum.Timed {
			if ts, ok = m.ScheduleRoute(nodes); !ok {
				return nil, fmt.Errorf("report: vehicle %d: %w", v, routing.ErrBadAssignment)
			}
		}

		r.Stops = append(r.Stops, timedStop(inst.Depot, 0, ts, 0))
		for i, node := range nodes {
			load += inst.Demands[node]
			r.Stops = append(r.Stops, timedStop(node, load, ts, i+1))
		}
		r.Stops = append(r.Stops, timedStop(inst.Depot, load, ts, len(nodes)+1))

		r.Load = load
		r.Duration = r.Stops[len(r.Stops)-1].ArriveMin
		sum.Routes = append(sum.Routes, r)
		sum.TotalDistance += r.Distance
		sum.TotalLoad += load
		sum.TotalTime += r.Duration
	}

	return sum, nil
}

// timedStop assembles one stop row, pulling interval bounds from the
// schedule when one exists.
func timedStop(node int, load int64, ts []routing.StopTiming, idx int) Stop {
	st := Stop{Node: node, Load: load}
	if ts != nil {
		st.ArriveMin, st.ArriveMax = ts[idx].ArriveMin, ts[idx].ArriveMax
	}

	return st
}
