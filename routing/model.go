// Package routing - model construction (the engine-facing problem surface).
//
// A Model accumulates everything an engine needs: node/vehicle/depot shape,
// the arc-cost callback, an optional capacity dimension (demand callback +
// per-vehicle capacities, zero slack), an optional time dimension (transit
// callback, waiting allowance, horizon) and per-node service windows.
// Registration order follows the classic solver discipline: dimensions
// first, windows after the time dimension exists.
//
// Design principles:
//   - Fail fast: every registration validates its inputs with sentinels.
//   - No global state: a Model owns all callbacks; adapters close over
//     caller data.
//   - Cold-path helpers (ScheduleRoute, RouteLoad) read through callbacks;
//     engines prefetch into dense buffers instead.

package routing

import (
	"github.com/katalvlaran/lastmile/vrp"
)

// TransitFunc is an arc callback in node-index space: cost (or travel time)
// of the arc from→to. Engines call it only with indices in [0, nodes).
type TransitFunc func(from, to int) int64

// DemandFunc is a node callback: the demand collected at node.
type DemandFunc func(node int) int64

// capacityDim is the registered capacity dimension.
type capacityDim struct {
	demand DemandFunc
	caps   []int64
	slack  int64 // validated to zero
}

// timeDim is the registered time dimension.
type timeDim struct {
	transit   TransitFunc
	waitSlack int64
	horizon   int64
	windows   []vrp.TimeWindow // per node; zero value = unconstrained
}

// Model is a fully described routing problem awaiting an engine.
// Build with NewModel + registrations, or in one call via Configure.
type Model struct {
	nodes    int
	vehicles int
	depot    int

	arcCost  TransitFunc
	capacity *capacityDim
	time     *timeDim
}

// NewModel allocates a model over nodes (depot included) and vehicles.
//
// Contracts: nodes >= 2, vehicles >= 1, depot in [0, nodes).
func NewModel(nodes, vehicles, depot int) (*Model, error) {
	if nodes < 2 {
		return nil, ErrTooFewNodes
	}
	if vehicles < 1 {
		return nil, ErrVehicleCount
	}
	if depot < 0 || depot >= nodes {
		return nil, ErrDepotRange
	}

	return &Model{nodes: nodes, vehicles: vehicles, depot: depot}, nil
}

// Nodes reports the node count (depot included).
func (m *Model) Nodes() int { return m.nodes }

// Vehicles reports the fleet size.
func (m *Model) Vehicles() int { return m.vehicles }

// Depot reports the shared start/end node.
func (m *Model) Depot() int { return m.depot }

// HasCapacity reports whether a capacity dimension is registered.
func (m *Model) HasCapacity() bool { return m.capacity != nil }

// HasTime reports whether a time dimension is registered.
func (m *Model) HasTime() bool { return m.time != nil }

// SetArcCost registers the routing-cost callback. Required before Solve.
func (m *Model) SetArcCost(fn TransitFunc) error {
	if fn == nil {
		return ErrNilCallback
	}
	m.arcCost = fn

	return nil
}

// AddCapacityDimension registers the demand callback and per-vehicle
// capacities. The load cumul starts at zero at every vehicle start.
//
// Contracts:
//   - demand non-nil; len(caps) == vehicles; slack == 0.
//   - At most one capacity dimension per model.
func (m *Model) AddCapacityDimension(demand DemandFunc, caps []int64, slack int64) error {
	if m.capacity != nil {
		return ErrDuplicateDimension
	}
	if demand == nil {
		return ErrNilCallback
	}
	if len(caps) != m.vehicles {
		return ErrCapacityCount
	}
	if slack != 0 {
		return ErrCapacitySlack
	}

	// Copy capacities to detach from caller storage.
	own := make([]int64, len(caps))
	copy(own, caps)
	m.capacity = &capacityDim{demand: demand, caps: own, slack: slack}

	return nil
}

// AddTimeDimension registers the transit-time callback, the per-stop
// waiting allowance, and the per-vehicle route horizon. Vehicle start
// cumuls are not pinned to zero: a vehicle may depart late within the
// depot window.
//
// Contracts:
//   - transit non-nil; waitSlack >= 0; horizon > 0.
//   - At most one time dimension per model.
func (m *Model) AddTimeDimension(transit TransitFunc, waitSlack, horizon int64) error {
	if m.time != nil {
		return ErrDuplicateDimension
	}
	if transit == nil {
		return ErrNilCallback
	}
	if waitSlack < 0 {
		return ErrNegativeSlack
	}
	if horizon <= 0 {
		return ErrBadHorizon
	}
	m.time = &timeDim{
		transit:   transit,
		waitSlack: waitSlack,
		horizon:   horizon,
		windows:   make([]vrp.TimeWindow, m.nodes),
	}

	return nil
}

// SetNodeWindow bounds the service start at node to [earliest, latest].
// A window on the depot bounds every vehicle's departure instead (route
// ends are capped by the horizon only).
//
// Contracts: time dimension registered; node in range; 0 <= earliest <= latest.
func (m *Model) SetNodeWindow(node int, earliest, latest int64) error {
	if m.time == nil {
		return ErrNoTimeDimension
	}
	if node < 0 || node >= m.nodes {
		return ErrNodeRange
	}
	if earliest < 0 || latest < earliest {
		return ErrBadWindow
	}
	m.time.windows[node] = vrp.TimeWindow{Earliest: earliest, Latest: latest}

	return nil
}

// Configure translates a validated instance into a ready model: arc cost,
// capacity dimension with zero slack, and, for timed instances, the time
// dimension plus every non-zero window. This is the single glue call the
// front-ends use.
func Configure(inst *vrp.Instance) (*Model, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	m, err := NewModel(inst.Nodes(), inst.Vehicles, inst.Depot)
	if err != nil {
		return nil, err
	}
	if err = m.SetArcCost(inst.ArcCost()); err != nil {
		return nil, err
	}
	if err = m.AddCapacityDimension(inst.DemandAt(), inst.Capacities, 0); err != nil {
		return nil, err
	}

	if inst.HasWindows() {
		if err = m.AddTimeDimension(inst.TravelTime(), inst.WaitSlack, inst.Horizon); err != nil {
			return nil, err
		}
		for node, w := range inst.Windows {
			if w.IsZero() {
				continue
			}
			if err = m.SetNodeWindow(node, w.Earliest, w.Latest); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// ready verifies the model can be solved (arc cost registered).
func (m *Model) ready() error {
	if m.arcCost == nil {
		return ErrNoArcCost
	}

	return nil
}
