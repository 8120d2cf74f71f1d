// Package vrp - problem instance and callback adapters.
//
// Instance is a plain data struct: build it directly or via NewInstance,
// then call Validate exactly once before handing adapters to an engine.
// Adapters capture the instance's backing storage by reference and are
// pure lookups with no locking, no logging, and no allocation per call.

package vrp

// TimeWindow bounds the service start at a node to [Earliest, Latest],
// measured in the same unit as the transit matrix (conventionally minutes).
// The zero value means "unconstrained".
type TimeWindow struct {
	Earliest int64
	Latest   int64
}

// IsZero reports whether the window leaves the node unconstrained.
func (w TimeWindow) IsZero() bool { return w.Earliest == 0 && w.Latest == 0 }

// Instance is a complete vehicle-routing problem statement.
//
// Required fields describe a capacitated problem: Costs holds pairwise
// travel costs, Demands one entry per node, Capacities one entry per
// vehicle, Depot the shared start/end node. The three optional time fields
// turn the instance into a time-window problem: Windows constrains service
// starts, WaitSlack caps waiting at a stop, Horizon caps each vehicle's
// route span. Windows==nil means a pure capacity run.
type Instance struct {
	Costs      *Matrix // n×n travel costs (transit times for timed runs)
	Demands    []int64 // len n, Demands[Depot]==0
	Capacities []int64 // len Vehicles, each > 0
	Vehicles   int     // fleet size, >= 1
	Depot      int     // start/end node for every route

	Windows   []TimeWindow // optional, len n when present
	WaitSlack int64        // max waiting before a window opens
	Horizon   int64        // max route span per vehicle (timed runs)
}

// NewInstance assembles a capacitated instance, deriving the vehicle count
// from the capacity vector. The result is NOT validated; call Validate.
func NewInstance(costs *Matrix, demands, capacities []int64, depot int) *Instance {
	return &Instance{
		Costs:      costs,
		Demands:    demands,
		Capacities: capacities,
		Vehicles:   len(capacities),
		Depot:      depot,
	}
}

// Nodes reports the node count n (zero for an instance without a matrix).
func (in *Instance) Nodes() int {
	if in.Costs == nil {
		return 0
	}

	return in.Costs.Dim()
}

// HasWindows reports whether the instance carries time-window data.
func (in *Instance) HasWindows() bool { return in.Windows != nil }

// TotalDemand sums all node demands (the depot contributes zero).
func (in *Instance) TotalDemand() int64 {
	var total int64
	for _, d := range in.Demands {
		total += d
	}

	return total
}

// MaxCapacity returns the largest vehicle capacity, or 0 for an empty fleet.
func (in *Instance) MaxCapacity() int64 {
	var maxCap int64
	for _, c := range in.Capacities {
		if c > maxCap {
			maxCap = c
		}
	}

	return maxCap
}

// ArcCost returns the arc-cost callback engines register for routing costs.
//
// Contract: the instance has passed Validate; both indices lie in [0, n).
// The closure reads the matrix backing store directly and never copies it.
// Complexity: O(1) per call.
func (in *Instance) ArcCost() func(from, to int) int64 {
	m := in.Costs

	return func(from, to int) int64 { return m.at(from, to) }
}

// DemandAt returns the node-demand callback for capacity dimensions.
//
// Contract: the instance has passed Validate; node lies in [0, n).
// Complexity: O(1) per call.
func (in *Instance) DemandAt() func(node int) int64 {
	demands := in.Demands

	return func(node int) int64 { return demands[node] }
}

// TravelTime returns the transit-time callback for time dimensions.
// Timed datasets publish their matrix in time units, so this is the same
// lookup as ArcCost under a name matching its dimension.
func (in *Instance) TravelTime() func(from, to int) int64 {
	return in.ArcCost()
}
