// Package vrp - staged instance validation.
//
// This file contains small, tight, well-documented helpers that:
//  1. Validate the cost matrix (presence, value invariants).
//  2. Validate the demand vector (length, sign, depot).
//  3. Validate the fleet (count, capacities).
//  4. Validate the depot index.
//  5. Validate optional time data (windows, slack, horizon).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from errors.go.
//   - O(n²) worst case over the matrix; no hidden allocations.

package vrp

// Validate verifies the full instance invariant set and returns the first
// violation found, in documented stage order. A nil error means the instance
// is safe for adapter construction and engine configuration.
//
// Feasibility is out of scope: an instance whose largest demand exceeds
// every capacity validates cleanly and is reported unsolvable by engines.
//
// Complexity: O(n²) time, O(1) extra space.
func (in *Instance) Validate() error {
	var err error

	// Stage 1: cost matrix presence and value invariants.
	if err = validateCosts(in.Costs); err != nil {
		return err
	}
	n := in.Costs.Dim()

	// Stage 2: demand vector shape and sign.
	if err = validateDemands(in.Demands, n, in.Depot); err != nil {
		return err
	}

	// Stage 3: fleet shape.
	if err = validateFleet(in.Vehicles, in.Capacities); err != nil {
		return err
	}

	// Stage 4: depot range (depot demand already checked in stage 2 when
	// the index is addressable; an out-of-range depot lands here).
	if in.Depot < 0 || in.Depot >= n {
		return ErrDepotOutOfRange
	}

	// Stage 5: optional time data.
	if in.HasWindows() {
		if err = validateTimeData(in.Windows, n, in.WaitSlack, in.Horizon); err != nil {
			return err
		}
	}

	return nil
}

// validateCosts checks matrix presence, non-negative entries, and a zero
// diagonal. Squareness holds by construction and is not re-checked.
//
// Complexity: O(n²).
func validateCosts(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	var (
		n = m.n // matrix order
		i int   // row index
		j int   // column index
	)
	for i = 0; i < n; i++ {
		if m.at(i, i) != 0 {
			return ErrDiagonal
		}
		for j = 0; j < n; j++ {
			if m.at(i, j) < 0 {
				return ErrNegativeCost
			}
		}
	}

	return nil
}

// validateDemands enforces len(demands)==n, non-negative entries, and zero
// demand at the depot (when the depot index is addressable).
//
// Complexity: O(n).
func validateDemands(demands []int64, n, depot int) error {
	if len(demands) != n {
		return ErrDemandLength
	}
	for _, d := range demands {
		if d < 0 {
			return ErrNegativeDemand
		}
	}
	if depot >= 0 && depot < n && demands[depot] != 0 {
		return ErrDepotDemand
	}

	return nil
}

// validateFleet enforces vehicles >= 1, len(capacities)==vehicles, and
// strictly positive capacities.
//
// Complexity: O(vehicles).
func validateFleet(vehicles int, capacities []int64) error {
	if vehicles < 1 {
		return ErrNoVehicles
	}
	if len(capacities) != vehicles {
		return ErrCapacityCount
	}
	for _, c := range capacities {
		if c <= 0 {
			return ErrNonPositiveCapacity
		}
	}

	return nil
}

// validateTimeData enforces window shape (len==n, 0<=Earliest<=Latest),
// a non-negative waiting allowance, and a positive horizon.
//
// Complexity: O(n).
func validateTimeData(windows []TimeWindow, n int, waitSlack, horizon int64) error {
	if len(windows) != n {
		return ErrWindowCount
	}
	for _, w := range windows {
		if w.Earliest < 0 || w.Latest < w.Earliest {
			return ErrBadWindow
		}
	}
	if waitSlack < 0 {
		return ErrNegativeSlack
	}
	if horizon <= 0 {
		return ErrBadHorizon
	}

	return nil
}
