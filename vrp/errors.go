// Package vrp: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vrp
// package. All validators MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions.

package vrp

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vrp: ..." for consistency and to allow easy
// grepping across logs. Instance-level sentinels are defined by wrapping the
// class sentinel ErrConfiguration, so errors.Is(err, ErrConfiguration)
// matches the whole class while each specific sentinel stays individually
// matchable. Matrix-surface sentinels (shape, index) stand alone: they signal
// API misuse rather than a bad problem statement. DO NOT %w wrap sentinels
// again when returning directly; if context is essential, wrap once with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary.

// Matrix-surface sentinels.
var (
	// ErrBadShape is returned when a requested matrix shape is invalid
	// (order <= 0, or ragged/non-square row input).
	ErrBadShape = errors.New("vrp: invalid matrix shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vrp: index out of range")
)

// ErrConfiguration is the class sentinel for every instance-invariant
// violation. Callers that only care about the error class match against it;
// callers that branch on the precise violation match the specifics below.
var ErrConfiguration = errors.New("vrp: invalid configuration")

// Instance-level sentinels. Each wraps ErrConfiguration.
var (
	// ErrNilMatrix — the instance carries no cost matrix.
	ErrNilMatrix = fmt.Errorf("%w: nil cost matrix", ErrConfiguration)

	// ErrNegativeCost — a cost entry is negative.
	ErrNegativeCost = fmt.Errorf("%w: negative cost entry", ErrConfiguration)

	// ErrDiagonal — a diagonal cost entry is nonzero.
	ErrDiagonal = fmt.Errorf("%w: nonzero diagonal", ErrConfiguration)

	// ErrDemandLength — len(Demands) differs from the matrix order.
	ErrDemandLength = fmt.Errorf("%w: demand vector length mismatch", ErrConfiguration)

	// ErrNegativeDemand — a node demand is negative.
	ErrNegativeDemand = fmt.Errorf("%w: negative demand", ErrConfiguration)

	// ErrDepotDemand — the depot must have zero demand.
	ErrDepotDemand = fmt.Errorf("%w: nonzero depot demand", ErrConfiguration)

	// ErrNoVehicles — the fleet must contain at least one vehicle.
	ErrNoVehicles = fmt.Errorf("%w: vehicle count < 1", ErrConfiguration)

	// ErrCapacityCount — len(Capacities) differs from Vehicles.
	ErrCapacityCount = fmt.Errorf("%w: capacity count != vehicle count", ErrConfiguration)

	// ErrNonPositiveCapacity — every vehicle capacity must be > 0.
	ErrNonPositiveCapacity = fmt.Errorf("%w: capacity <= 0", ErrConfiguration)

	// ErrDepotOutOfRange — the depot index must address a matrix node.
	ErrDepotOutOfRange = fmt.Errorf("%w: depot out of range", ErrConfiguration)

	// ErrWindowCount — len(Windows) differs from the matrix order.
	ErrWindowCount = fmt.Errorf("%w: window vector length mismatch", ErrConfiguration)

	// ErrBadWindow — a window is negative or inverted (Earliest > Latest).
	ErrBadWindow = fmt.Errorf("%w: invalid time window", ErrConfiguration)

	// ErrNegativeSlack — the waiting allowance must be >= 0.
	ErrNegativeSlack = fmt.Errorf("%w: negative wait slack", ErrConfiguration)

	// ErrBadHorizon — a timed instance needs a positive route horizon.
	ErrBadHorizon = fmt.Errorf("%w: horizon <= 0", ErrConfiguration)
)
