// Package routing: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// routing package. All checks MUST return these sentinels and tests MUST
// match them via errors.Is. No function panics on user-triggered error
// conditions.

package routing

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "routing: ...". Model and parameter misuse
// wraps the class sentinel ErrConfiguration so errors.Is(err,
// ErrConfiguration) matches the whole class. ErrInfeasible and
// ErrBadAssignment stand alone: the first is a legitimate solve outcome,
// the second an integrity failure on a produced plan. DO NOT %w wrap
// sentinels again when returning directly; add context once at an outer
// boundary if needed.

// ErrConfiguration is the class sentinel for model and parameter misuse.
var ErrConfiguration = errors.New("routing: invalid configuration")

// Model-building sentinels. Each wraps ErrConfiguration.
var (
	// ErrNilInstance — Configure received a nil instance.
	ErrNilInstance = fmt.Errorf("%w: nil instance", ErrConfiguration)

	// ErrTooFewNodes — a model needs the depot plus at least one stop.
	ErrTooFewNodes = fmt.Errorf("%w: fewer than 2 nodes", ErrConfiguration)

	// ErrVehicleCount — a model needs at least one vehicle.
	ErrVehicleCount = fmt.Errorf("%w: vehicle count < 1", ErrConfiguration)

	// ErrDepotRange — the depot index must address a node.
	ErrDepotRange = fmt.Errorf("%w: depot out of range", ErrConfiguration)

	// ErrNilCallback — a registration received a nil callback.
	ErrNilCallback = fmt.Errorf("%w: nil callback", ErrConfiguration)

	// ErrNoArcCost — Solve requires a registered arc-cost callback.
	ErrNoArcCost = fmt.Errorf("%w: arc cost not registered", ErrConfiguration)

	// ErrDuplicateDimension — each dimension may be added once.
	ErrDuplicateDimension = fmt.Errorf("%w: dimension already added", ErrConfiguration)

	// ErrCapacityCount — one capacity per vehicle.
	ErrCapacityCount = fmt.Errorf("%w: capacity count != vehicle count", ErrConfiguration)

	// ErrCapacitySlack — the capacity dimension is defined with zero slack.
	ErrCapacitySlack = fmt.Errorf("%w: capacity slack must be zero", ErrConfiguration)

	// ErrNegativeSlack — the time dimension waiting allowance must be >= 0.
	ErrNegativeSlack = fmt.Errorf("%w: negative wait slack", ErrConfiguration)

	// ErrBadHorizon — the time dimension horizon must be > 0.
	ErrBadHorizon = fmt.Errorf("%w: horizon <= 0", ErrConfiguration)

	// ErrNoTimeDimension — node windows require a time dimension.
	ErrNoTimeDimension = fmt.Errorf("%w: no time dimension", ErrConfiguration)

	// ErrNodeRange — a node index must lie in [0, nodes).
	ErrNodeRange = fmt.Errorf("%w: node out of range", ErrConfiguration)

	// ErrBadWindow — a window is negative or inverted.
	ErrBadWindow = fmt.Errorf("%w: invalid time window", ErrConfiguration)
)

// Search-parameter sentinels. Each wraps ErrConfiguration.
var (
	// ErrBadSearchParams — negative time limit, epsilon, or iteration cap.
	ErrBadSearchParams = fmt.Errorf("%w: invalid search parameters", ErrConfiguration)

	// ErrUnsupportedStrategy — unknown first-solution strategy.
	ErrUnsupportedStrategy = fmt.Errorf("%w: unknown first-solution strategy", ErrConfiguration)

	// ErrUnsupportedMetaheuristic — unknown improvement metaheuristic.
	ErrUnsupportedMetaheuristic = fmt.Errorf("%w: unknown metaheuristic", ErrConfiguration)
)

// ErrInfeasible reports that no feasible assignment exists within the
// constraints and time budget. Callers render it as "No Solution" and
// terminate normally.
var ErrInfeasible = errors.New("routing: no feasible assignment")

// ErrBadAssignment reports an assignment violating coverage or bounds
// invariants (each non-depot node in exactly one route, exactly once).
var ErrBadAssignment = errors.New("routing: invalid assignment")
