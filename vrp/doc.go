// Package vrp defines the capacitated vehicle-routing problem model shared
// by dataset loaders, routing engines, and reporters.
//
// It provides three things:
//
//   - Matrix — a dense, square, row-major cost matrix over int64 entries.
//     Integral costs keep engine arithmetic exact; loaders are responsible
//     for rounding real-valued sources before construction.
//
//   - Instance — the full problem statement: cost matrix, per-node demands,
//     per-vehicle capacities, depot index, and (optionally) per-node time
//     windows with a waiting allowance and a route horizon.
//
//   - Adapters — ArcCost, DemandAt and TravelTime, pure closures over a
//     validated Instance that engines register as callbacks. Adapters hold
//     no global state and never copy the matrix.
//
// Validation is staged and side-effect free: every invariant violation maps
// to a distinct sentinel, and all instance-level sentinels match
// ErrConfiguration via errors.Is. A well-formed instance may still be
// unsolvable (a node demand can exceed every capacity); feasibility is the
// engines' verdict, not a validation concern.
package vrp
