// Package routing hosts the vehicle-routing engine surface and two
// conformant engines.
//
// The surface mirrors the classic callback-driven solver shape:
//
//	m, _ := routing.NewModel(nodes, vehicles, depot)
//	_ = m.SetArcCost(costFn)                                // register cost callback
//	_ = m.AddCapacityDimension(demandFn, capacities, 0)     // register demand callback
//	_ = m.AddTimeDimension(transitFn, waitSlack, horizon)   // optional, timed runs
//	_ = m.SetNodeWindow(node, earliest, latest)             // optional, per node
//	asn, err := routing.NewEngine(params).Solve(m, params)
//
// Configure collapses the model-building steps for a validated vrp.Instance.
//
// Engines:
//
//   - Local search (default): a deterministic first solution (path cheapest
//     arc, savings, or parallel cheapest insertion) improved by
//     first-improvement sweeps (intra-route 2-opt, inter-route relocate and
//     exchange), optionally driven by guided local search under a wall-clock
//     budget.
//
//   - Branch-and-bound (SearchParams.Exact): exhaustive DFS over per-vehicle
//     route extensions with a degree-1 relaxation lower bound and a
//     heuristic incumbent seed. Exact on small instances.
//
// Shared semantics:
//
//   - Node indices are the caller's matrix indices; there is no hidden
//     index remapping.
//   - A solve is bounded by SearchParams.TimeLimit; on expiry the best
//     incumbent is returned, never a partial plan. ErrInfeasible signals
//     that no feasible assignment was found at all; it is an outcome,
//     not a fault.
//   - Determinism: all tie-breaks resolve by lowest index; identical
//     inputs produce identical assignments.
package routing
