// Package routing - engines and the solve entry points.
//
// Two interchangeable engines sit behind the Engine interface:
//   - LocalSearchEngine: construction, then descent, optionally driven by
//     guided local search. Fast, near-optimal, budget-friendly.
//   - BranchAndBoundEngine: exhaustive tree search with admissible
//     bounds. Optimal when it finishes; on a deadline it degrades to the
//     best incumbent found.
//
// Both engines are stateless values: every Solve call builds its own
// search state, so one engine may serve concurrent solves over different
// models. Determinism contract: same model, same parameters, same plan.

package routing

import "github.com/katalvlaran/lastmile/vrp"

// Engine produces an Assignment for a configured Model.
type Engine interface {
	// Solve computes a plan under the given parameters. It returns
	// ErrInfeasible when no complete plan satisfies the dimensions, a
	// configuration sentinel on model or parameter misuse, and otherwise
	// the best assignment the budget allowed.
	Solve(m *Model, p SearchParams) (*Assignment, error)
}

// LocalSearchEngine is the heuristic engine: first-solution construction
// followed by first-improvement descent, optionally restarted under
// guided local search penalties.
type LocalSearchEngine struct{}

// BranchAndBoundEngine is the exact engine. It seeds an incumbent with
// the heuristic pipeline, then proves or improves it by tree search.
type BranchAndBoundEngine struct{}

// NewEngine picks the engine the parameters ask for.
func NewEngine(p SearchParams) Engine {
	if p.Exact {
		return BranchAndBoundEngine{}
	}

	return LocalSearchEngine{}
}

// Solve configures a model from the instance and dispatches to the engine
// selected by the parameters. One-call surface for callers that do not
// need to touch the model.
func Solve(inst *vrp.Instance, p SearchParams) (*Assignment, error) {
	m, err := Configure(inst)
	if err != nil {
		return nil, err
	}

	return NewEngine(p).Solve(m, p)
}

// Solve runs construction and improvement within the wall-clock budget.
//
// Contracts:
//   - TimeLimit > 0 arms a deadline; expiry returns the best plan found
//     so far, never a partial or invalid one.
//   - TimeLimit == 0 runs to a local optimum (plus a fixed number of
//     guided restarts when the metaheuristic is enabled).
//
// Complexity: O(n²) per descent sweep over a plan of n nodes.
func (LocalSearchEngine) Solve(m *Model, p SearchParams) (*Assignment, error) {
	s, err := begin(m, p)
	if err != nil {
		return nil, err
	}
	routes, err := s.construct(p.FirstSolution)
	if err != nil {
		return nil, err
	}
	best, cost := s.improve(routes, p.Metaheuristic)
	asn := &Assignment{Routes: best, Cost: cost}
	if err = ValidateAssignment(asn, m); err != nil {
		return nil, err
	}

	return asn, nil
}

// Solve explores the vehicle-sequential tree to optimality or deadline.
//
// Contracts:
//   - Without a deadline the returned plan is optimal.
//   - With a deadline the plan is the best incumbent at expiry.
//   - ErrInfeasible only when no complete plan was found at all.
//
// Complexity: exponential worst case; the bound and the seeded incumbent
// keep practical instances tractable.
func (BranchAndBoundEngine) Solve(m *Model, p SearchParams) (*Assignment, error) {
	s, err := begin(m, p)
	if err != nil {
		return nil, err
	}
	routes, cost, err := newBnB(s).run()
	if err != nil {
		return nil, err
	}
	asn := &Assignment{Routes: routes, Cost: cost}
	if err = ValidateAssignment(asn, m); err != nil {
		return nil, err
	}

	return asn, nil
}

// begin validates the model and parameters and builds the search state.
// Shared preamble of both engines.
func begin(m *Model, p SearchParams) (*search, error) {
	if m == nil {
		return nil, ErrNilInstance
	}
	if err := m.ready(); err != nil {
		return nil, err
	}
	if err := validateParams(p); err != nil {
		return nil, err
	}
	s := newSearch(m, p)
	if err := s.precheck(); err != nil {
		return nil, err
	}

	return s, nil
}
