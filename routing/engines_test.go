package routing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastmile/routing"
	"github.com/katalvlaran/lastmile/vrp"
)

// quick returns parameters that finish without a wall-clock budget:
// descent only, no metaheuristic rounds.
func quick() routing.SearchParams {
	p := routing.DefaultSearchParams()
	p.Metaheuristic = routing.NoMetaheuristic
	p.TimeLimit = 0

	return p
}

// exact returns branch-and-bound parameters without a budget.
func exact() routing.SearchParams {
	p := quick()
	p.Exact = true

	return p
}

// ---------------------------------------------------------------------------
// Optimality on pinned fixtures
// ---------------------------------------------------------------------------

func TestEngines_TrivialOptimum(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params routing.SearchParams
	}{
		{name: "local search", params: quick()},
		{name: "branch and bound", params: exact()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			asn, err := routing.Solve(threeNode(t), tc.params)
			require.NoError(t, err)
			require.Equal(t, int64(11), asn.Cost)
			require.Equal(t, "v0[1 2] cost=11", asn.DebugString())
		})
	}
}

func TestEngines_ClusteredSplit(t *testing.T) {
	ls, err := routing.Solve(clustered(t), quick())
	require.NoError(t, err)
	require.Equal(t, int64(12), ls.Cost)

	bb, err := routing.Solve(clustered(t), exact())
	require.NoError(t, err)
	require.Equal(t, int64(12), bb.Cost)

	m, err := routing.Configure(clustered(t))
	require.NoError(t, err)
	require.NoError(t, routing.ValidateAssignment(ls, m))
	require.NoError(t, routing.ValidateAssignment(bb, m))
}

func TestEngines_TimeWindows(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params routing.SearchParams
	}{
		{name: "local search", params: quick()},
		{name: "branch and bound", params: exact()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			asn, err := routing.Solve(timedFour(t), tc.params)
			require.NoError(t, err)
			require.Equal(t, int64(13), asn.Cost)
			require.Equal(t, "v0[1 2 3] v1[] cost=13", asn.DebugString())
		})
	}
}

// ---------------------------------------------------------------------------
// Infeasibility
// ---------------------------------------------------------------------------

func TestEngines_InfeasibleTotalDemand(t *testing.T) {
	inst := threeNode(t)
	inst.Capacities = []int64{1} // fleet carries 1, stops ask for 2

	for _, p := range []routing.SearchParams{quick(), exact()} {
		_, err := routing.Solve(inst, p)
		require.ErrorIs(t, err, routing.ErrInfeasible)
	}
}

func TestEngines_InfeasibleNodeDemand(t *testing.T) {
	inst := threeNode(t)
	inst.Demands = []int64{0, 3, 1} // node 1 exceeds every vehicle

	for _, p := range []routing.SearchParams{quick(), exact()} {
		_, err := routing.Solve(inst, p)
		require.ErrorIs(t, err, routing.ErrInfeasible)
	}
}

func TestEngines_InfeasibleHorizon(t *testing.T) {
	inst := timedFour(t)
	inst.Horizon = 10 // node 3 sits 6 out, 6 back; no return by 10

	for _, p := range []routing.SearchParams{quick(), exact()} {
		_, err := routing.Solve(inst, p)
		require.ErrorIs(t, err, routing.ErrInfeasible)
	}
}

// ---------------------------------------------------------------------------
// Strategies and metaheuristic
// ---------------------------------------------------------------------------

func TestStrategies_AllReachOptimum(t *testing.T) {
	for _, strategy := range []routing.FirstSolutionStrategy{
		routing.PathCheapestArc,
		routing.Savings,
		routing.ParallelCheapestInsertion,
	} {
		t.Run(strategy.String(), func(t *testing.T) {
			p := quick()
			p.FirstSolution = strategy
			asn, err := routing.Solve(clustered(t), p)
			require.NoError(t, err)
			require.Equal(t, int64(12), asn.Cost)

			m, err := routing.Configure(clustered(t))
			require.NoError(t, err)
			require.NoError(t, routing.ValidateAssignment(asn, m))
		})
	}
}

func TestGuidedLocalSearch_NeverWorse(t *testing.T) {
	inst := sixNodeAsymmetric(t)

	plain, err := routing.Solve(inst, quick())
	require.NoError(t, err)

	p := quick()
	p.Metaheuristic = routing.GuidedLocalSearch
	guided, err := routing.Solve(inst, p)
	require.NoError(t, err)

	require.LessOrEqual(t, guided.Cost, plain.Cost)
}

func TestExact_MatchesOrBeatsHeuristic(t *testing.T) {
	inst := sixNodeAsymmetric(t)

	ls, err := routing.Solve(inst, quick())
	require.NoError(t, err)
	bb, err := routing.Solve(inst, exact())
	require.NoError(t, err)

	require.LessOrEqual(t, bb.Cost, ls.Cost)

	m, err := routing.Configure(inst)
	require.NoError(t, err)
	require.NoError(t, routing.ValidateAssignment(bb, m))
}

// ---------------------------------------------------------------------------
// Determinism and budget
// ---------------------------------------------------------------------------

func TestEngines_Deterministic(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params routing.SearchParams
	}{
		{name: "local search", params: quick()},
		{name: "branch and bound", params: exact()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			first, err := routing.Solve(sixNodeAsymmetric(t), tc.params)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				again, err := routing.Solve(sixNodeAsymmetric(t), tc.params)
				require.NoError(t, err)
				require.Equal(t, first.DebugString(), again.DebugString())
			}
		})
	}
}

func TestSolve_TimeLimitKeepsBestFound(t *testing.T) {
	p := routing.DefaultSearchParams()
	p.TimeLimit = 50 * time.Millisecond

	asn, err := routing.Solve(clustered(t), p)
	require.NoError(t, err)
	require.Equal(t, int64(12), asn.Cost)

	m, err := routing.Configure(clustered(t))
	require.NoError(t, err)
	require.NoError(t, routing.ValidateAssignment(asn, m))
}

func TestSolve_DefaultParams(t *testing.T) {
	asn, err := routing.Solve(threeNode(t), routing.DefaultSearchParams())
	require.NoError(t, err)
	require.Equal(t, int64(11), asn.Cost)
}

// ---------------------------------------------------------------------------
// Engine misuse
// ---------------------------------------------------------------------------

func TestEngine_NilModel(t *testing.T) {
	_, err := routing.NewEngine(quick()).Solve(nil, quick())
	require.ErrorIs(t, err, routing.ErrNilInstance)
}

func TestEngine_MissingArcCost(t *testing.T) {
	m, err := routing.NewModel(3, 1, 0)
	require.NoError(t, err)

	_, err = routing.NewEngine(quick()).Solve(m, quick())
	require.ErrorIs(t, err, routing.ErrNoArcCost)
}

func TestNewEngine_Dispatch(t *testing.T) {
	require.IsType(t, routing.LocalSearchEngine{}, routing.NewEngine(quick()))
	require.IsType(t, routing.BranchAndBoundEngine{}, routing.NewEngine(exact()))
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

// sixNodeAsymmetric returns a 6-node, 2-vehicle instance with no symmetry
// to hide behind; used where only relative engine quality is asserted.
func sixNodeAsymmetric(t *testing.T) *vrp.Instance {
	t.Helper()
	m, err := vrp.FromRows([][]int64{
		{0, 9, 7, 3, 8, 5},
		{9, 0, 2, 8, 4, 6},
		{6, 3, 0, 9, 5, 8},
		{3, 7, 9, 0, 2, 4},
		{8, 5, 6, 2, 0, 3},
		{5, 7, 9, 4, 3, 0},
	})
	require.NoError(t, err)

	return vrp.NewInstance(m, []int64{0, 2, 3, 1, 2, 3}, []int64{6, 6}, 0)
}
