package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastmile/routing"
)

// fiveNodeModel builds a bare 5-node, 2-vehicle model with unit arc costs.
func fiveNodeModel(t *testing.T) *routing.Model {
	t.Helper()
	m, err := routing.NewModel(5, 2, 0)
	require.NoError(t, err)
	require.NoError(t, m.SetArcCost(unitCost))

	return m
}

func TestValidateAssignment(t *testing.T) {
	m := fiveNodeModel(t)
	tests := []struct {
		name   string
		routes [][]int
		ok     bool
	}{
		{name: "full coverage", routes: [][]int{{1, 2}, {3, 4}}, ok: true},
		{name: "parked vehicle", routes: [][]int{{1, 2, 3, 4}, {}}, ok: true},
		{name: "wrong route count", routes: [][]int{{1, 2, 3, 4}}, ok: false},
		{name: "missing node", routes: [][]int{{1, 2}, {3}}, ok: false},
		{name: "duplicate node", routes: [][]int{{1, 2}, {2, 3, 4}}, ok: false},
		{name: "depot in route", routes: [][]int{{1, 0, 2}, {3, 4}}, ok: false},
		{name: "out of range", routes: [][]int{{1, 2}, {3, 5}}, ok: false},
		{name: "negative index", routes: [][]int{{1, 2}, {3, -1}}, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := routing.ValidateAssignment(&routing.Assignment{Routes: tc.routes}, m)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, routing.ErrBadAssignment)
		})
	}
}

func TestValidateAssignment_Nil(t *testing.T) {
	m := fiveNodeModel(t)
	require.ErrorIs(t, routing.ValidateAssignment(nil, m), routing.ErrBadAssignment)
	require.ErrorIs(t, routing.ValidateAssignment(&routing.Assignment{}, nil), routing.ErrBadAssignment)
}

// Coverage alone is not enough: a plan must also fit the registered
// dimensions.
func TestValidateAssignment_Dimensions(t *testing.T) {
	t.Run("overloaded route", func(t *testing.T) {
		inst := threeNode(t)
		inst.Demands = []int64{0, 2, 2}
		inst.Capacities = []int64{3}
		m, err := routing.Configure(inst)
		require.NoError(t, err)

		a := &routing.Assignment{Routes: [][]int{{1, 2}}}
		require.ErrorIs(t, routing.ValidateAssignment(a, m), routing.ErrBadAssignment)
	})
	t.Run("unschedulable order", func(t *testing.T) {
		m, err := routing.Configure(timedFour(t))
		require.NoError(t, err)

		// Node 1 closes at 4 and cannot follow nodes 3 and 2.
		a := &routing.Assignment{Routes: [][]int{{3, 2, 1}, {}}}
		require.ErrorIs(t, routing.ValidateAssignment(a, m), routing.ErrBadAssignment)
	})
	t.Run("feasible plan passes", func(t *testing.T) {
		m, err := routing.Configure(timedFour(t))
		require.NoError(t, err)

		a := &routing.Assignment{Routes: [][]int{{1, 2, 3}, {}}}
		require.NoError(t, routing.ValidateAssignment(a, m))
	})
}

func TestRouteCost(t *testing.T) {
	arc := func(from, to int) int64 { return int64(10*from + to) }

	require.Equal(t, int64(0), routing.RouteCost(arc, 0, nil))
	// 0->2 (2) + 2->1 (21) + 1->0 (10).
	require.Equal(t, int64(33), routing.RouteCost(arc, 0, []int{2, 1}))
	// Single stop: 0->3 (3) + 3->0 (30).
	require.Equal(t, int64(33), routing.RouteCost(arc, 0, []int{3}))
}

func TestPlanCost(t *testing.T) {
	arc := func(from, to int) int64 { return 1 }
	// Two legs for the singleton, three for the pair, none when parked.
	require.Equal(t, int64(5), routing.PlanCost(arc, 0, [][]int{{1}, {2, 3}, {}}))
}

func TestAssignment_CloneAndStops(t *testing.T) {
	a := &routing.Assignment{Routes: [][]int{{1, 2}, {}, {3}}, Cost: 7}
	require.Equal(t, 3, a.Stops())

	cp := a.Clone()
	require.Equal(t, a.Routes, cp.Routes)
	require.Equal(t, a.Cost, cp.Cost)

	cp.Routes[0][0] = 9
	require.Equal(t, 1, a.Routes[0][0])
}

func TestAssignment_DebugString(t *testing.T) {
	a := &routing.Assignment{Routes: [][]int{{1, 3, 2}, {}}, Cost: 42}
	require.Equal(t, "v0[1 3 2] v1[] cost=42", a.DebugString())
}
