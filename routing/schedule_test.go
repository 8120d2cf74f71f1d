package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastmile/routing"
)

func TestScheduleRoute_NoTimeDimension(t *testing.T) {
	m, err := routing.Configure(threeNode(t))
	require.NoError(t, err)

	ts, ok := m.ScheduleRoute([]int{1, 2})
	require.True(t, ok)
	require.Nil(t, ts)
}

// TestScheduleRoute_Windows pins the propagated arrival intervals of the
// route 1 -> 2 -> 3 on the timed fixture. The forward pass accumulates
// transit and waiting, the backward pass tightens: the depot departure
// shrinks to [0,2] because stop 1 closes at 4 and sits 2 away.
func TestScheduleRoute_Windows(t *testing.T) {
	m, err := routing.Configure(timedFour(t))
	require.NoError(t, err)

	ts, ok := m.ScheduleRoute([]int{1, 2, 3})
	require.True(t, ok)
	require.Len(t, ts, 5)

	want := []routing.StopTiming{
		{Node: 0, ArriveMin: 0, ArriveMax: 2},
		{Node: 1, ArriveMin: 2, ArriveMax: 4},
		{Node: 2, ArriveMin: 5, ArriveMax: 8},
		{Node: 3, ArriveMin: 7, ArriveMax: 10},
		{Node: 0, ArriveMin: 13, ArriveMax: 21},
	}
	require.Equal(t, want, ts)
}

func TestScheduleRoute_InfeasibleOrder(t *testing.T) {
	m, err := routing.Configure(timedFour(t))
	require.NoError(t, err)

	// Node 1 closes at 4; reaching it after node 3 arrives no earlier
	// than 10, so the reversed route cannot be scheduled.
	_, ok := m.ScheduleRoute([]int{3, 2, 1})
	require.False(t, ok)
}

func TestScheduleRoute_IdleVehicle(t *testing.T) {
	m, err := routing.Configure(timedFour(t))
	require.NoError(t, err)

	ts, ok := m.ScheduleRoute(nil)
	require.True(t, ok)
	require.Len(t, ts, 2)
	require.Equal(t, ts[0], ts[1])
}

func TestRouteLoad(t *testing.T) {
	m, err := routing.Configure(threeNode(t))
	require.NoError(t, err)

	load, ok := m.RouteLoad(0, []int{1, 2})
	require.True(t, ok)
	require.Equal(t, int64(2), load)

	_, ok = m.RouteLoad(-1, []int{1})
	require.False(t, ok)
}

func TestRouteLoad_NoCapacityDimension(t *testing.T) {
	m, err := routing.NewModel(3, 1, 0)
	require.NoError(t, err)
	require.NoError(t, m.SetArcCost(unitCost))

	load, ok := m.RouteLoad(0, []int{1, 2})
	require.True(t, ok)
	require.Zero(t, load)
}
