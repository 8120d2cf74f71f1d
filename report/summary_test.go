package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastmile/report"
	"github.com/katalvlaran/lastmile/routing"
	"github.com/katalvlaran/lastmile/vrp"
)

// parcelInstance is the 3-node single-driver fixture; one trip through
// both stops costs 11.
func parcelInstance(t *testing.T) *vrp.Instance {
	t.Helper()
	m, err := vrp.FromRows([][]int64{
		{0, 5, 5},
		{5, 0, 1},
		{5, 1, 0},
	})
	require.NoError(t, err)

	return vrp.NewInstance(m, []int64{0, 1, 1}, []int64{2}, 0)
}

// timedInstance is the 4-node two-vehicle fixture with windows; the
// window-feasible optimum is the single route 1 -> 2 -> 3 at cost 13.
func timedInstance(t *testing.T) *vrp.Instance {
	t.Helper()
	m, err := vrp.FromRows([][]int64{
		{0, 2, 4, 6},
		{2, 0, 3, 9},
		{4, 3, 0, 2},
		{6, 9, 2, 0},
	})
	require.NoError(t, err)
	inst := vrp.NewInstance(m, []int64{0, 1, 1, 1}, []int64{10, 10}, 0)
	inst.Windows = []vrp.TimeWindow{
		{},
		{Earliest: 1, Latest: 4},
		{Earliest: 4, Latest: 8},
		{Earliest: 6, Latest: 10},
	}
	inst.WaitSlack = 5
	inst.Horizon = 30

	return inst
}

func TestBuild_Parcel(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2}}, Cost: 11}
	sum, err := report.Build(parcelInstance(t), asn)
	require.NoError(t, err)

	require.False(t, sum.Timed)
	require.Equal(t, int64(11), sum.Cost)
	require.Equal(t, int64(11), sum.TotalDistance)
	require.Equal(t, int64(2), sum.TotalLoad)
	require.Equal(t, int64(2), sum.TotalDemand)
	require.Len(t, sum.Routes, 1)

	r := sum.Routes[0]
	require.Equal(t, int64(11), r.Distance)
	require.Equal(t, int64(2), r.Load)
	want := []report.Stop{
		{Node: 0, Load: 0},
		{Node: 1, Load: 1},
		{Node: 2, Load: 2},
		{Node: 0, Load: 2},
	}
	require.Equal(t, want, r.Stops)
}

func TestBuild_Timed(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2, 3}, {}}, Cost: 13}
	sum, err := report.Build(timedInstance(t), asn)
	require.NoError(t, err)

	require.True(t, sum.Timed)
	require.Equal(t, int64(13), sum.TotalDistance)
	require.Equal(t, int64(13), sum.TotalTime)
	require.Len(t, sum.Routes, 2)

	want := []report.Stop{
		{Node: 0, Load: 0, ArriveMin: 0, ArriveMax: 2},
		{Node: 1, Load: 1, ArriveMin: 2, ArriveMax: 4},
		{Node: 2, Load: 2, ArriveMin: 5, ArriveMax: 8},
		{Node: 3, Load: 3, ArriveMin: 7, ArriveMax: 10},
		{Node: 0, Load: 3, ArriveMin: 13, ArriveMax: 21},
	}
	require.Equal(t, want, sum.Routes[0].Stops)
	require.Equal(t, int64(13), sum.Routes[0].Duration)

	// The parked vehicle waits out the depot departure interval.
	idle := sum.Routes[1]
	require.Equal(t, []report.Stop{
		{Node: 0, ArriveMin: 0, ArriveMax: 30},
		{Node: 0, ArriveMin: 0, ArriveMax: 30},
	}, idle.Stops)
	require.Zero(t, idle.Duration)
	require.Zero(t, idle.Distance)
}

func TestBuild_RejectsBadAssignment(t *testing.T) {
	// Node 2 missing from the plan.
	asn := &routing.Assignment{Routes: [][]int{{1}}, Cost: 10}
	_, err := report.Build(parcelInstance(t), asn)
	require.ErrorIs(t, err, routing.ErrBadAssignment)
}

func TestBuild_RejectsBadInstance(t *testing.T) {
	inst := parcelInstance(t)
	inst.Demands = []int64{0, -1, 1}
	asn := &routing.Assignment{Routes: [][]int{{1, 2}}, Cost: 11}
	_, err := report.Build(inst, asn)
	require.ErrorIs(t, err, vrp.ErrConfiguration)
}
