package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastmile/report"
	"github.com/katalvlaran/lastmile/routing"
	"github.com/katalvlaran/lastmile/vrp"
)

func TestWriteParcel_Golden(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2}}, Cost: 11}
	sum, err := report.Build(parcelInstance(t), asn)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sum.WriteParcel(&buf))

	want := "\n\nRoutes\n" +
		"-------------------------\n" +
		"Route for driver 0:\n" +
		"    Node(0)/Parcels(0) ->     Node(1)/Parcels(1) ->     Node(2)/Parcels(2) ->  0 Parcels(2)\n" +
		"\tDistance of the route: 11 (m)\n" +
		"\tParcels Delivered: 2 (parcels)\n" +
		"\n" +
		"Total distance of all routes: 11 (m)\n" +
		"Parcels Delivered: 2/2\n"
	require.Equal(t, want, buf.String())
}

func TestWriteParcel_ThousandsSeparators(t *testing.T) {
	m, err := vrp.FromRows([][]int64{
		{0, 600000},
		{600000, 0},
	})
	require.NoError(t, err)
	inst := vrp.NewInstance(m, []int64{0, 1}, []int64{1}, 0)

	asn := &routing.Assignment{Routes: [][]int{{1}}, Cost: 1200000}
	sum, err := report.Build(inst, asn)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sum.WriteParcel(&buf))
	require.Contains(t, buf.String(), "Total distance of all routes: 1,200,000 (m)")
	require.Contains(t, buf.String(), "Parcels Delivered: 1/1")
}

// Rendering the same summary twice yields byte-identical output.
func TestWriteParcel_Idempotent(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2}}, Cost: 11}
	sum, err := report.Build(parcelInstance(t), asn)
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, sum.WriteParcel(&first))
	require.NoError(t, sum.WriteParcel(&second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteSchedule_Golden(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2, 3}, {}}, Cost: 13}
	sum, err := report.Build(timedInstance(t), asn)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sum.WriteSchedule(&buf))

	want := "Total cost: 13\n\n" +
		"Route for vehicle (1):\n" +
		"Node:0 Time(0,2) -> Node:1 Time(2,4) -> Node:2 Time(5,8) -> Node:3 Time(7,10) -> Node:0 Time(13,21)\n" +
		"Time of the route: 13 min\n\n" +
		"Route for vehicle (2):\n" +
		"Node:0 Time(0,30) -> Node:0 Time(0,30)\n" +
		"Time of the route: 0 min\n\n" +
		"Total time of all routes: 13min\n"
	require.Equal(t, want, buf.String())
}

func TestWriteSchedule_Idempotent(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2, 3}, {}}, Cost: 13}
	sum, err := report.Build(timedInstance(t), asn)
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, sum.WriteSchedule(&first))
	require.NoError(t, sum.WriteSchedule(&second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteSchedule_RequiresTimings(t *testing.T) {
	asn := &routing.Assignment{Routes: [][]int{{1, 2}}, Cost: 11}
	sum, err := report.Build(parcelInstance(t), asn)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, sum.WriteSchedule(&buf), report.ErrNoTimings)
}

func TestWriters_NilSummary(t *testing.T) {
	var (
		sum *report.Summary
		buf bytes.Buffer
	)
	require.ErrorIs(t, sum.WriteParcel(&buf), report.ErrNilSummary)
	require.ErrorIs(t, sum.WriteSchedule(&buf), report.ErrNilSummary)
}

func TestWriteNoSolution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteNoSolution(&buf))
	require.Equal(t, "No Solution\n", buf.String())
}
