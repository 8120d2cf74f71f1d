package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/lastmile/dataset"
	"github.com/katalvlaran/lastmile/vrp"
)

// sampleMatrix is a small symmetric distance block in meters.
func sampleMatrix(t *testing.T) *vrp.Matrix {
	t.Helper()
	m, err := vrp.FromRows([][]int64{
		{0, 548, 776},
		{548, 0, 684},
		{776, 684, 0},
	})
	require.NoError(t, err)

	return m
}

// requireSameMatrix compares two matrices cell by cell.
func requireSameMatrix(t *testing.T, want, got *vrp.Matrix) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim())
	for i := 0; i < want.Dim(); i++ {
		for j := 0; j < want.Dim(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.Equal(t, w, g, "cell (%d,%d)", i, j)
		}
	}
}

// craftSheet builds a workbook from raw rows, label border included.
func craftSheet(t *testing.T, path string, rows ...[]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestMatrixXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distances.xlsx")
	want := sampleMatrix(t)

	require.NoError(t, dataset.WriteMatrixXLSX(path, want))
	got, err := dataset.ReadMatrixXLSX(path)
	require.NoError(t, err)
	requireSameMatrix(t, want, got)
}

func TestReadMatrixXLSX_MissingFile(t *testing.T) {
	_, err := dataset.ReadMatrixXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, dataset.ErrDataFormat)
}

func TestReadMatrixXLSX_EmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	craftSheet(t, path)

	_, err := dataset.ReadMatrixXLSX(path)
	require.ErrorIs(t, err, dataset.ErrEmptyData)
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestReadMatrixXLSX_RaggedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.xlsx")
	craftSheet(t, path,
		[]interface{}{"", "col0", "col1"},
		[]interface{}{"row0", 0, 548},
		[]interface{}{"row1", 548},
	)

	_, err := dataset.ReadMatrixXLSX(path)
	require.ErrorIs(t, err, dataset.ErrNotSquare)
	require.Contains(t, err.Error(), "row 3")
}

func TestReadMatrixXLSX_BadCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.xlsx")
	craftSheet(t, path,
		[]interface{}{"", "col0", "col1"},
		[]interface{}{"row0", 0, "close"},
		[]interface{}{"row1", 548, 0},
	)

	_, err := dataset.ReadMatrixXLSX(path)
	require.ErrorIs(t, err, dataset.ErrBadCell)
	require.Contains(t, err.Error(), "row 2")
}

func TestReadMatrixXLSX_FloatCellsRound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geo.xlsx")
	craftSheet(t, path,
		[]interface{}{"", "col0", "col1"},
		[]interface{}{"row0", 0, 2.6},
		[]interface{}{"row1", 3.5, 0},
	)

	got, err := dataset.ReadMatrixXLSX(path)
	require.NoError(t, err)
	v, err := got.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
	v, err = got.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)
}

func TestWriteMatrixXLSX_NilMatrix(t *testing.T) {
	err := dataset.WriteMatrixXLSX(filepath.Join(t.TempDir(), "nil.xlsx"), nil)
	require.ErrorIs(t, err, dataset.ErrEmptyData)
}
