// Package dataset - spreadsheet matrix I/O.
//
// The xlsx layout mirrors the classic parcel workbook: labels colN across
// row 1, labels rowN down column A, the numeric matrix from B2. Reading
// drops the label border and parses the interior; writing reproduces it,
// so a written file reads back to the identical matrix.
//
// Cells may carry floats (geodata exports often do); values round half
// away from zero into int64 costs.

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/lastmile/vrp"
)

// ReadMatrixXLSX loads a labeled cost matrix from the first sheet.
//
// Complexity: O(n²).
func ReadMatrixXLSX(path string) (*vrp.Matrix, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyData)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyData)
	}

	var (
		data = rows[1:] // row 1 holds column labels
		n    = len(data)
		out  = make([][]int64, n)
		v    int64
	)
	for i, row := range data {
		// Column A holds the row label; n values follow.
		if len(row) != n+1 {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, ErrNotSquare)
		}
		out[i] = make([]int64, n)
		for j := 1; j <= n; j++ {
			if v, err = parseCell(row[j]); err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", path, i+2, j+1, ErrBadCell)
			}
			out[i][j-1] = v
		}
	}

	mat, err := vrp.FromRows(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSquare)
	}

	return mat, nil
}

// WriteMatrixXLSX stores a cost matrix with the labeled border layout.
func WriteMatrixXLSX(path string, m *vrp.Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", path, ErrEmptyData)
	}

	var (
		f     = excelize.NewFile()
		sheet = f.GetSheetList()[0]
		n     = m.Dim()
		cell  string
		v     int64
		err   error
	)
	defer f.Close()

	for j := 0; j < n; j++ {
		if cell, err = excelize.CoordinatesToCellName(j+2, 1); err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, "col"+strconv.Itoa(j)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if cell, err = excelize.CoordinatesToCellName(1, i+2); err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, "row"+strconv.Itoa(i)); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if cell, err = excelize.CoordinatesToCellName(j+2, i+2); err != nil {
				return err
			}
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// parseCell converts one spreadsheet or csv cell into an int64 cost,
// rounding half away from zero.
func parseCell(s string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(f)), nil
}
