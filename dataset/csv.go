// Package dataset - csv matrix I/O. A csv matrix is a bare numeric grid:
// no header, no labels, one row per origin node.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lastmile/vrp"
)

// ReadMatrixCSV loads a bare numeric grid.
//
// Complexity: O(n²).
func ReadMatrixCSV(path string) (*vrp.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrDataFormat, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyData)
	}

	var (
		n    = len(records)
		rows = make([][]int64, n)
		v    int64
	)
	for i, rec := range records {
		if len(rec) != n {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, ErrNotSquare)
		}
		rows[i] = make([]int64, n)
		for j, cell := range rec {
			if v, err = parseCell(cell); err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", path, i+1, j+1, ErrBadCell)
			}
			rows[i][j] = v
		}
	}

	mat, err := vrp.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSquare)
	}

	return mat, nil
}

// WriteMatrixCSV stores a matrix as a bare numeric grid.
func WriteMatrixCSV(path string, m *vrp.Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", path, ErrEmptyData)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	var (
		w   = csv.NewWriter(file)
		n   = m.Dim()
		rec = make([]string, n)
		v   int64
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				file.Close()

				return err
			}
			rec[j] = strconv.FormatInt(v, 10)
		}
		if err = w.Write(rec); err != nil {
			file.Close()

			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		file.Close()

		return err
	}

	return file.Close()
}
