// Package vrp - dense square cost matrix.
//
// Matrix is the only cost store in this module: dense, row-major, int64.
// Order is fixed at construction, so squareness is structural and never
// re-checked. Value invariants (non-negative entries, zero diagonal) are
// the concern of Instance.Validate, not of the container.

package vrp

// Matrix is a dense n×n cost matrix with row-major backing storage.
// The zero value is unusable; construct via NewMatrix or FromRows.
type Matrix struct {
	n    int     // matrix order
	data []int64 // row-major entries, len == n*n
}

// NewMatrix allocates a zeroed n×n matrix.
//
// Contract: n >= 1, otherwise ErrBadShape.
// Complexity: O(n²) allocation.
func NewMatrix(n int) (*Matrix, error) {
	if n < 1 {
		return nil, ErrBadShape
	}

	return &Matrix{n: n, data: make([]int64, n*n)}, nil
}

// FromRows builds a matrix from row slices. Input must be square: every row
// length equals the row count. Rows are copied; the input stays untouched.
//
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Matrix, error) {
	n := len(rows)
	if n < 1 {
		return nil, ErrBadShape
	}

	m := &Matrix{n: n, data: make([]int64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrBadShape
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Dim reports the matrix order n.
func (m *Matrix) Dim() int { return m.n }

// At returns the entry at (i, j), or ErrOutOfRange for invalid indices.
func (m *Matrix) At(i, j int) (int64, error) {
	if !m.inRange(i, j) {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// Set stores v at (i, j), or returns ErrOutOfRange for invalid indices.
func (m *Matrix) Set(i, j int, v int64) error {
	if !m.inRange(i, j) {
		return ErrOutOfRange
	}
	m.data[i*m.n+j] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{n: m.n, data: make([]int64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// at is the unchecked fast path for validated in-range access.
// Adapters and engines use it after Instance.Validate has passed.
func (m *Matrix) at(i, j int) int64 { return m.data[i*m.n+j] }

// inRange reports whether (i, j) addresses a cell.
func (m *Matrix) inRange(i, j int) bool {
	return i >= 0 && i < m.n && j >= 0 && j < m.n
}
