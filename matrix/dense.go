// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// error context tags
const (
	ctxSet = "Set"
	ctxRow = "Row"
)

// denseErrorf attaches method context and coordinates to a sentinel error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major table of finite float64 weights.
// r and c are the dimensions, data holds r*c elements (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero table.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate one zero-filled buffer of rows*cols.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf if v is NaN or ±Inf; the cell is left untouched.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the table's storage. Writes through
// the slice bypass the numeric policy, so callers treat it as read-only.
// Complexity: O(1), no copy.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}
