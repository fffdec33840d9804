// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula c + r*cols.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Let kernels reach the flat slice directly (Data) without copying.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(1); At/Set: O(1); Equal: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of signed integers.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = c + r*cols).
type Dense struct {
	r, c int   // row and column counts (>0)
	data []int // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an rows×cols zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: ValidateShape; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (non-positive shape or rows*cols overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]int, rows*cols),
	}, nil
}

// NewDenseFrom wraps an existing row-major buffer without copying.
// The caller keeps ownership of data; writes through the Dense are visible in data.
//
// Errors:
//   - ErrInvalidDimensions when ValidateShape rejects the shape.
//   - ErrBadData when len(data) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(rows, cols int, data []int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, ErrBadData
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// Data returns the backing row-major slice (no copy).
// Mutations through the returned slice are visible in m.
func (m *Dense) Data() []int { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return col + row*m.c, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Equal reports whether o has the same shape and identical elements.
// A nil operand is equal only to another nil operand.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders rows as bracketed, comma-separated lines.
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
