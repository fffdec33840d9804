// SPDX-License-Identifier: MIT

package transpose

import "github.com/katalvlaran/blocktranspose/matrix"

// NaiveDense returns a new cols×rows Dense holding the transpose of m.
// Stage 1 (Validate): nil-check.
// Stage 2 (Execute): Naive into a fresh cols×rows buffer.
// Stage 3 (Wrap): NewDenseFrom over that buffer, no copy.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func NaiveDense(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, transposeErrorf(opNaive, err)
	}

	rows, cols := m.Shape()
	dst := make([]int, len(m.Data()))
	if err := Naive(m.Data(), rows, cols, dst); err != nil {
		return nil, transposeErrorf(opNaive, err)
	}
	res, err := matrix.NewDenseFrom(cols, rows, dst) // dims flipped
	if err != nil {
		return nil, transposeErrorf(opNaive, err)
	}

	return res, nil
}

// BlockedDense returns a new Dense holding the transpose of the square m,
// computed with Blocked at the given block size.
// Errors from Blocked (ErrBlockSizeTooLarge, ErrNonSquare, ...) are wrapped
// with the "Blocked" tag and still match via errors.Is.
func BlockedDense(m *matrix.Dense, blockSize int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, transposeErrorf(opBlocked, err)
	}

	rows, cols := m.Shape()
	dst := make([]int, len(m.Data()))
	if err := Blocked(m.Data(), rows, cols, blockSize, dst); err != nil {
		return nil, transposeErrorf(opBlocked, err)
	}
	res, err := matrix.NewDenseFrom(cols, rows, dst) // dims flipped
	if err != nil {
		return nil, transposeErrorf(opBlocked, err)
	}

	return res, nil
}
