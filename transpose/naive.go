// SPDX-License-Identifier: MIT

package transpose

import "github.com/katalvlaran/blocktranspose/matrix"

// validateBuffers checks shape (positive, rows*cols fits in int) and that
// src/dst can each hold rows*cols elements. matrix validator failures are
// reported with this package's sentinels.
func validateBuffers(src []int, rows, cols int, dst []int) error {
	if matrix.ValidateShape(rows, cols) != nil {
		return ErrInvalidDimensions
	}
	if matrix.ValidateBufferLen(src, rows, cols) != nil || matrix.ValidateBufferLen(dst, rows, cols) != nil {
		return ErrBufferTooSmall
	}

	return nil
}

// Naive writes the transpose of the rows×cols row-major matrix src into dst,
// so that dst (cols×rows) satisfies dst[r + c*rows] = src[c + r*cols].
//
// Implementation:
//   - Stage 1: validate shape and buffer lengths; dst is untouched on error.
//   - Stage 2: row-major sweep over src, strided writes into dst.
//
// Errors:
//   - ErrInvalidDimensions, ErrBufferTooSmall.
//
// Complexity:
//   - Time O(rows·cols), Space O(1).
func Naive(src []int, rows, cols int, dst []int) error {
	if err := validateBuffers(src, rows, cols, dst); err != nil {
		return err
	}

	var r, c, base int
	for r = 0; r < rows; r++ {
		base = r * cols
		for c = 0; c < cols; c++ {
			dst[r+c*rows] = src[base+c]
		}
	}

	return nil
}
