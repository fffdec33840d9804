// SPDX-License-Identifier: MIT

package transpose

// Check reports whether candidate[j + i*cols] == src[i + j*rows] holds for
// every i in [0,rows) and j in [0,cols), stopping at the first mismatch.
//
// The relation is read with the source's row stride rather than the
// candidate's. For rows == cols this is exactly "candidate is the transpose
// of src". For a rectangular m×n source A and AT = Naive(A, m, n), the
// relation holds as Check(A, AT, n, m).
//
// Check returns false, without reading, when a dimension is negative,
// rows*cols overflows int, or a slice is shorter than rows*cols. Zero
// dimensions are vacuously true.
//
// Complexity: O(rows·cols) worst case, O(1) extra space.
func Check(src, candidate []int, rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	if rows == 0 || cols == 0 {
		return true
	}
	if validateBuffers(src, rows, cols, candidate) != nil {
		return false
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if candidate[j+i*cols] != src[i+j*rows] {
				return false
			}
		}
	}

	return true
}

// Verify checks that dst (cols×rows) is the transpose of src (rows×cols) for
// any shape, in row-major order of src.
//
// Errors:
//   - ErrInvalidDimensions, ErrBufferTooSmall for malformed input.
//   - *MismatchError (matches ErrMismatch) at the first disagreeing element.
//
// Complexity: O(rows·cols), no allocations on success.
func Verify(src, dst []int, rows, cols int) error {
	if err := validateBuffers(src, rows, cols, dst); err != nil {
		return err
	}

	var r, c, want, got int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			want = src[c+r*cols]
			got = dst[r+c*rows]
			if want != got {
				return &MismatchError{Row: r, Col: c, Want: want, Got: got}
			}
		}
	}

	return nil
}
