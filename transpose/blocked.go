// SPDX-License-Identifier: MIT

package transpose

// Blocked transposes the square n×n row-major matrix src into dst by tiles of
// blockSize×blockSize. The output is identical to Naive(src, n, n, dst).
//
// Preconditions (checked in this order; dst is untouched on violation):
//  1. blockSize >= 1                        else ErrInvalidBlockSize.
//  2. blockSize <= cols && blockSize <= rows else ErrBlockSizeTooLarge.
//  3. rows == cols                           else ErrNonSquare.
//  4. len(src), len(dst) >= rows*cols        else ErrBufferTooSmall.
//
// Algorithm, with numBlocks = n / blockSize and covered = numBlocks*blockSize:
//  1. Tile pass:    every block (w,x) of the numBlocks×numBlocks grid.
//  2. Row pass:     rows [0,covered)  × columns [covered,n).
//  3. Column pass:  rows [covered,n)  × columns [0,covered).
//  4. Corner pass:  rows [covered,n)  × columns [covered,n).
//
// Passes 2–4 are empty when blockSize divides n. Together the four passes
// cover each of the n² positions exactly once.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Blocked(src []int, rows, cols, blockSize int, dst []int) error {
	if blockSize < 1 {
		return ErrInvalidBlockSize
	}
	if blockSize > cols || blockSize > rows {
		return ErrBlockSizeTooLarge
	}
	if rows != cols {
		return ErrNonSquare
	}
	if err := validateBuffers(src, rows, cols, dst); err != nil {
		return err
	}

	n := rows
	numBlocks := n / blockSize
	covered := numBlocks * blockSize

	tilePass(src, dst, n, blockSize, numBlocks)
	sweep(src, dst, n, 0, covered, covered, n) // row remainder
	sweep(src, dst, n, covered, n, 0, covered) // column remainder
	sweep(src, dst, n, covered, n, covered, n) // corner remainder

	return nil
}

// tilePass transposes each blockSize×blockSize tile of the evenly divisible grid.
func tilePass(src, dst []int, n, blockSize, numBlocks int) {
	var w, x, r0, c0 int
	for w = 0; w < numBlocks; w++ {
		r0 = w * blockSize
		for x = 0; x < numBlocks; x++ {
			c0 = x * blockSize
			sweep(src, dst, n, r0, r0+blockSize, c0, c0+blockSize)
		}
	}
}

// sweep transposes the src rectangle rows [r0,r1) × columns [c0,c1) of an
// n×n matrix into dst. Empty ranges are no-ops.
func sweep(src, dst []int, n, r0, r1, c0, c1 int) {
	var i, j, base int
	for i = r0; i < r1; i++ {
		base = i * n
		for j = c0; j < c1; j++ {
			dst[i+j*n] = src[base+j]
		}
	}
}
