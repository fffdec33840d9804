// SPDX-License-Identifier: MIT

// Package transpose implements two strategies for transposing a row-major
// integer matrix and the checks used to validate their output.
//
// What:
//
//   - Naive  : element-by-element double loop; the correctness baseline.
//   - Blocked: square tiles of blockSize×blockSize, followed by explicit
//     row, column and corner remainder passes when blockSize does not
//     divide n. Square matrices only.
//   - Check  : the inverse-relation check candidate[j+i*cols] == src[i+j*rows].
//   - Verify : full transpose equality for any shape, reporting the first
//     mismatching coordinate.
//
// Layout:
//
//	A rows×cols matrix is a flat []int where element (r,c) lives at c + r*cols.
//	Its transpose is a cols×rows matrix where element (c,r) lives at r + c*rows.
//
// Why blocking helps:
//
//	The naive loop reads src with stride 1 and writes dst with stride rows,
//	touching a new cache line per write. Tiling keeps the working set of one
//	tile from each buffer hot while it is processed.
//
// Errors:
//
//	Invalid input is reported through sentinels (ErrBlockSizeTooLarge,
//	ErrNonSquare, ...) and dst is left untouched. Nothing panics on
//	user input.
//
// Complexity:
//
//	Naive and Blocked are O(rows·cols) time and O(1) extra space.
//
// Usage:
//
//	dst := make([]int, n*n)
//	if err := transpose.Blocked(src, n, n, 32, dst); err != nil {
//		// errors.Is(err, transpose.ErrBlockSizeTooLarge) ...
//	}
package transpose
