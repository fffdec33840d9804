// SPDX-License-Identifier: MIT
// Package transpose_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures (sequences, seeded random buffers, poisoned dst).
//   • An interleaved reference of the blocked algorithm, where the remainder
//     sweeps fire from inside the tile loop, to pin the phased version to it.

package transpose_test

import (
	"math/bits"
	"math/rand"
)

// poison is written into destination buffers so untouched cells are visible.
const poison = -1

// huge is a dimension whose square overflows int on the build platform.
const huge = 1 << (bits.UintSize / 2)

// sequence RETURNS 1..n.
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// randomBuffer RETURNS n non-negative values from a source seeded with seed.
func randomBuffer(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = int(rng.Int31())
	}

	return out
}

// poisoned RETURNS a buffer of length n filled with poison.
func poisoned(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = poison
	}

	return out
}

// interleavedBlocked is the tile loop with the row, corner and column
// remainder sweeps triggered from the last block's last row/column, as in
// the formulation the phased Blocked replaces. Assumes valid input.
func interleavedBlocked(src []int, n, bs int, dst []int) {
	numBlocks := n / bs
	for w := 0; w < numBlocks; w++ {
		for x := 0; x < numBlocks; x++ {
			for i := w * bs; i < (w+1)*bs; i++ {
				for j := x * bs; j < (x+1)*bs; j++ {
					dst[i+j*n] = src[j+i*n]
					lastRowOfGrid := w == numBlocks-1 && i == (w+1)*bs-1
					if x == numBlocks-1 && j == (x+1)*bs-1 {
						for tj := j + 1; tj < n; tj++ {
							dst[i+tj*n] = src[tj+i*n]
						}
						if lastRowOfGrid {
							for ti := i + 1; ti < n; ti++ {
								for tj := j + 1; tj < n; tj++ {
									dst[ti+tj*n] = src[tj+ti*n]
								}
							}
						}
					}
					if lastRowOfGrid {
						for ti := i + 1; ti < n; ti++ {
							dst[ti+j*n] = src[j+ti*n]
						}
					}
				}
			}
		}
	}
}
