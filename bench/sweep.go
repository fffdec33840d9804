// SPDX-License-Identifier: MIT

package bench

import (
	"slices"

	"github.com/samber/lo"
)

// maxSweepBlock caps the power-of-two ladder; larger tiles no longer fit any L2.
const maxSweepBlock = 512

// SweepBlockSizes returns the block sizes worth comparing for an n×n matrix:
// powers of two from 4 up to min(n, 512), plus suggested, sorted and without
// duplicates. Sizes above n are dropped. When nothing fits, it returns {n}.
func SweepBlockSizes(n, suggested int) []int {
	if n < 1 {
		return nil
	}
	var sizes []int
	for b := 4; b <= n && b <= maxSweepBlock; b *= 2 {
		sizes = append(sizes, b)
	}
	sizes = append(sizes, suggested)
	sizes = lo.Uniq(lo.Filter(sizes, func(b int, _ int) bool { return b >= 1 && b <= n }))
	if len(sizes) == 0 {
		return []int{n}
	}
	slices.Sort(sizes)

	return sizes
}
