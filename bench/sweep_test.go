// SPDX-License-Identifier: MIT

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepBlockSizes(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		suggested int
		want      []int
	}{
		{"large matrix", 5000, 32, []int{4, 8, 16, 32, 64, 128, 256, 512}},
		{"suggestion off ladder", 100, 48, []int{4, 8, 16, 32, 48, 64}},
		{"suggestion above n", 20, 32, []int{4, 8, 16}},
		{"tiny matrix", 3, 32, []int{3}},
		{"tiny with suggestion", 3, 2, []int{2}},
		{"empty", 0, 32, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SweepBlockSizes(tc.n, tc.suggested))
		})
	}
}
