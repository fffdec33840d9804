// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests.

package matrix_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/blocktranspose/matrix"
)

// huge is a dimension whose square overflows int on the build platform.
const huge = 1 << (bits.UintSize / 2)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// Sequence RETURNS 1..n as a fresh slice; handy for hand-checkable layouts.
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
