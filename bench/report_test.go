// SPDX-License-Identifier: MIT

package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/blocktranspose/transpose"
)

func sampleReport() *Report {
	return &Report{
		Size:    100,
		Seed:    5,
		Repeats: 1,
		Naive:   Measurement{Strategy: transpose.StrategyNaive, Min: 40 * time.Millisecond, Mean: 40 * time.Millisecond, Correct: true},
		Blocked: []Measurement{
			{Strategy: transpose.StrategyBlocked, BlockSize: 8, Min: 20 * time.Millisecond, Mean: 21 * time.Millisecond, Correct: true},
			{Strategy: transpose.StrategyBlocked, BlockSize: 16, Min: 10 * time.Millisecond, Mean: 12 * time.Millisecond, Correct: true},
			{Strategy: transpose.StrategyBlocked, BlockSize: 32, Min: 5 * time.Millisecond, Mean: 5 * time.Millisecond, Correct: false},
		},
	}
}

func TestReport_Speedup(t *testing.T) {
	r := sampleReport()
	assert.InDelta(t, 2.0, r.Speedup(r.Blocked[0]), 1e-9)
	assert.InDelta(t, 4.0, r.Speedup(r.Blocked[1]), 1e-9)
	assert.Zero(t, r.Speedup(Measurement{}))
}

func TestReport_Best(t *testing.T) {
	r := sampleReport()
	best, ok := r.Best()
	assert.True(t, ok)
	assert.Equal(t, 16, best.BlockSize, "incorrect results never win")

	_, ok = (&Report{}).Best()
	assert.False(t, ok)
}

func TestReport_AllCorrect(t *testing.T) {
	r := sampleReport()
	assert.False(t, r.AllCorrect())

	r.Blocked = r.Blocked[:2]
	assert.True(t, r.AllCorrect())

	r.Naive.Correct = false
	assert.False(t, r.AllCorrect())
}
