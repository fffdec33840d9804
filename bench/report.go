// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/blocktranspose/internal/hostinfo"
	"github.com/katalvlaran/blocktranspose/transpose"
)

// Measurement is the outcome of timing one strategy at one block size.
type Measurement struct {
	Strategy  transpose.Strategy
	BlockSize int // 0 for the naive strategy

	Runs []time.Duration // one entry per timed run
	Min  time.Duration
	Mean time.Duration

	// Correct is true when the output passed both transpose.Check and
	// transpose.Verify.
	Correct bool
	// Mismatch holds the Verify error when Correct is false after a run.
	Mismatch error
	// Err is set when the kernel rejected its input; Runs is then empty.
	Err error
}

// Rejected reports whether the kernel refused the input (e.g. block too large).
func (m Measurement) Rejected() bool { return m.Err != nil }

// Report collects every measurement of one Run.
type Report struct {
	Size    int
	Seed    int64
	Repeats int
	Host    hostinfo.Info

	Naive   Measurement
	Blocked []Measurement
}

// Speedup returns Naive.Min / m.Min, or 0 when either side has no timing.
func (r *Report) Speedup(m Measurement) float64 {
	if m.Min <= 0 || r.Naive.Min <= 0 {
		return 0
	}

	return float64(r.Naive.Min) / float64(m.Min)
}

// Best returns the fastest correct blocked measurement.
func (r *Report) Best() (Measurement, bool) {
	correct := lo.Filter(r.Blocked, func(m Measurement, _ int) bool { return m.Correct })
	if len(correct) == 0 {
		return Measurement{}, false
	}

	return lo.MinBy(correct, func(a, b Measurement) bool { return a.Min < b.Min }), true
}

// AllCorrect is true when the naive and every blocked measurement ran and verified.
func (r *Report) AllCorrect() bool {
	return r.Naive.Correct && lo.EveryBy(r.Blocked, func(m Measurement) bool { return m.Correct })
}
