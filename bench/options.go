// SPDX-License-Identifier: MIT

// Package bench: functional configuration for the benchmark runner.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults first.
//
// Design goals:
//   - Deterministic behavior when a seed is given: no hidden randomness.
//   - No dead switches: each option changes what Run measures or reports.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package bench

import (
	"io"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the order of the generated square matrix.
	DefaultSize = 5000

	// DefaultRepeats is the number of timed runs per measurement.
	DefaultRepeats = 1

	// DefaultSeed of 0 asks Run to seed from the wall clock.
	DefaultSeed = 0

	// MaxSize is the largest order whose square fits in a 32-bit int.
	MaxSize = 46340
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSizeInvalid      = "bench: WithSize: size must be in [1, MaxSize]"
	panicRepeatsInvalid   = "bench: WithRepeats: repeats must be >= 1"
	panicBlockSizeInvalid = "bench: WithBlockSizes: block sizes must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; NewRunner resolves them via gatherOptions.
type Options struct {
	size       int         // DefaultSize
	seed       int64       // DefaultSeed; 0 ⇒ clock
	repeats    int         // DefaultRepeats
	blockSizes []int       // empty ⇒ host default
	logger     *zap.Logger // never nil after gatherOptions
	progress   io.Writer   // nil ⇒ no progress bar
}

// WithSize sets the matrix order n (the matrix is n×n).
// Panics when n < 1 or n > MaxSize.
func WithSize(n int) Option {
	if n < 1 || n > MaxSize {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.size = n }
}

// WithSeed fixes the generator seed; 0 restores clock seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRepeats sets how many timed runs feed each measurement's min and mean.
// Panics when r < 1.
func WithRepeats(r int) Option {
	if r < 1 {
		panic(panicRepeatsInvalid)
	}

	return func(o *Options) { o.repeats = r }
}

// WithBlockSizes sets the blocked-transpose tile edges to measure, in order.
// Sizes larger than the matrix are kept and reported as rejected.
// Panics when any size < 1.
func WithBlockSizes(sizes ...int) Option {
	for _, s := range sizes {
		if s < 1 {
			panic(panicBlockSizeInvalid)
		}
	}
	cp := append([]int(nil), sizes...)

	return func(o *Options) { o.blockSizes = cp }
}

// WithLogger sets the logger for per-measurement debug lines; nil means no-op.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithProgress renders a progress bar to w while measuring; nil disables it.
func WithProgress(w io.Writer) Option {
	return func(o *Options) { o.progress = w }
}

// gatherOptions applies defaults, then opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		size:    DefaultSize,
		seed:    DefaultSeed,
		repeats: DefaultRepeats,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
