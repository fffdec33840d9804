// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/katalvlaran/blocktranspose/internal/hostinfo"
	"github.com/katalvlaran/blocktranspose/matrix"
	"github.com/katalvlaran/blocktranspose/transpose"
)

// Runner generates one random square matrix and times the naive transpose
// and the blocked transpose at each configured block size against it.
type Runner struct {
	opts Options
}

// NewRunner resolves opts over the defaults.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: gatherOptions(opts...)}
}

// BlockSizes returns the block sizes Run will measure: the configured list
// without duplicates, or the host-suggested size clamped to the matrix order.
func (r *Runner) BlockSizes() []int {
	if len(r.opts.blockSizes) == 0 {
		return []int{min(hostinfo.DefaultBlockSize(), r.opts.size)}
	}

	return lo.Uniq(r.opts.blockSizes)
}

// Run measures every strategy and verifies every result, including the
// blocked ones. Cancellation is observed between timed runs only.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	o := r.opts
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	blockSizes := r.BlockSizes()

	o.logger.Info("generating matrix", zap.Int("size", o.size), zap.Int64("seed", seed))
	src, err := matrix.NewRandom(o.size, o.size, seed)
	if err != nil {
		return nil, errors.Annotate(err, "failed to generate source matrix")
	}
	dst := make([]int, o.size*o.size)

	report := &Report{
		Size:    o.size,
		Seed:    seed,
		Repeats: o.repeats,
		Host:    hostinfo.Detect(),
	}
	bar := r.newProgressBar(1 + len(blockSizes))

	report.Naive, err = r.measure(ctx, transpose.StrategyNaive, 0, src.Data(), dst)
	if err != nil {
		return nil, errors.Trace(err)
	}
	r.step(bar)

	for _, bs := range blockSizes {
		m, err := r.measure(ctx, transpose.StrategyBlocked, bs, src.Data(), dst)
		if err != nil {
			return nil, errors.Trace(err)
		}
		report.Blocked = append(report.Blocked, m)
		r.step(bar)
	}
	r.finish(bar)

	return report, nil
}

// measure times o.repeats runs of one kernel and verifies the last output.
// A kernel rejection is recorded in the Measurement, not returned.
func (r *Runner) measure(ctx context.Context, s transpose.Strategy, blockSize int, src, dst []int) (Measurement, error) {
	n := r.opts.size
	m := Measurement{Strategy: s, BlockSize: blockSize}
	logger := r.opts.logger.With(zap.Stringer("strategy", s), zap.Int("block_size", blockSize))

	for i := 0; i < r.opts.repeats; i++ {
		if err := ctx.Err(); err != nil {
			return m, errors.Trace(err)
		}
		clear(dst)
		start := time.Now()
		err := transpose.Apply(s, src, n, n, blockSize, dst)
		elapsed := time.Since(start)
		if err != nil {
			logger.Warn("transpose rejected input", zap.Error(err))
			m.Err = err

			return m, nil
		}
		m.Runs = append(m.Runs, elapsed)
	}

	m.Min = lo.Min(m.Runs)
	m.Mean = lo.Sum(m.Runs) / time.Duration(len(m.Runs))
	m.Mismatch = transpose.Verify(src, dst, n, n)
	m.Correct = m.Mismatch == nil && transpose.Check(src, dst, n, n)
	if !m.Correct {
		logger.Error("transpose result is incorrect", zap.Error(m.Mismatch))
	}
	logger.Debug("measured", zap.Duration("min", m.Min), zap.Duration("mean", m.Mean), zap.Bool("correct", m.Correct))

	return m, nil
}

func (r *Runner) newProgressBar(total int) *progressbar.ProgressBar {
	if r.opts.progress == nil {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.opts.progress),
		progressbar.OptionSetDescription("transposing"),
		progressbar.OptionShowCount(),
	)
}

func (r *Runner) step(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}
	if err := bar.Add(1); err != nil {
		r.opts.logger.Debug("progress bar", zap.Error(err))
	}
}

func (r *Runner) finish(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}
	if err := bar.Finish(); err != nil {
		r.opts.logger.Debug("progress bar", zap.Error(err))
	}
}
