// SPDX-License-Identifier: MIT

package transpose

import "strings"

// Strategy selects a transpose kernel.
type Strategy int

const (
	// StrategyNaive selects Naive; any shape, blockSize ignored.
	StrategyNaive Strategy = iota

	// StrategyBlocked selects Blocked; square only.
	StrategyBlocked
)

const (
	nameNaive   = "naive"
	nameBlocked = "blocked"
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyNaive:
		return nameNaive
	case StrategyBlocked:
		return nameBlocked
	default:
		return "unknown"
	}
}

// ParseStrategy maps "naive"/"blocked" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameNaive:
		return StrategyNaive, nil
	case nameBlocked:
		return StrategyBlocked, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// Apply runs the kernel selected by s. blockSize is only read by StrategyBlocked.
// Kernel errors are returned unwrapped so callers can match sentinels directly.
func Apply(s Strategy, src []int, rows, cols, blockSize int, dst []int) error {
	switch s {
	case StrategyNaive:
		return Naive(src, rows, cols, dst)
	case StrategyBlocked:
		return Blocked(src, rows, cols, blockSize, dst)
	default:
		return transposeErrorf(opApply, ErrUnknownStrategy)
	}
}
