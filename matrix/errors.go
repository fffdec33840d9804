// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No function panics on user-triggered input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context matters; callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive or their product overflows int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadData indicates that a backing slice does not hold exactly rows*cols elements.
	ErrBadData = errors.New("matrix: data length does not match shape")
)
