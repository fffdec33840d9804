// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/length checks here.
//   - Return tagged sentinels so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, O(1) and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape checks rows>0 && cols>0 and that rows*cols fits in an int.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape: overflow", ErrInvalidDimensions)
	}

	return nil
}

// ValidateBufferLen ensures buf can hold at least rows*cols elements.
// Assumes a shape accepted by ValidateShape.
func ValidateBufferLen(buf []int, rows, cols int) error {
	if len(buf) < rows*cols {
		return validatorErrorf("ValidateBufferLen", ErrBadData)
	}

	return nil
}
