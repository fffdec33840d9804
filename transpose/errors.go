// SPDX-License-Identifier: MIT
// Package transpose: sentinel error set.
// Kernels return these sentinels directly; facades wrap them with an operation
// tag via transposeErrorf. Callers match with errors.Is.

package transpose

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("transpose: dimensions must be > 0")

	// ErrBufferTooSmall is returned when src or dst holds fewer than rows*cols elements.
	ErrBufferTooSmall = errors.New("transpose: buffer shorter than rows*cols")

	// ErrInvalidBlockSize is returned when blockSize < 1.
	ErrInvalidBlockSize = errors.New("transpose: block size must be >= 1")

	// ErrBlockSizeTooLarge is returned when blockSize exceeds either dimension.
	ErrBlockSizeTooLarge = errors.New("transpose: block size exceeds matrix dimension")

	// ErrNonSquare is returned by the blocked path for rows != cols.
	ErrNonSquare = errors.New("transpose: blocked transpose requires a square matrix")

	// ErrMismatch is matched by *MismatchError returned from Verify.
	ErrMismatch = errors.New("transpose: result is not the transpose of the source")

	// ErrUnknownStrategy is returned by ParseStrategy and Apply for unknown strategies.
	ErrUnknownStrategy = errors.New("transpose: unknown strategy")
)

// Operation tags for facade error wrapping.
const (
	opNaive   = "Naive"
	opBlocked = "Blocked"
	opApply   = "Apply"
)

// transposeErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func transposeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MismatchError describes the first element where a candidate transpose
// disagrees with its source. Row and Col index the source matrix.
type MismatchError struct {
	Row, Col  int
	Want, Got int
}

// Error implements error.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: at source (%d,%d) want %d, got %d", ErrMismatch, e.Row, e.Col, e.Want, e.Got)
}

// Is lets errors.Is(err, ErrMismatch) match any *MismatchError.
func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }
