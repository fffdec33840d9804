// SPDX-License-Identifier: MIT

// Package matrix provides a bounds-aware, row-major integer buffer used as the
// operand type of the transpose kernels.
//
// What & Why:
//
//	The transpose kernels operate on flat []int slices with the dimensions
//	passed alongside. Dense wraps such a slice together with its shape so that
//	callers get checked element access (At/Set return ErrOutOfRange instead of
//	panicking) while hot loops can still reach the flat buffer through Data().
//
// Layout:
//
//	Element (r, c) of an rows×cols matrix lives at linear index c + r*cols.
//
// Files:
//
//	dense.go     : Dense type, constructors, accessors, Equal/String.
//	errors.go    : package sentinels (match with errors.Is).
//	validators.go: shared shape/length checks returning tagged sentinels.
//	random.go    : deterministic random fill for benchmarks and tests.
//
// Complexity:
//
//	NewDense O(r*c) zero-init; At/Set O(1); Equal O(r*c).
package matrix
