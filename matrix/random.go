// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// FillRandom overwrites every element of m with a non-negative pseudo-random
// value in [0, 2^31) drawn from rng, in row-major order.
// The same rng state always yields the same matrix.
func FillRandom(m *Dense, rng *rand.Rand) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for i := range m.data {
		m.data[i] = int(rng.Int31())
	}

	return nil
}

// NewRandom allocates an rows×cols matrix filled from a source seeded with seed.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom(rows, cols int, seed int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = FillRandom(m, rand.New(rand.NewSource(seed))); err != nil {
		return nil, err
	}

	return m, nil
}
