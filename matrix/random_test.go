// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blocktranspose/matrix"
)

// TestNewRandom_Deterministic checks that equal seeds give equal matrices.
func TestNewRandom_Deterministic(t *testing.T) {
	a, err := matrix.NewRandom(8, 8, 1337)
	require.NoError(t, err)
	b, err := matrix.NewRandom(8, 8, 1337)
	require.NoError(t, err)
	c, err := matrix.NewRandom(8, 8, 4242)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, 0)
	}
}

func TestNewRandom_Errors(t *testing.T) {
	_, err := matrix.NewRandom(0, 2, 1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	assert.ErrorIs(t, matrix.FillRandom(nil, nil), matrix.ErrNilMatrix)
}
