// SPDX-License-Identifier: MIT

package bench

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blocktranspose/transpose"
)

func TestWriteText(t *testing.T) {
	r := sampleReport()
	r.Blocked = append(r.Blocked, Measurement{
		Strategy:  transpose.StrategyBlocked,
		BlockSize: 200,
		Err:       transpose.ErrBlockSizeTooLarge,
	})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	assert.Equal(t, []string{
		"Time of transpose: 0.04 sec",
		"Time of blocked transpose with 8 blocks: 0.02 sec",
		"Time of blocked transpose with 16 blocks: 0.01 sec",
		"Time of blocked transpose with 32 blocks: 0.005 sec",
		"Incorrect blocked transpose with 32 blocks !",
		"Blocked transpose with 200 blocks rejected: " + transpose.ErrBlockSizeTooLarge.Error(),
	}, lines)
}

func TestWriteText_NaiveIncorrect(t *testing.T) {
	r := &Report{Naive: Measurement{Min: 1500 * time.Millisecond}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Equal(t, "Time of transpose: 1.5 sec\nIncorrect !\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	r := sampleReport()
	r.Host.Arch = "amd64"
	r.Host.Brand = "Test CPU"
	r.Host.LogicalCores = 8
	r.Host.L1D = 32 * 1024
	r.Host.L2 = 1024 * 1024
	r.Host.L3 = -1
	r.Host.CacheLine = 64
	r.Host.Features = []string{"sse2", "avx2"}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "matrix 100×100, seed 5, 1 run(s) each")
	assert.Contains(t, out, "host amd64, Test CPU, 8 logical cores, L1d 32 KiB, L2 1024 KiB, cache line 64 B, sse2,avx2\n")
	assert.NotContains(t, out, "L3", "unknown sizes are skipped")
	assert.Contains(t, out, "naive")
	assert.Contains(t, out, "blocked")
	assert.Contains(t, out, "4.00x")
	assert.Contains(t, out, "NO")
	assert.Contains(t, out, "best block size: 16 (4.00x)")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("disk full") }

func TestWriteText_WriteError(t *testing.T) {
	err := WriteText(failingWriter{}, sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
