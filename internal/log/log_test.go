// SPDX-License-Identifier: MIT

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetLogger_FileSink(t *testing.T) {
	defer CloseLogger()
	path := filepath.Join(t.TempDir(), "bench.log")

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flagSet)
	require.NoError(t, flagSet.Parse([]string{"--" + FlagLogPath, path}))

	SetLogger(flagSet, true)
	Logger().Info("measured", zap.Int("block_size", 32))
	_ = Logger().Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "measured")
	assert.Contains(t, string(data), "block_size")
}

func TestSetLogger_NoFlags(t *testing.T) {
	defer CloseLogger()
	SetLogger(nil, false)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Core().Enabled(zap.DebugLevel))
	assert.True(t, Logger().Core().Enabled(zap.InfoLevel))
}

func TestCloseLogger(t *testing.T) {
	CloseLogger()
	assert.False(t, Logger().Core().Enabled(zap.ErrorLevel))
	assert.True(t, Logger().Core().Enabled(zap.FatalLevel))
}
