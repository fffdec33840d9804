// SPDX-License-Identifier: MIT

// Package config loads benchmark settings from defaults, an optional config
// file, TRANSPOSEBENCH_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
)

// EnvPrefix prefixes every environment variable, e.g. TRANSPOSEBENCH_SIZE.
const EnvPrefix = "TRANSPOSEBENCH"

// Config keys. Flags use the same names with '_' replaced by '-'.
const (
	KeySize       = "size"
	KeySeed       = "seed"
	KeyRepeats    = "repeats"
	KeyBlockSizes = "block_sizes"
	KeyFormat     = "format"
	KeyProgress   = "progress"
)

// Config is the full benchmark configuration.
type Config struct {
	// Size is the order n of the generated n×n matrix. The upper bound keeps
	// n*n within a 32-bit int (bench.MaxSize).
	Size int `mapstructure:"size" validate:"gte=1,lte=46340"`
	// Seed drives matrix generation; 0 means seed from the wall clock.
	Seed int64 `mapstructure:"seed"`
	// Repeats is the number of timed runs per strategy and block size.
	Repeats int `mapstructure:"repeats" validate:"gte=1"`
	// BlockSizes lists the tile edges to benchmark; empty means host default.
	BlockSizes []int `mapstructure:"block_sizes" validate:"dive,gte=1"`
	// Format selects the stdout rendering: text or table.
	Format string `mapstructure:"format" validate:"oneof=text table"`
	// Progress shows a progress bar on stderr.
	Progress bool `mapstructure:"progress"`
}

// GetDefaultConfig returns the defaults. Size 5000 matches the matrix order
// the benchmark has always used.
func GetDefaultConfig() *Config {
	return &Config{
		Size:       5000,
		Seed:       0,
		Repeats:    1,
		BlockSizes: []int{},
		Format:     FormatText,
		Progress:   false,
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	v.SetDefault(KeySize, defaultConfig.Size)
	v.SetDefault(KeySeed, defaultConfig.Seed)
	v.SetDefault(KeyRepeats, defaultConfig.Repeats)
	v.SetDefault(KeyBlockSizes, defaultConfig.BlockSizes)
	v.SetDefault(KeyFormat, defaultConfig.Format)
	v.SetDefault(KeyProgress, defaultConfig.Progress)
}

// FlagName maps a config key to its command-line flag name.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// AddFlags registers one flag per config key on flagSet.
func AddFlags(flagSet *pflag.FlagSet) {
	defaultConfig := GetDefaultConfig()
	flagSet.Int(FlagName(KeySize), defaultConfig.Size, "order of the square matrix")
	flagSet.Int64(FlagName(KeySeed), defaultConfig.Seed, "random seed (0 seeds from the clock)")
	flagSet.Int(FlagName(KeyRepeats), defaultConfig.Repeats, "timed runs per measurement")
	flagSet.IntSlice(FlagName(KeyBlockSizes), defaultConfig.BlockSizes, "block sizes to benchmark")
	flagSet.String(FlagName(KeyFormat), defaultConfig.Format, "output format: text or table")
	flagSet.Bool(FlagName(KeyProgress), defaultConfig.Progress, "show a progress bar on stderr")
}

// Load resolves the configuration. path may be empty; flagSet may be nil.
// Only flags that were explicitly set override file and environment values.
func Load(path string, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefault(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "failed to read config file %s", path)
		}
	}
	if flagSet != nil {
		for _, key := range []string{KeySize, KeySeed, KeyRepeats, KeyBlockSizes, KeyFormat, KeyProgress} {
			if flag := flagSet.Lookup(FlagName(key)); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Trace(err)
				}
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Annotate(err, "failed to decode config")
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return &conf, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Annotate(err, "invalid config")
	}

	return nil
}
