// SPDX-License-Identifier: MIT

// Command transposebench times a naive transpose against a cache-blocked
// transpose of a random square matrix and checks both results.
//
//	transposebench [blockSize]
//	transposebench sweep
//	transposebench version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/blocktranspose/bench"
	"github.com/katalvlaran/blocktranspose/config"
	"github.com/katalvlaran/blocktranspose/internal/hostinfo"
	"github.com/katalvlaran/blocktranspose/internal/log"
)

// Version is overridden via ldflags.
var Version = "dev"

// errIncorrect is returned when any measured transpose failed verification
// or was rejected. The report has already been printed.
var errIncorrect = errors.New("transpose result incorrect")

const (
	flagConfig = "config"
	flagDebug  = "debug"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if errors.Cause(err) != errIncorrect {
			log.Logger().Error("transposebench failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transposebench [blockSize]",
		Short: "Benchmark naive versus cache-blocked matrix transpose",
		Long: "Generates a random square matrix, transposes it naively and with a\n" +
			"cache-blocked kernel, and prints the time of each. The optional blockSize\n" +
			"argument overrides --block-sizes; without either, a size is derived from\n" +
			"the host L1 data cache.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				blockSize, err := strconv.Atoi(args[0])
				if err != nil || blockSize < 1 {
					return errors.Errorf("invalid block size %q", args[0])
				}
				conf.BlockSizes = []int{blockSize}
			}

			return runBench(cmd.Context(), cmd.OutOrStdout(), conf, conf.Format, conf.Progress)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "configuration file path")
	flags.Bool(flagDebug, false, "use debug log mode")
	config.AddFlags(flags)
	log.AddFlags(flags)

	rootCmd.AddCommand(newSweepCmd(), newVersionCmd())

	return rootCmd
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Compare a ladder of block sizes",
		Long: "Measures powers of two from 4 up to the matrix order (at most 512) plus\n" +
			"the host-suggested size, unless --block-sizes is given. Prints a table\n" +
			"unless --format is set explicitly.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(conf.BlockSizes) == 0 {
				conf.BlockSizes = bench.SweepBlockSizes(conf.Size, hostinfo.DefaultBlockSize())
			}
			format := conf.Format
			if !cmd.Flags().Changed(config.FlagName(config.KeyFormat)) {
				format = config.FormatTable
			}

			return runBench(cmd.Context(), cmd.OutOrStdout(), conf, format, true)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Version:\t", Version)
			_, _ = fmt.Fprintln(out, "Go version:\t", runtime.Version())
			_, _ = fmt.Fprintf(out, "OS/Arch:\t %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool(flagDebug)
	log.SetLogger(cmd.Flags(), debug)
	configPath, _ := cmd.Flags().GetString(flagConfig)
	conf, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, errors.Annotate(err, "failed to load config")
	}
	log.Logger().Debug("loaded config", zap.Any("config", conf))

	return conf, nil
}

func runBench(ctx context.Context, out io.Writer, conf *config.Config, format string, progress bool) error {
	opts := []bench.Option{
		bench.WithSize(conf.Size),
		bench.WithSeed(conf.Seed),
		bench.WithRepeats(conf.Repeats),
		bench.WithBlockSizes(conf.BlockSizes...),
		bench.WithLogger(log.Logger()),
	}
	if progress {
		opts = append(opts, bench.WithProgress(os.Stderr))
	}
	report, err := bench.NewRunner(opts...).Run(ctx)
	if err != nil {
		return errors.Annotate(err, "benchmark failed")
	}

	switch format {
	case config.FormatTable:
		err = bench.WriteTable(out, report)
	default:
		err = bench.WriteText(out, report)
	}
	if err != nil {
		return errors.Annotate(err, "failed to write report")
	}
	if !report.AllCorrect() {
		return errIncorrect
	}

	return nil
}
