// SPDX-License-Identifier: MIT

// Package log holds the process-wide zap logger used by the CLI.
// Library packages never reach for it directly; they accept a *zap.Logger
// through their options.
package log

import (
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Flag names registered by AddFlags.
const (
	FlagLogPath       = "log-path"
	FlagLogMaxSize    = "log-max-size"
	FlagLogMaxAge     = "log-max-age"
	FlagLogMaxBackups = "log-max-backups"
)

const timeLayout = "2006-01-02 15:04:05.999999"

var logger *zap.Logger

func init() {
	// setup default logger
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logger
}

// CloseLogger silences everything below fatal. Used by tests and by
// commands whose stdout must stay machine-readable.
func CloseLogger() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.FatalLevel)
	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// AddFlags registers the log file flags on flagSet.
func AddFlags(flagSet *pflag.FlagSet) {
	flagSet.String(FlagLogPath, "", "path of log file")
	flagSet.Int(FlagLogMaxSize, 100, "maximum size in megabytes of the log file")
	flagSet.Int(FlagLogMaxAge, 0, "maximum number of days to retain old log files")
	flagSet.Int(FlagLogMaxBackups, 0, "maximum number of old log files to retain")
}

// SetLogger rebuilds the logger. Debug mode uses a console encoder at debug
// level, otherwise JSON at info level. Logs go to stderr so benchmark output
// on stdout stays clean; a rotating file sink is added when --log-path is set.
func SetLogger(flagSet *pflag.FlagSet, debug bool) {
	var (
		encoder zapcore.Encoder
		level   zapcore.LevelEnabler
	)
	timeEncoder := zapcore.TimeEncoderOfLayout(timeLayout)

	if debug {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = timeEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zap.DebugLevel
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = timeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		level = zap.InfoLevel
	}
	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}
	if flagSet != nil && flagSet.Changed(FlagLogPath) {
		path, _ := flagSet.GetString(FlagLogPath)
		maxSize, _ := flagSet.GetInt(FlagLogMaxSize)
		maxAge, _ := flagSet.GetInt(FlagLogMaxAge)
		maxBackups, _ := flagSet.GetInt(FlagLogMaxBackups)
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
			Compress:   false,
		}))
	}
	core := zapcore.NewCore(encoder, zap.CombineWriteSyncers(writers...), level)
	logger = zap.New(core)
}
