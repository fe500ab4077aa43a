// Package logging builds the zap loggers used by the glyphmask CLI.
// The library packages stay log-free and report through errors; only
// the command surface logs.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation defaults.
const (
	maxSizeMB  = 20
	maxBackups = 3
	maxAgeDays = 14
)

// New creates a logger writing human-readable output to stderr and,
// when logFilePath is non-empty, JSON output to a rotating log file.
// Verbose lowers the console level from info to debug.
//
// The returned function flushes buffered entries and should be
// deferred by the caller.
func New(verbose bool, logFilePath string) (*zap.Logger, func()) {
	consoleLevel := zapcore.InfoLevel
	if verbose {
		consoleLevel = zapcore.DebugLevel
	}

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			zapcore.Lock(os.Stderr),
			consoleLevel,
		),
	}

	if logFilePath != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fileWriter,
			zapcore.DebugLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger, func() { _ = logger.Sync() }
}
