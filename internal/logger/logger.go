// Package logger builds the diagnostic logger used by prodcat.
//
// Diagnostics go to stderr in zap's console encoding so that stdout only
// carries rendered tables. The default level is warn; verbose mode lowers
// it to debug.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr
func New(verbose bool) *zap.Logger {
	return NewWithWriter(os.Stderr, Level(verbose))
}

// Level maps the verbose flag to a log level
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

// NewWithWriter returns a console logger writing to w at the given level
func NewWithWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
