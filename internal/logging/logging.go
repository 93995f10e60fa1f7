// Package logging builds the zap loggers used by the tourqr binaries.
package logging

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType int

const loggerKey loggerKeyType = iota

var defaultLogger = zap.NewNop()

// New returns a console logger that writes errors to stderr and
// everything else, from level on, to stdout.
func New(level string) (*zap.Logger, error) {
	return NewWithSyncers(level, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
}

// NewWithSyncers is New with explicit outputs for low and high priority
// entries.
func NewWithSyncers(level string, low, high zapcore.WriteSyncer) (*zap.Logger, error) {
	var minLevel zapcore.Level
	if level != "" {
		if err := minLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", level)
		}
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel && lvl >= minLevel
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= minLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, high, highPriority),
		zapcore.NewCore(consoleEncoder, low, lowPriority),
	)
	return zap.New(core), nil
}

// NewContext returns a context carrying logger with the extra fields added.
func NewContext(ctx context.Context, logger *zap.Logger, fields ...zapcore.Field) context.Context {
	return context.WithValue(ctx, loggerKey, logger.With(fields...))
}

// WithContext returns the logger stored in ctx, or a no-op logger.
func WithContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return defaultLogger
	}
	if ctxLogger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return ctxLogger
	}
	return defaultLogger
}
