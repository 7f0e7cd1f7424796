package s2d

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package logger.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for renderers that use the
// package logger. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// logger is the default logger for renderers created without WithLogger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// loggerOr returns l, or the package logger when l is nil.
func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return logger
	}
	return l
}
