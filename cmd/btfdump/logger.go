package main

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the CLI's logger instance. It uses a no-op logger by
// default so library consumers of this pattern elsewhere stay silent
// unless SetLogger is called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the CLI's logger. Must be called before any
// command runs.
func SetLogger(l *zap.Logger) {
	logger = l
}
