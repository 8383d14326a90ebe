package rink

import (
	"log/slog"
	"sync/atomic"
)

var (
	discardLogger = slog.New(slog.DiscardHandler)

	// logger is swapped atomically so SetLogger may run while figures draw.
	logger atomic.Pointer[slog.Logger]
)

// SetLogger routes rink's log records to l. Nil restores the default,
// which discards everything.
//
// Debug records cover asset loads and computed placements; Info records
// cover figures written to disk.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	logger.Store(l)
}

// Logger returns the logger rink currently writes to.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discardLogger
}
