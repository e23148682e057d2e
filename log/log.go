// Package log holds the process-wide logger used by the hdrmap packages.
//
// The library is silent by default. Install a logger with [SetDefault],
// for example one of the handlers prepared in the examples:
//
//	log.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package log

import (
	"log/slog"
	"sync/atomic"

	"github.com/ghettovoice/hdrmap/internal/log"
)

var def atomic.Pointer[slog.Logger]

// Default returns the current default logger.
// If no logger was installed, a noop logger is returned.
func Default() *slog.Logger {
	if l := def.Load(); l != nil {
		return l
	}
	return log.Noop
}

// SetDefault installs l as the default logger.
// Passing nil restores the noop logger.
func SetDefault(l *slog.Logger) {
	def.Store(l)
}

// Console returns a human friendly console logger writing to stdout.
func Console() *slog.Logger { return log.Def }

// Dev returns a verbose developer logger writing to stdout.
func Dev() *slog.Logger { return log.Dev }
