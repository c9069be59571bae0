// Package cli implements the segmap command-line interface.
//
// The CLI wraps the library's synthesis and weighting pipeline for quick
// experiments: generate a synthetic circle mask, turn a mask image into a
// rendered weight map, or run the whole loop in one shot. It is built on
// cobra, logs through charmbracelet/log, and reads parameter sets from an
// optional TOML file with flags taking precedence.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// newLogger creates a logger writing to w with millisecond timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext retrieves the logger attached by withLogger, or a
// default stderr logger when none is set.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return newLogger(os.Stderr, log.InfoLevel)
}
