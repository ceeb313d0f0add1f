// Package logging wraps zerolog behind the small surface the rest of AMIRA
// needs for the -v progress messages of the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the progress-logging interface used throughout the pipeline.
// Callers that don't want logging at all use New(io.Discard, false).
type Logger interface {
	Info(msg string)
	Infof(format string, args ...interface{})
	Error(msg string, err error)
}

type zlog struct {
	l zerolog.Logger
}

// New builds a Logger that writes human-readable lines to w when verbose is
// true, and discards everything otherwise.
func New(w io.Writer, verbose bool) Logger {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	l := zerolog.New(console).With().Timestamp().Logger().Level(level)
	return &zlog{l: l}
}

// NewStderr is the default Logger used by the CLI: stderr, gated by verbose.
func NewStderr(verbose bool) Logger {
	return New(os.Stderr, verbose)
}

func (z *zlog) Info(msg string) { z.l.Info().Msg(msg) }

func (z *zlog) Infof(format string, args ...interface{}) {
	z.l.Info().Msgf(format, args...)
}

func (z *zlog) Error(msg string, err error) { z.l.Error().Err(err).Msg(msg) }
