// Package cliutil holds the ambient pieces shared by the CLI front-end that
// are not part of the codec itself: structured logging and a small helper
// for the verbose compression-ratio report.
package cliutil

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped, stderr-writing logger at the requested
// level.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}

// Ratio reports the compressed size as a percentage of the original size.
func Ratio(before, after int) float64 {
	if before == 0 {
		return 0
	}
	return float64(after) / float64(before) * 100
}
