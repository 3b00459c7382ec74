// SPDX-License-Identifier: MPL-2.0

// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// EnvLevel is the environment variable that overrides the log level.
const EnvLevel = "RENAMEX_LOG"

// Setup builds the logger diagnostics are written to and installs it as the
// package-level default. The level is debug when verbose is set, otherwise
// RENAMEX_LOG when present, otherwise warn — the CLI's primary output goes
// to stdout, logging is supplementary.
func Setup(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})

	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(levelFromEnv())
	}

	log.SetDefault(logger)
	return logger
}

func levelFromEnv() log.Level {
	raw := os.Getenv(EnvLevel)
	if raw == "" {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
